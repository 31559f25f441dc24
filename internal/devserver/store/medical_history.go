package store

import (
	"time"

	"medclinic-client/internal/models"
)

// MedicalHistory is a visit record attached to a completed appointment.
type MedicalHistory struct {
	BaseModel
	PatientID       string    `gorm:"size:36;index;not null"`
	DoctorID        string    `gorm:"size:36;index;not null"`
	AppointmentID   string    `gorm:"size:36;index;not null"`
	Diagnosis       string    `gorm:"type:text;not null"`
	TreatmentNotes  string    `gorm:"type:text"`
	Recommendations []string  `gorm:"serializer:json;type:text"`
	Date            time.Time `gorm:"not null"`
}

// ToModel converts the record to its wire form.
func (h *MedicalHistory) ToModel() models.MedicalHistory {
	recs := h.Recommendations
	if recs == nil {
		recs = []string{}
	}
	return models.MedicalHistory{
		ID:              h.ID,
		PatientID:       h.PatientID,
		DoctorID:        h.DoctorID,
		AppointmentID:   h.AppointmentID,
		Diagnosis:       h.Diagnosis,
		TreatmentNotes:  h.TreatmentNotes,
		Recommendations: recs,
		Date:            models.NewTime(h.Date),
	}
}
