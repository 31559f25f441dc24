package store

import (
	"sort"
	"time"

	"medclinic-client/internal/models"
)

// Appointment is a schedule slot of a doctor.
type Appointment struct {
	BaseModel
	DoctorID  string                     `gorm:"size:36;index;not null"`
	PatientID *string                    `gorm:"size:36;index"`
	StartTime time.Time                  `gorm:"not null"`
	EndTime   time.Time                  `gorm:"not null"`
	Status    models.AppointmentStatus   `gorm:"size:20;not null"`
	Details   *models.AppointmentDetails `gorm:"serializer:json;type:text"`
}

// Overlaps reports whether the slot intersects [start, end).
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// ToModel converts the record to its wire form.
func (a *Appointment) ToModel() models.Appointment {
	end := models.NewTime(a.EndTime)
	created := models.NewTime(a.CreatedAt)
	return models.Appointment{
		ID:        a.ID,
		DoctorID:  a.DoctorID,
		PatientID: a.PatientID,
		StartTime: models.NewTime(a.StartTime),
		EndTime:   &end,
		Status:    a.Status,
		Details:   a.Details,
		CreatedAt: &created,
	}
}

// SortByStart orders appointments by start time, newest first when desc.
func SortByStart(appts []Appointment, desc bool) {
	sort.SliceStable(appts, func(i, j int) bool {
		if desc {
			return appts[i].StartTime.After(appts[j].StartTime)
		}
		return appts[i].StartTime.Before(appts[j].StartTime)
	})
}
