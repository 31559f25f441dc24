package models

import "encoding/json"

// MedicalHistory is a visit record written by a doctor.
type MedicalHistory struct {
	ID              string   `json:"_id"`
	PatientID       string   `json:"patient_id"`
	DoctorID        string   `json:"doctor_id"`
	AppointmentID   string   `json:"appointment_id,omitempty"`
	Diagnosis       string   `json:"diagnosis"`
	TreatmentNotes  string   `json:"treatment_notes"`
	Recommendations []string `json:"recommendations"`
	Date            Time     `json:"date"`
}

// UnmarshalJSON accepts the identifier under either "_id" or "id".
func (m *MedicalHistory) UnmarshalJSON(b []byte) error {
	type plain MedicalHistory
	aux := struct {
		*plain
		AltID string `json:"id"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = aux.AltID
	}
	return nil
}

// MedicalHistoryCreate is the body of POST /doctor/add-history.
type MedicalHistoryCreate struct {
	PatientID       string   `json:"patient_id"`
	AppointmentID   string   `json:"appointment_id"`
	Diagnosis       string   `json:"diagnosis"`
	TreatmentNotes  string   `json:"treatment_notes"`
	Recommendations []string `json:"recommendations"`
}
