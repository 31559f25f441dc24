package models

import "encoding/json"

// AppointmentStatus enum
type AppointmentStatus string

const (
	StatusAvailable AppointmentStatus = "available"
	StatusBooked    AppointmentStatus = "booked"
	StatusCompleted AppointmentStatus = "completed"
)

// AppointmentDetails is what a patient fills in when booking.
type AppointmentDetails struct {
	ReasonForVisit    string  `json:"reason_for_visit"`
	PreviousTreatment bool    `json:"previous_treatment"`
	AdditionalNotes   *string `json:"additional_notes,omitempty"`
}

// Appointment is one schedule slot of a doctor.
type Appointment struct {
	ID             string              `json:"_id"`
	DoctorID       string              `json:"doctor_id"`
	PatientID      *string             `json:"patient_id"`
	StartTime      Time                `json:"start_time"`
	EndTime        *Time               `json:"end_time,omitempty"`
	Status         AppointmentStatus   `json:"status"`
	Details        *AppointmentDetails `json:"details"`
	CreatedAt      *Time               `json:"created_at,omitempty"`
	MedicalHistory *MedicalHistory     `json:"medical_history,omitempty"`
}

// UnmarshalJSON accepts the identifier under either "_id" or "id".
func (a *Appointment) UnmarshalJSON(b []byte) error {
	type plain Appointment
	aux := struct {
		*plain
		AltID string `json:"id"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = aux.AltID
	}
	return nil
}

// IsBookable reports whether a patient may book the slot.
func (a Appointment) IsBookable() bool {
	return a.Status == StatusAvailable
}

// HasPatient reports whether the slot is booked or already completed.
func (a Appointment) HasPatient() bool {
	return a.Status == StatusBooked || a.Status == StatusCompleted
}

// PatientData is the patient snapshot attached to an appointment detail.
type PatientData struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// FullAppointment is the doctor's view of a single appointment.
type FullAppointment struct {
	Appointment
	PatientData *PatientData `json:"patient_data,omitempty"`
}

// UnmarshalJSON decodes the embedded appointment and the patient snapshot.
func (f *FullAppointment) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &f.Appointment); err != nil {
		return err
	}
	var extra struct {
		PatientData *PatientData `json:"patient_data"`
	}
	if err := json.Unmarshal(b, &extra); err != nil {
		return err
	}
	f.PatientData = extra.PatientData
	return nil
}

// AppointmentUpdate is the body of PATCH /admin/appointment/:id. Times are in
// the persistable form produced by calendar.ToPersistable.
type AppointmentUpdate struct {
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}
