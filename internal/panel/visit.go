package panel

import (
	"context"
	"strings"

	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
)

// VisitAPI is the part of the backend the visit screen uses.
type VisitAPI interface {
	AppointmentDetail(ctx context.Context, id string) (*models.FullAppointment, error)
	PatientHistory(ctx context.Context, patientID string) ([]models.MedicalHistory, error)
	AddHistory(ctx context.Context, req models.MedicalHistoryCreate) (*models.MedicalHistory, error)
}

// VisitForm is the exam card a doctor fills in to finish a visit.
// Recommendations is a comma-separated list.
type VisitForm struct {
	Diagnosis       string `json:"diagnosis" validate:"required,min=3"`
	TreatmentNotes  string `json:"treatment_notes" validate:"required,min=5"`
	Recommendations string `json:"recommendations"`
}

type visitRecord struct {
	PatientID      string `json:"patient_id" validate:"required"`
	AppointmentID  string `json:"appointment_id" validate:"required"`
	Diagnosis      string `json:"diagnosis" validate:"required,min=3"`
	TreatmentNotes string `json:"treatment_notes" validate:"required,min=5"`
}

// Visit is the doctor's screen for one appointment: the patient, their past
// records and the exam card.
type Visit struct {
	deps Deps
	api  VisitAPI
	id   string
	g    guard

	appointment *models.FullAppointment
	history     []models.MedicalHistory
	expanded    string

	Form    VisitForm
	Touched Touched
	Errors  FieldErrors
}

// NewVisit opens the visit screen for an appointment.
func NewVisit(deps Deps, a VisitAPI, appointmentID string) *Visit {
	return &Visit{deps: deps.withDefaults(), api: a, id: appointmentID, Touched: Touched{}}
}

// Load fetches the appointment, then the patient's history.
func (v *Visit) Load(ctx context.Context) error {
	appt, err := v.api.AppointmentDetail(ctx, v.id)
	if err != nil {
		v.deps.fail(err, i18n.ErrorDefault, "load appointment")
		return err
	}
	v.appointment = appt

	if appt.PatientID == nil {
		v.history = nil
		return nil
	}
	history, err := v.api.PatientHistory(ctx, *appt.PatientID)
	if err != nil {
		v.deps.fail(err, i18n.LoadHistoryError, "load patient history")
		return err
	}
	v.history = history
	return nil
}

// Appointment returns the loaded appointment, nil before Load.
func (v *Visit) Appointment() *models.FullAppointment { return v.appointment }

// History returns the patient's records, newest first.
func (v *Visit) History() []models.MedicalHistory { return v.history }

// ToggleHistory expands a record, or collapses it when already expanded.
func (v *Visit) ToggleHistory(id string) {
	if v.expanded == id {
		v.expanded = ""
		return
	}
	v.expanded = id
}

// Expanded is the id of the expanded record, empty when none.
func (v *Visit) Expanded() string { return v.expanded }

// Disabled reports whether the exam card is read-only: the visit is already
// completed or the doctor's account is suspended.
func (v *Visit) Disabled() bool {
	if !v.deps.Session.IsActive() {
		return true
	}
	return v.appointment == nil || v.appointment.Status == models.StatusCompleted
}

// SplitRecommendations turns "a, b,,c " into [a b c].
func SplitRecommendations(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Finish asks for confirmation, saves the exam card, which completes the
// appointment, and returns to the schedule.
func (v *Visit) Finish(ctx context.Context) error {
	if v.Disabled() {
		return ErrNotAllowed
	}
	record := visitRecord{
		AppointmentID:  v.appointment.ID,
		Diagnosis:      strings.TrimSpace(v.Form.Diagnosis),
		TreatmentNotes: strings.TrimSpace(v.Form.TreatmentNotes),
	}
	if v.appointment.PatientID != nil {
		record.PatientID = *v.appointment.PatientID
	}

	v.Errors = nil
	if err := v.deps.check(record); err != nil {
		v.Touched.All("diagnosis", "treatment_notes", "recommendations")
		if fe, ok := err.(FieldErrors); ok {
			v.Errors = fe
		}
		v.deps.show(notify.Warning, i18n.VisitFormInvalid)
		return err
	}

	req := models.MedicalHistoryCreate{
		PatientID:       record.PatientID,
		AppointmentID:   record.AppointmentID,
		Diagnosis:       record.Diagnosis,
		TreatmentNotes:  record.TreatmentNotes,
		Recommendations: SplitRecommendations(v.Form.Recommendations),
	}
	return v.deps.runConfirmed(ctx, &v.g, action{
		name:    "finish visit",
		title:   v.deps.t(i18n.VisitFinishTitle),
		message: v.deps.t(i18n.VisitConfirmFinish),
		success: i18n.VisitSaveSuccess,
		failure: i18n.VisitSaveError,
		run: func(ctx context.Context) error {
			_, err := v.api.AddHistory(ctx, req)
			return err
		},
		after: func(context.Context) error {
			v.deps.Nav.Navigate(RouteDoctorSchedule)
			return nil
		},
	})
}
