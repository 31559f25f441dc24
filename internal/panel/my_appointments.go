package panel

import (
	"context"

	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
)

// MyAppointmentsAPI is the part of the backend the patient's appointments screen uses.
type MyAppointmentsAPI interface {
	MyAppointments(ctx context.Context) ([]models.Appointment, error)
	MedicalHistory(ctx context.Context) ([]models.MedicalHistory, error)
	CancelAppointment(ctx context.Context, id string) error
}

// MyAppointments lists the patient's bookings and medical history.
type MyAppointments struct {
	deps Deps
	api  MyAppointmentsAPI
	g    guard

	appointments []models.Appointment
	history      []models.MedicalHistory
}

// NewMyAppointments creates the screen.
func NewMyAppointments(deps Deps, a MyAppointmentsAPI) *MyAppointments {
	return &MyAppointments{deps: deps.withDefaults(), api: a}
}

// Load fetches the appointments and the medical history. Each failure is
// reported on its own; the first one is returned.
func (m *MyAppointments) Load(ctx context.Context) error {
	var first error
	appts, err := m.api.MyAppointments(ctx)
	if err != nil {
		m.deps.fail(err, i18n.LoadAppointmentsError, "load my appointments")
		first = err
	} else {
		m.appointments = appts
	}

	history, err := m.api.MedicalHistory(ctx)
	if err != nil {
		m.deps.fail(err, i18n.LoadHistoryError, "load medical history")
		if first == nil {
			first = err
		}
	} else {
		m.history = history
	}
	return first
}

// Upcoming returns the booked appointments.
func (m *MyAppointments) Upcoming() []models.Appointment {
	return m.withStatus(models.StatusBooked)
}

// Completed returns the finished visits.
func (m *MyAppointments) Completed() []models.Appointment {
	return m.withStatus(models.StatusCompleted)
}

// History returns the patient's full medical history.
func (m *MyAppointments) History() []models.MedicalHistory { return m.history }

func (m *MyAppointments) withStatus(status models.AppointmentStatus) []models.Appointment {
	var out []models.Appointment
	for _, a := range m.appointments {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// Cancel asks for confirmation, cancels a booking and reloads.
func (m *MyAppointments) Cancel(ctx context.Context, id string) error {
	return m.deps.runConfirmed(ctx, &m.g, action{
		name:    "cancel appointment",
		title:   m.deps.t(i18n.MyApptCancelTitle),
		message: m.deps.t(i18n.MyApptConfirmCancel),
		success: i18n.CancelSuccess,
		failure: i18n.CancelError,
		run: func(ctx context.Context) error {
			return m.api.CancelAppointment(ctx, id)
		},
		after: m.Load,
	})
}
