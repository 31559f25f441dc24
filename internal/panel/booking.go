package panel

import (
	"context"
	"strings"
	"time"

	"medclinic-client/internal/calendar"
	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
)

// BookingAPI is the part of the backend the booking screen uses.
type BookingAPI interface {
	DoctorAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error)
	Book(ctx context.Context, appointmentID string, details models.AppointmentDetails) (*models.Appointment, error)
}

// BookingState is where the booking workflow is.
type BookingState int

const (
	BookingIdle BookingState = iota
	BookingFormOpen
	BookingSubmitting
)

func (s BookingState) String() string {
	switch s {
	case BookingIdle:
		return "idle"
	case BookingFormOpen:
		return "form-open"
	case BookingSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// BookingForm is what the patient fills in for a selected slot.
type BookingForm struct {
	ReasonForVisit    string `json:"reason_for_visit" validate:"required,min=3"`
	PreviousTreatment bool   `json:"previous_treatment"`
	AdditionalNotes   string `json:"additional_notes"`
}

// Booking is the patient's calendar of one doctor.
type Booking struct {
	deps     Deps
	api      BookingAPI
	doctorID string
	g        guard

	state        BookingState
	monday       time.Time
	appointments []models.Appointment
	selected     *models.Appointment

	Form    BookingForm
	Touched Touched
	Errors  FieldErrors
}

// NewBooking opens the booking calendar of a doctor on the current week.
func NewBooking(deps Deps, a BookingAPI, doctorID string) *Booking {
	deps = deps.withDefaults()
	return &Booking{
		deps:     deps,
		api:      a,
		doctorID: doctorID,
		monday:   calendar.MondayOf(deps.Now().In(deps.Loc)),
		Touched:  Touched{},
	}
}

// Load fetches the doctor's appointments.
func (b *Booking) Load(ctx context.Context) error {
	appts, err := b.api.DoctorAppointments(ctx, b.doctorID)
	if err != nil {
		b.deps.Log.Warn().Err(err).Str("doctor_id", b.doctorID).Msg("load appointments failed")
		b.deps.show(notify.Error, i18n.LoadAppointmentsError)
		return err
	}
	b.appointments = appts
	return nil
}

// State returns the workflow state.
func (b *Booking) State() BookingState { return b.state }

// Selected returns the slot whose form is open, nil otherwise.
func (b *Booking) Selected() *models.Appointment { return b.selected }

// Appointments returns the loaded appointments.
func (b *Booking) Appointments() []models.Appointment { return b.appointments }

// Week lays the loaded appointments out on the displayed week.
func (b *Booking) Week() calendar.Week {
	return calendar.BuildWeek(b.monday, b.appointments)
}

// ShiftWeek moves the displayed week by offset weeks.
func (b *Booking) ShiftWeek(offset int) {
	b.monday = calendar.ShiftWeek(b.monday, offset)
}

// ShowWeekOf displays the week containing t.
func (b *Booking) ShowWeekOf(t time.Time) {
	b.monday = calendar.MondayOf(t.In(b.deps.Loc))
}

// SelectSlot handles a click on a calendar slot. Slots that are not
// available are ignored; a logged-out patient is sent to the login screen.
// It reports whether the booking form opened.
func (b *Booking) SelectSlot(appt models.Appointment) bool {
	if !appt.IsBookable() {
		return false
	}
	if !b.deps.Session.IsLoggedIn() {
		b.deps.show(notify.Warning, i18n.BookingLoginRequired)
		b.deps.Nav.Navigate(RouteLogin)
		return false
	}
	if b.state == BookingSubmitting {
		return false
	}

	slot := appt
	b.selected = &slot
	b.Form = BookingForm{}
	b.Touched = Touched{}
	b.Errors = nil
	b.state = BookingFormOpen
	return true
}

// SelectAt selects the appointment shown at a cell of the displayed week.
func (b *Booking) SelectAt(date time.Time, label string) bool {
	appt := calendar.SlotFor(b.appointments, date, label)
	if appt == nil {
		return false
	}
	return b.SelectSlot(*appt)
}

// Close dismisses the form.
func (b *Booking) Close() {
	if b.state == BookingSubmitting {
		return
	}
	b.selected = nil
	b.state = BookingIdle
}

// Submit books the selected slot with the current form. An invalid form
// marks every field touched and sends nothing. On success the form closes
// and the calendar reloads; on failure it stays open.
func (b *Booking) Submit(ctx context.Context) error {
	if b.selected == nil {
		return ErrFormInvalid
	}
	b.Form.ReasonForVisit = strings.TrimSpace(b.Form.ReasonForVisit)
	b.Form.AdditionalNotes = strings.TrimSpace(b.Form.AdditionalNotes)
	b.Errors = nil
	if err := b.deps.check(b.Form); err != nil {
		b.Touched.All("reason_for_visit", "previous_treatment", "additional_notes")
		if fe, ok := err.(FieldErrors); ok {
			b.Errors = fe
		}
		b.deps.show(notify.Warning, i18n.BookingReasonInvalid)
		return err
	}
	if !b.g.enter() {
		return ErrInFlight
	}
	defer b.g.leave()

	b.state = BookingSubmitting
	details := models.AppointmentDetails{
		ReasonForVisit:    b.Form.ReasonForVisit,
		PreviousTreatment: b.Form.PreviousTreatment,
	}
	if notes := b.Form.AdditionalNotes; notes != "" {
		details.AdditionalNotes = &notes
	}

	if _, err := b.api.Book(ctx, b.selected.ID, details); err != nil {
		b.state = BookingFormOpen
		b.deps.fail(err, i18n.BookingError, "book")
		return err
	}

	b.deps.show(notify.Success, i18n.BookingSuccess)
	b.selected = nil
	b.state = BookingIdle
	return b.Load(ctx)
}
