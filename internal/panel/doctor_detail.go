package panel

import (
	"context"
	"errors"
	"time"

	"medclinic-client/internal/calendar"
	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
)

// ErrNoSelection is returned by appointment actions when none is selected.
var ErrNoSelection = errors.New("no appointment selected")

// EditLength is the suggested length of an edited appointment.
const EditLength = 30 * time.Minute

// AdminAPI is the part of the backend the admin doctor screens use.
type AdminAPI interface {
	Doctor(ctx context.Context, id string) (*models.User, error)
	DoctorAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ToggleDoctorActivity(ctx context.Context, id string) (*models.ToggleActivityResult, error)
	ResetPassword(ctx context.Context, userID, newPassword string) error
	GenerateBulkSchedule(ctx context.Context, req models.BulkScheduleRequest) (*models.ScheduleResult, error)
	UpdateAppointment(ctx context.Context, id string, req models.AppointmentUpdate) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

// EditAppointmentForm is a new window for the selected appointment.
type EditAppointmentForm struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// PasswordForm is the admin's password reset input.
type PasswordForm struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// DoctorDetail is the admin's view of one doctor: profile, calendar and the
// actions on both.
type DoctorDetail struct {
	deps     Deps
	api      AdminAPI
	doctorID string
	g        guard

	doctor       *models.User
	appointments []models.Appointment
	monday       time.Time
	selected     *models.Appointment

	Edit     EditAppointmentForm
	Password PasswordForm
	Wizard   *ScheduleWizard
	Touched  Touched
	Errors   FieldErrors
}

// NewDoctorDetail opens a doctor's detail screen on the current week.
func NewDoctorDetail(deps Deps, a AdminAPI, doctorID string) *DoctorDetail {
	deps = deps.withDefaults()
	return &DoctorDetail{
		deps:     deps,
		api:      a,
		doctorID: doctorID,
		monday:   calendar.MondayOf(deps.Now().In(deps.Loc)),
		Touched:  Touched{},
	}
}

// Load fetches the doctor and the doctor's appointments.
func (d *DoctorDetail) Load(ctx context.Context) error {
	doctor, err := d.api.Doctor(ctx, d.doctorID)
	if err != nil {
		d.deps.fail(err, i18n.ErrorDefault, "load doctor")
		return err
	}
	d.doctor = doctor

	appts, err := d.api.DoctorAppointments(ctx, d.doctorID)
	if err != nil {
		d.deps.fail(err, i18n.LoadAppointmentsError, "load appointments")
		return err
	}
	d.appointments = appts
	return nil
}

// Doctor returns the loaded doctor, nil before Load.
func (d *DoctorDetail) Doctor() *models.User { return d.doctor }

// Appointments returns the doctor's loaded appointments.
func (d *DoctorDetail) Appointments() []models.Appointment { return d.appointments }

// Selected returns the appointment being edited, or nil.
func (d *DoctorDetail) Selected() *models.Appointment { return d.selected }

// Week lays the appointments out on the displayed week.
func (d *DoctorDetail) Week() calendar.Week {
	return calendar.BuildWeek(d.monday, d.appointments)
}

// ShiftWeek moves the displayed week by offset weeks.
func (d *DoctorDetail) ShiftWeek(offset int) {
	d.monday = calendar.ShiftWeek(d.monday, offset)
}

// ShowWeekOf displays the week containing t.
func (d *DoctorDetail) ShowWeekOf(t time.Time) {
	d.monday = calendar.MondayOf(t.In(d.deps.Loc))
}

// Find returns the loaded appointment with the given id.
func (d *DoctorDetail) Find(id string) (models.Appointment, bool) {
	for _, a := range d.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// SelectAppointment opens the edit form prefilled with the appointment's window.
func (d *DoctorDetail) SelectAppointment(appt models.Appointment) {
	a := appt
	d.selected = &a
	loc := d.deps.Loc
	d.Edit.Start = calendar.FormatInput(appt.StartTime.Time, loc)
	if appt.EndTime != nil && !appt.EndTime.IsZero() {
		d.Edit.End = calendar.FormatInput(appt.EndTime.Time, loc)
	} else {
		d.Edit.End = d.Edit.Start
	}
	d.Errors = nil
}

// SetEditStart moves the edited start and re-suggests the end.
func (d *DoctorDetail) SetEditStart(v string) {
	d.Edit.Start = v
	if end, ok := calendar.AddToInput(v, EditLength, d.deps.Loc); ok {
		d.Edit.End = end
	}
}

// SetEditEnd changes only the edited end.
func (d *DoctorDetail) SetEditEnd(v string) { d.Edit.End = v }

// ClearSelection closes the edit form.
func (d *DoctorDetail) ClearSelection() {
	d.selected = nil
	d.Edit = EditAppointmentForm{}
}

// SaveAppointment asks for confirmation and moves the selected appointment.
func (d *DoctorDetail) SaveAppointment(ctx context.Context) error {
	if d.selected == nil {
		return ErrNoSelection
	}
	if err := d.validate(d.Edit, "start", "end"); err != nil {
		return err
	}
	loc := d.deps.Loc
	start, err := calendar.ToPersistable(d.Edit.Start, loc)
	if err != nil {
		return d.invalid("start", err)
	}
	end, err := calendar.ToPersistable(d.Edit.End, loc)
	if err != nil {
		return d.invalid("end", err)
	}

	id := d.selected.ID
	return d.deps.runConfirmed(ctx, &d.g, action{
		name:    "edit appointment",
		title:   d.deps.t(i18n.DetailEditAppt),
		message: d.deps.t(i18n.DetailConfirmEditAppt),
		success: i18n.UpdateApptSuccess,
		failure: i18n.ErrorDefault,
		run: func(ctx context.Context) error {
			_, err := d.api.UpdateAppointment(ctx, id, models.AppointmentUpdate{StartTime: start, EndTime: end})
			return err
		},
		after: d.reloadAndClose,
	})
}

// DeleteAppointment asks for confirmation and removes the selected appointment.
func (d *DoctorDetail) DeleteAppointment(ctx context.Context) error {
	if d.selected == nil {
		return ErrNoSelection
	}
	id := d.selected.ID
	return d.deps.runConfirmed(ctx, &d.g, action{
		name:    "delete appointment",
		title:   d.deps.t(i18n.DetailDeleteAppt),
		message: d.deps.t(i18n.ConfirmDeleteAppt),
		success: i18n.DeleteApptSuccess,
		failure: i18n.ErrorDefault,
		run: func(ctx context.Context) error {
			return d.api.DeleteAppointment(ctx, id)
		},
		after: d.reloadAndClose,
	})
}

// ResetPassword asks for confirmation and sets the doctor's new password.
func (d *DoctorDetail) ResetPassword(ctx context.Context) error {
	if err := d.deps.check(d.Password); err != nil {
		d.Touched.All("new_password")
		if fe, ok := err.(FieldErrors); ok {
			d.Errors = fe
		}
		d.deps.show(notify.Warning, i18n.DetailPasswordInvalid)
		return err
	}
	password := d.Password.NewPassword
	return d.deps.runConfirmed(ctx, &d.g, action{
		name:    "reset password",
		title:   d.deps.t(i18n.DetailResetPass),
		message: d.deps.t(i18n.DetailConfirmPassword),
		success: i18n.PasswordSuccess,
		failure: i18n.ErrorDefault,
		run: func(ctx context.Context) error {
			return d.api.ResetPassword(ctx, d.doctorID, password)
		},
		after: func(context.Context) error {
			d.Password = PasswordForm{}
			delete(d.Touched, "new_password")
			return nil
		},
	})
}

// ToggleActivity asks for confirmation and suspends or reactivates the doctor.
func (d *DoctorDetail) ToggleActivity(ctx context.Context) error {
	return d.deps.runConfirmed(ctx, &d.g, action{
		name:    "toggle activity",
		title:   d.deps.t(i18n.DetailChangeStatus),
		message: d.deps.t(i18n.DetailConfirmStatus),
		success: i18n.StatusSuccess,
		failure: i18n.ErrorDefault,
		run: func(ctx context.Context) error {
			_, err := d.api.ToggleDoctorActivity(ctx, d.doctorID)
			return err
		},
		after: d.Load,
	})
}

// OpenSchedule starts a fresh schedule wizard for the doctor.
func (d *DoctorDetail) OpenSchedule() *ScheduleWizard {
	d.Wizard = NewScheduleWizard(d.deps, d.api, d.doctorID)
	return d.Wizard
}

// CloseSchedule discards the wizard.
func (d *DoctorDetail) CloseSchedule() { d.Wizard = nil }

// GenerateSchedule submits the open wizard, then reloads and closes it.
func (d *DoctorDetail) GenerateSchedule(ctx context.Context) (*models.ScheduleResult, error) {
	if d.Wizard == nil {
		return nil, errors.New("schedule wizard is not open")
	}
	result, err := d.Wizard.Submit(ctx)
	if err != nil {
		return nil, err
	}
	d.Wizard = nil
	return result, d.Load(ctx)
}

func (d *DoctorDetail) reloadAndClose(ctx context.Context) error {
	d.ClearSelection()
	return d.Load(ctx)
}

func (d *DoctorDetail) validate(form any, fields ...string) error {
	d.Errors = nil
	if err := d.deps.check(form); err != nil {
		d.Touched.All(fields...)
		if fe, ok := err.(FieldErrors); ok {
			d.Errors = fe
		}
		return err
	}
	return nil
}

func (d *DoctorDetail) invalid(field string, err error) error {
	d.Touched.All(field)
	d.Errors = FieldErrors{field: "datetime"}
	d.deps.Notifier.Show(notify.Warning, err.Error())
	return d.Errors
}
