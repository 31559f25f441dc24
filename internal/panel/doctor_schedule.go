package panel

import (
	"context"
	"time"

	"medclinic-client/internal/calendar"
	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
)

// ScheduleViewAPI lists the logged-in doctor's slots.
type ScheduleViewAPI interface {
	MySchedule(ctx context.Context) ([]models.Appointment, error)
}

// DoctorSchedule is the doctor's own calendar.
type DoctorSchedule struct {
	deps Deps
	api  ScheduleViewAPI

	appointments []models.Appointment
	monday       time.Time
}

// NewDoctorSchedule opens the doctor's calendar on the current week.
func NewDoctorSchedule(deps Deps, a ScheduleViewAPI) *DoctorSchedule {
	deps = deps.withDefaults()
	return &DoctorSchedule{deps: deps, api: a, monday: calendar.MondayOf(deps.Now().In(deps.Loc))}
}

// Load fetches the schedule.
func (s *DoctorSchedule) Load(ctx context.Context) error {
	appts, err := s.api.MySchedule(ctx)
	if err != nil {
		s.deps.fail(err, i18n.FetchScheduleError, "fetch schedule")
		return err
	}
	s.appointments = appts
	return nil
}

// Appointments returns the loaded slots.
func (s *DoctorSchedule) Appointments() []models.Appointment { return s.appointments }

// Week lays the slots out on the displayed week.
func (s *DoctorSchedule) Week() calendar.Week { return calendar.BuildWeek(s.monday, s.appointments) }

// ShiftWeek moves the displayed week by offset weeks.
func (s *DoctorSchedule) ShiftWeek(offset int) { s.monday = calendar.ShiftWeek(s.monday, offset) }

// ShowWeekOf displays the week containing t.
func (s *DoctorSchedule) ShowWeekOf(t time.Time) { s.monday = calendar.MondayOf(t.In(s.deps.Loc)) }

// Open handles a click on a slot. Booked and completed slots open the visit
// screen; suspended doctors are only warned.
func (s *DoctorSchedule) Open(appt models.Appointment) bool {
	if !s.deps.Session.IsActive() {
		s.deps.show(notify.Warning, i18n.DoctorSuspended)
		return false
	}
	if !appt.HasPatient() {
		s.deps.show(notify.Info, i18n.SlotNotBooked)
		return false
	}
	s.deps.Nav.Navigate(VisitRoute(appt.ID))
	return true
}
