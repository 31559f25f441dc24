package panel_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"medclinic-client/internal/api"
	"medclinic-client/internal/calendar"
	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
	"medclinic-client/internal/panel"
)

type fakeBookingAPI struct {
	appts      []models.Appointment
	loadErr    error
	bookErr    error
	loads      int
	bookings   []string
	lastBooked models.AppointmentDetails
}

func (f *fakeBookingAPI) DoctorAppointments(_ context.Context, _ string) ([]models.Appointment, error) {
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.appts, nil
}

func (f *fakeBookingAPI) Book(_ context.Context, id string, details models.AppointmentDetails) (*models.Appointment, error) {
	f.bookings = append(f.bookings, id)
	f.lastBooked = details
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return &models.Appointment{ID: id, Status: models.StatusBooked, Details: &details}, nil
}

func availableSlot() models.Appointment {
	return models.Appointment{ID: "a1", DoctorID: "d1", StartTime: at(10, 9, 0), Status: models.StatusAvailable}
}

func TestBooking_NonAvailableSlotNeverOpensForm(t *testing.T) {
	h := newHarness(t)
	h.login(t, models.RolePatient, nil)
	b := panel.NewBooking(h.deps, &fakeBookingAPI{}, "d1")

	for _, status := range []models.AppointmentStatus{models.StatusBooked, models.StatusCompleted} {
		slot := availableSlot()
		slot.Status = status
		if b.SelectSlot(slot) {
			t.Errorf("%s slot opened the form", status)
		}
		if b.State() != panel.BookingIdle || b.Selected() != nil {
			t.Errorf("%s slot: state = %s", status, b.State())
		}
	}
	if len(h.center.History()) != 0 || len(h.routes) != 0 {
		t.Error("clicking a taken slot must have no side effects")
	}
}

func TestBooking_LoggedOutClickRedirectsToLogin(t *testing.T) {
	h := newHarness(t)
	b := panel.NewBooking(h.deps, &fakeBookingAPI{}, "d1")

	if b.SelectSlot(availableSlot()) {
		t.Fatal("form opened for a logged-out user")
	}
	if b.State() != panel.BookingIdle {
		t.Errorf("state = %s, want idle", b.State())
	}
	if h.lastRoute() != panel.RouteLogin {
		t.Errorf("route = %q, want /login", h.lastRoute())
	}
	h.expectToast(t, notify.Warning, h.catalog.T(i18n.BookingLoginRequired))
}

func TestBooking_ShortReasonSendsNothing(t *testing.T) {
	h := newHarness(t)
	h.login(t, models.RolePatient, nil)
	fake := &fakeBookingAPI{}
	b := panel.NewBooking(h.deps, fake, "d1")

	if !b.SelectSlot(availableSlot()) {
		t.Fatal("form did not open")
	}
	b.Form.ReasonForVisit = "ab"
	err := b.Submit(context.Background())
	if !errors.Is(err, panel.ErrFormInvalid) {
		t.Fatalf("Submit err = %v, want ErrFormInvalid", err)
	}
	if len(fake.bookings) != 0 {
		t.Errorf("backend called %d times", len(fake.bookings))
	}
	if !b.Touched["reason_for_visit"] || !b.Errors.Has("reason_for_visit") {
		t.Errorf("touched = %v, errors = %v", b.Touched, b.Errors)
	}
	if b.State() != panel.BookingFormOpen {
		t.Errorf("state = %s, want form-open", b.State())
	}
	h.expectToast(t, notify.Warning, h.catalog.T(i18n.BookingReasonInvalid))
}

func TestBooking_PaddedShortReasonSendsNothing(t *testing.T) {
	h := newHarness(t)
	h.login(t, models.RolePatient, nil)
	fake := &fakeBookingAPI{}
	b := panel.NewBooking(h.deps, fake, "d1")

	b.SelectSlot(availableSlot())
	b.Form.ReasonForVisit = "  a  "
	if err := b.Submit(context.Background()); !errors.Is(err, panel.ErrFormInvalid) {
		t.Fatalf("Submit err = %v, want ErrFormInvalid", err)
	}
	if len(fake.bookings) != 0 || !b.Errors.Has("reason_for_visit") {
		t.Errorf("bookings = %v, errors = %v", fake.bookings, b.Errors)
	}
}

func TestBooking_SubmitSuccessClosesAndReloads(t *testing.T) {
	h := newHarness(t)
	h.login(t, models.RolePatient, nil)
	fake := &fakeBookingAPI{appts: []models.Appointment{availableSlot()}}
	b := panel.NewBooking(h.deps, fake, "d1")
	if err := b.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	b.SelectSlot(availableSlot())
	b.Form = panel.BookingForm{ReasonForVisit: "Back pain", PreviousTreatment: true, AdditionalNotes: "  "}
	if err := b.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(fake.bookings) != 1 || fake.bookings[0] != "a1" {
		t.Errorf("bookings = %v", fake.bookings)
	}
	if fake.lastBooked.AdditionalNotes != nil || !fake.lastBooked.PreviousTreatment {
		t.Errorf("details = %+v", fake.lastBooked)
	}
	if b.State() != panel.BookingIdle || b.Selected() != nil {
		t.Errorf("state = %s after success", b.State())
	}
	if fake.loads != 2 {
		t.Errorf("loads = %d, want reload after booking", fake.loads)
	}
	if got := h.center.History(); got[0].Kind != notify.Success || got[0].Message != h.catalog.T(i18n.BookingSuccess) {
		t.Errorf("toasts = %+v", got)
	}
}

func TestBooking_FailureSurfacesBackendDetail(t *testing.T) {
	h := newHarness(t)
	h.login(t, models.RolePatient, nil)
	fake := &fakeBookingAPI{bookErr: &api.Error{StatusCode: http.StatusBadRequest, Detail: "Slot already taken"}}
	b := panel.NewBooking(h.deps, fake, "d1")

	b.SelectSlot(availableSlot())
	b.Form.ReasonForVisit = "Headache"
	if err := b.Submit(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	h.expectToast(t, notify.Error, "Slot already taken")
	if b.State() != panel.BookingFormOpen || b.Selected() == nil {
		t.Errorf("form should stay open, state = %s", b.State())
	}
}

func TestBooking_FailureWithoutDetailUsesFallback(t *testing.T) {
	h := newHarness(t)
	h.login(t, models.RolePatient, nil)
	fake := &fakeBookingAPI{bookErr: &api.Error{StatusCode: http.StatusInternalServerError}}
	b := panel.NewBooking(h.deps, fake, "d1")

	b.SelectSlot(availableSlot())
	b.Form.ReasonForVisit = "Headache"
	_ = b.Submit(context.Background())
	h.expectToast(t, notify.Error, h.catalog.T(i18n.BookingError))
}

func TestBooking_LoadFailureNotifies(t *testing.T) {
	h := newHarness(t)
	b := panel.NewBooking(h.deps, &fakeBookingAPI{loadErr: errors.New("boom")}, "d1")

	if err := b.Load(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	h.expectToast(t, notify.Error, h.catalog.T(i18n.LoadAppointmentsError))
}

func TestBooking_SlotFoundOnGrid(t *testing.T) {
	h := newHarness(t)
	h.login(t, models.RolePatient, nil)
	slot := models.Appointment{ID: "a9", StartTime: at(10, 9, 0), Status: models.StatusAvailable}
	b := panel.NewBooking(h.deps, &fakeBookingAPI{appts: []models.Appointment{slot}}, "d1")
	if err := b.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	b.ShowWeekOf(time.Date(2024, 6, 10, 0, 0, 0, 0, testLoc))

	monday := b.Week().Dates[0]
	if b.SelectAt(monday, "09:30") {
		t.Error("slot matched at 09:30")
	}
	if !b.SelectAt(monday, "09:00") {
		t.Fatal("slot not found at 09:00")
	}
	if b.Selected().ID != "a9" {
		t.Errorf("selected = %s", b.Selected().ID)
	}
	if got := b.Week().Count(models.StatusAvailable); got != 1 {
		t.Errorf("available cells = %d", got)
	}
}

func TestBooking_WeekNavigation(t *testing.T) {
	h := newHarness(t)
	b := panel.NewBooking(h.deps, &fakeBookingAPI{}, "d1")

	start := b.Week().Monday
	if want := calendar.MondayOf(h.deps.Now()); !start.Equal(want) {
		t.Errorf("initial week = %v, want %v", start, want)
	}
	b.ShiftWeek(1)
	if got := b.Week().Monday; !got.Equal(start.AddDate(0, 0, 7)) {
		t.Errorf("next week = %v", got)
	}
}
