package panel_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

type fakeScheduleAPI struct {
	requests []models.BulkScheduleRequest
	err      error
}

func (f *fakeScheduleAPI) GenerateBulkSchedule(_ context.Context, req models.BulkScheduleRequest) (*models.ScheduleResult, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &models.ScheduleResult{Message: "ok", Count: 16}, nil
}

func TestScheduleWizard_StartChangeOverwritesEnd(t *testing.T) {
	h := newHarness(t)
	w := panel.NewScheduleWizard(h.deps, &fakeScheduleAPI{}, "d1")

	w.SetStart("2024-06-10T08:00")
	if w.Form.EndTime != "2024-06-10T16:00" {
		t.Errorf("end = %q, want start+8h", w.Form.EndTime)
	}
	w.SetEnd("2024-06-10T12:00")
	w.SetStart("2024-06-11T19:30")
	if w.Form.EndTime != "2024-06-12T03:30" {
		t.Errorf("end = %q, want overwritten to start+8h", w.Form.EndTime)
	}
}

func TestScheduleWizard_DefaultsAndGate(t *testing.T) {
	h := newHarness(t)
	w := panel.NewScheduleWizard(h.deps, &fakeScheduleAPI{}, "d1")

	if w.Step() != 1 || w.Form.IntervalMinutes != panel.DefaultInterval {
		t.Fatalf("step = %d, interval = %d", w.Step(), w.Form.IntervalMinutes)
	}
	err := w.Next()
	if !errors.Is(err, panel.ErrFormInvalid) {
		t.Fatalf("Next err = %v", err)
	}
	if w.Step() != 1 || !w.Touched["start_time"] || !w.Touched["end_time"] {
		t.Errorf("step = %d, touched = %v", w.Step(), w.Touched)
	}
	h.expectToast(t, notify.Warning, h.catalog.T(i18n.FillTimeframes))

	w.SetStart("2024-06-10T08:00")
	if err := w.Next(); err != nil || w.Step() != 2 {
		t.Fatalf("Next = %v, step %d", err, w.Step())
	}
	w.Back()
	if w.Step() != 1 {
		t.Errorf("Back: step = %d", w.Step())
	}
}

func TestScheduleWizard_Breaks(t *testing.T) {
	h := newHarness(t)
	w := panel.NewScheduleWizard(h.deps, &fakeScheduleAPI{}, "d1")

	w.AddBreak()
	if got := w.Form.Breaks[0]; got.Start != "2024-06-12T10:00" || got.End != "2024-06-12T10:30" {
		t.Errorf("break without start = %+v, want now..now+30m", got)
	}

	w.SetStart("2024-06-10T08:00")
	w.AddBreak()
	if got := w.Form.Breaks[1]; got.Start != "2024-06-10T08:00" || got.End != "2024-06-10T08:30" {
		t.Errorf("break = %+v, want start..start+30m", got)
	}

	w.SetBreakStart(1, "2024-06-10T12:15")
	if got := w.Form.Breaks[1]; got.End != "2024-06-10T12:45" {
		t.Errorf("end after start change = %q", got.End)
	}
	w.SetBreakEnd(1, "2024-06-10T13:00")
	if got := w.Form.Breaks[1]; got.Start != "2024-06-10T12:15" || got.End != "2024-06-10T13:00" {
		t.Errorf("break = %+v", got)
	}

	if !w.RemoveBreak(0) || len(w.Form.Breaks) != 1 || w.Form.Breaks[0].Start != "2024-06-10T12:15" {
		t.Errorf("breaks after remove = %+v", w.Form.Breaks)
	}
	if w.RemoveBreak(5) || w.SetBreakStart(-1, "x") {
		t.Error("out of range index accepted")
	}
}

func TestScheduleWizard_SubmitSendsPersistableTimes(t *testing.T) {
	h := newHarness(t)
	fake := &fakeScheduleAPI{}
	w := panel.NewScheduleWizard(h.deps, fake, "d1")

	w.SetStart("2024-06-10T08:00")
	w.SetInterval(20)
	w.AddBreak()
	w.SetBreakStart(0, "2024-06-10T12:00")

	result, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Count != 16 || len(fake.requests) != 1 {
		t.Fatalf("result = %+v, requests = %d", result, len(fake.requests))
	}
	want := models.BulkScheduleRequest{
		DoctorID:        "d1",
		StartTime:       "2024-06-10T08:00:00.000Z",
		EndTime:         "2024-06-10T16:00:00.000Z",
		IntervalMinutes: 20,
		Breaks:          []models.BreakWindow{{Start: "2024-06-10T12:00:00.000Z", End: "2024-06-10T12:30:00.000Z"}},
	}
	got := fake.requests[0]
	if got.DoctorID != want.DoctorID || got.StartTime != want.StartTime || got.EndTime != want.EndTime ||
		got.IntervalMinutes != want.IntervalMinutes || len(got.Breaks) != 1 || got.Breaks[0] != want.Breaks[0] {
		t.Errorf("request = %+v, want %+v", got, want)
	}
	h.expectToast(t, notify.Success, h.catalog.T(i18n.ScheduleSuccess))
}

func TestScheduleWizard_IntervalBelowMinimumRejected(t *testing.T) {
	h := newHarness(t)
	fake := &fakeScheduleAPI{}
	w := panel.NewScheduleWizard(h.deps, fake, "d1")

	w.SetStart("2024-06-10T08:00")
	w.SetInterval(3)
	if _, err := w.Submit(context.Background()); !errors.Is(err, panel.ErrFormInvalid) {
		t.Fatalf("Submit err = %v", err)
	}
	if len(fake.requests) != 0 || !w.Errors.Has("interval_minutes") {
		t.Errorf("requests = %d, errors = %v", len(fake.requests), w.Errors)
	}
}

func TestScheduleWizard_BackendFailure(t *testing.T) {
	h := newHarness(t)
	detail := "No new slots were generated"
	w := panel.NewScheduleWizard(h.deps, &fakeScheduleAPI{err: &api.Error{StatusCode: http.StatusBadRequest, Detail: detail}}, "d1")

	w.SetStart("2024-06-10T08:00")
	if _, err := w.Submit(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	h.expectToast(t, notify.Error, detail)
}

func TestScheduleWizard_GeneratedSlotLandsOnGridInConfiguredZone(t *testing.T) {
	prevLocal := time.Local
	time.Local = time.UTC
	models.SetLocation(testLoc)
	t.Cleanup(func() {
		time.Local = prevLocal
		models.SetLocation(nil)
	})

	h := newHarness(t)
	fake := &fakeScheduleAPI{}
	w := panel.NewScheduleWizard(h.deps, fake, "d1")
	w.SetStart("2024-06-10T09:00")
	w.SetEnd("2024-06-10T09:30")
	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// The backend keeps the wall clock of what it receives and answers with a naive timestamp.
	sent, err := models.ParseTimestamp(fake.requests[0].StartTime)
	if err != nil {
		t.Fatal(err)
	}
	echoed := sent.UTC().Format(models.NaiveLayout)
	var appt models.Appointment
	body := fmt.Sprintf(`{"_id":"s1","doctor_id":"d1","start_time":%q,"status":"available"}`, echoed)
	if err := json.Unmarshal([]byte(body), &appt); err != nil {
		t.Fatal(err)
	}

	monday := calendar.MondayOf(time.Date(2024, 6, 10, 0, 0, 0, 0, testLoc))
	if calendar.SlotFor([]models.Appointment{appt}, monday, "09:00") == nil {
		t.Errorf("slot entered at 09:00 not on the grid at 09:00 (echoed %s, decoded %v)", echoed, appt.StartTime.In(testLoc))
	}
}
