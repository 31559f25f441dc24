package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"medclinic-client/internal/models"
)

func TestMondayOf_Properties(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)
	for i := 0; i < 400; i++ {
		d := start.AddDate(0, 0, i).Add(time.Duration(i%24) * time.Hour)
		m := MondayOf(d)
		if m.Weekday() != time.Monday {
			t.Fatalf("MondayOf(%v) = %v, weekday %v", d, m, m.Weekday())
		}
		if m.After(d) {
			t.Fatalf("MondayOf(%v) = %v is after input", d, m)
		}
		if d.Sub(m) >= 7*24*time.Hour {
			t.Fatalf("MondayOf(%v) = %v is a week or more before input", d, m)
		}
		if m.Hour() != 0 || m.Minute() != 0 {
			t.Fatalf("MondayOf(%v) = %v is not midnight", d, m)
		}
	}
}

func TestMondayOf_Sunday(t *testing.T) {
	sunday := time.Date(2024, 6, 16, 15, 0, 0, 0, time.UTC)
	got := MondayOf(sunday)
	want := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MondayOf(Sunday) = %v, want %v", got, want)
	}
}

func TestWeekDates(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	dates := WeekDates(monday)
	if len(dates) != 7 {
		t.Fatalf("len = %d, want 7", len(dates))
	}
	for i, d := range dates {
		want := monday.AddDate(0, 0, i)
		if !d.Equal(want) {
			t.Errorf("dates[%d] = %v, want %v", i, d, want)
		}
	}
	if dates[6].Weekday() != time.Sunday {
		t.Errorf("last day = %v, want Sunday", dates[6].Weekday())
	}
}

func TestTimeSlots(t *testing.T) {
	if len(TimeSlots) != 24 {
		t.Fatalf("len = %d, want 24", len(TimeSlots))
	}
	if TimeSlots[0] != "08:00" {
		t.Errorf("first = %q, want %q", TimeSlots[0], "08:00")
	}
	if TimeSlots[23] != "19:30" {
		t.Errorf("last = %q, want %q", TimeSlots[23], "19:30")
	}
	for i := 1; i < len(TimeSlots); i++ {
		if TimeSlots[i-1] >= TimeSlots[i] {
			t.Errorf("slots not ascending at %d: %q >= %q", i, TimeSlots[i-1], TimeSlots[i])
		}
	}
}

func TestShiftWeek(t *testing.T) {
	monday := time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC)
	if got := ShiftWeek(monday, 1); !got.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ShiftWeek(+1) = %v", got)
	}
	if got := ShiftWeek(monday, -1); !got.Equal(time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ShiftWeek(-1) = %v", got)
	}
}

func appt(id string, start time.Time, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{ID: id, DoctorID: "d1", StartTime: models.NewTime(start), Status: status}
}

func TestSlotFor_NoMatch(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	appts := []models.Appointment{appt("a", day.Add(10*time.Hour), models.StatusAvailable)}
	if got := SlotFor(appts, day, "09:00"); got != nil {
		t.Errorf("SlotFor = %+v, want nil", got)
	}
	if got := SlotFor(nil, day, "09:00"); got != nil {
		t.Errorf("SlotFor(nil) = %+v, want nil", got)
	}
}

func TestSlotFor_UniqueMatch(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	appts := []models.Appointment{
		appt("other-day", day.AddDate(0, 0, 1).Add(9*time.Hour), models.StatusAvailable),
		appt("match", day.Add(9*time.Hour), models.StatusBooked),
	}
	got := SlotFor(appts, day, "09:00")
	if got == nil || got.ID != "match" {
		t.Fatalf("SlotFor = %+v, want match", got)
	}
}

func TestSlotFor_FirstOfDuplicates(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	appts := []models.Appointment{
		appt("first", day.Add(9*time.Hour), models.StatusAvailable),
		appt("second", day.Add(9*time.Hour), models.StatusBooked),
	}
	got := SlotFor(appts, day, "09:00")
	if got == nil || got.ID != "first" {
		t.Fatalf("SlotFor = %+v, want first", got)
	}
}

func TestBuildWeek_BackendSlotLandsOnMonday(t *testing.T) {
	var appts []models.Appointment
	body := `[{"_id":"a1","doctor_id":"d1","start_time":"2024-06-10T09:00:00","status":"available"}]`
	if err := json.Unmarshal([]byte(body), &appts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	monday := MondayOf(time.Date(2024, 6, 12, 13, 0, 0, 0, time.Local))
	week := BuildWeek(monday, appts)

	if got := SlotFor(appts, week.Dates[0], "09:00"); got == nil || got.ID != "a1" {
		t.Errorf("Monday 09:00 = %+v, want a1", got)
	}
	if got := SlotFor(appts, week.Dates[0], "09:30"); got != nil {
		t.Errorf("Monday 09:30 = %+v, want nil", got)
	}
	if n := week.Count(models.StatusAvailable); n != 1 {
		t.Errorf("available cells = %d, want 1", n)
	}
	if len(week.Rows) != 24 || len(week.Rows[0]) != 7 {
		t.Errorf("grid = %dx%d, want 24x7", len(week.Rows), len(week.Rows[0]))
	}
	if c := week.Rows[2][0]; c.Label != "09:00" || c.Appointment == nil {
		t.Errorf("Rows[2][0] = %+v, want 09:00 with appointment", c)
	}
}
