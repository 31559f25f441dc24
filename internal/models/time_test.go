package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimestamp_NaiveIsLocal(t *testing.T) {
	got, err := ParseTimestamp("2024-06-10T09:00:00")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	want := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseTimestamp = %v, want %v", got, want)
	}
}

func TestParseTimestamp_Zoned(t *testing.T) {
	got, err := ParseTimestamp("2024-06-10T09:00:00Z")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if got.UTC().Hour() != 9 {
		t.Errorf("hour = %d, want 9", got.UTC().Hour())
	}
}

func TestParseTimestamp_Fractional(t *testing.T) {
	if _, err := ParseTimestamp("2024-06-10T09:00:00.123456"); err != nil {
		t.Errorf("ParseTimestamp: %v", err)
	}
}

func TestParseTimestamp_Garbage(t *testing.T) {
	if _, err := ParseTimestamp("next tuesday"); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestAppointment_UnmarshalAcceptsEitherID(t *testing.T) {
	for _, body := range []string{
		`{"_id":"a1","doctor_id":"d1","start_time":"2024-06-10T09:00:00","status":"available"}`,
		`{"id":"a1","doctor_id":"d1","start_time":"2024-06-10T09:00:00","status":"available"}`,
	} {
		var a Appointment
		if err := json.Unmarshal([]byte(body), &a); err != nil {
			t.Fatalf("Unmarshal(%s): %v", body, err)
		}
		if a.ID != "a1" {
			t.Errorf("ID = %q, want %q", a.ID, "a1")
		}
		if a.StartTime.Hour() != 9 {
			t.Errorf("StartTime hour = %d, want 9", a.StartTime.Hour())
		}
		if !a.IsBookable() {
			t.Error("available slot should be bookable")
		}
	}
}

func TestAppointment_NullDetailsAndPatient(t *testing.T) {
	body := `{"_id":"a1","doctor_id":"d1","patient_id":null,"details":null,"start_time":"2024-06-10T09:00:00","end_time":null,"status":"available"}`
	var a Appointment
	if err := json.Unmarshal([]byte(body), &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if a.PatientID != nil || a.Details != nil || a.EndTime != nil {
		t.Errorf("expected nil optional fields, got %+v", a)
	}
}

func TestFullAppointment_Unmarshal(t *testing.T) {
	body := `{"id":"a1","doctor_id":"d1","patient_id":"p1","start_time":"2024-06-10T09:00:00","end_time":"2024-06-10T09:30:00","status":"booked","patient_data":{"full_name":"Jan Kowalski","email":"jan@example.com"}}`
	var f FullAppointment
	if err := json.Unmarshal([]byte(body), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if f.ID != "a1" || f.PatientData == nil || f.PatientData.FullName != "Jan Kowalski" {
		t.Errorf("unexpected decode: %+v", f)
	}
	if f.EndTime == nil || f.EndTime.Minute() != 30 {
		t.Errorf("EndTime = %v, want :30", f.EndTime)
	}
}

func TestTime_MarshalNaive(t *testing.T) {
	b, err := json.Marshal(NewTime(time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-06-10T09:00:00"` {
		t.Errorf("Marshal = %s, want %q", b, "2024-06-10T09:00:00")
	}
}

func TestTime_NaiveRoundTripInConfiguredZone(t *testing.T) {
	prevLocal := time.Local
	time.Local = time.UTC
	cet := time.FixedZone("CET", 3600)
	SetLocation(cet)
	t.Cleanup(func() {
		time.Local = prevLocal
		SetLocation(nil)
	})

	var got Time
	if err := json.Unmarshal([]byte(`"2024-06-10T09:00:00"`), &got); err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2024, 6, 10, 9, 0, 0, 0, cet); !got.Equal(want) {
		t.Errorf("decoded %v, want %v", got.Time, want)
	}
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-06-10T09:00:00"` {
		t.Errorf("encoded %s", b)
	}
}

func TestLocation_DefaultsToLocal(t *testing.T) {
	SetLocation(nil)
	if Location() != time.Local {
		t.Errorf("Location() = %v, want time.Local", Location())
	}
}
