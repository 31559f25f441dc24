package calendar

import (
	"testing"
	"time"
)

func TestToPersistable_KeepsWallClock(t *testing.T) {
	warsaw := time.FixedZone("CEST", 2*3600)
	got, err := ToPersistable("2024-06-10T09:00", warsaw)
	if err != nil {
		t.Fatalf("ToPersistable: %v", err)
	}
	if want := "2024-06-10T09:00:00.000Z"; got != want {
		t.Errorf("ToPersistable = %q, want %q", got, want)
	}
}

func TestToPersistable_NegativeOffset(t *testing.T) {
	ny := time.FixedZone("EDT", -4*3600)
	got, err := ToPersistable("2024-06-10T23:30", ny)
	if err != nil {
		t.Fatalf("ToPersistable: %v", err)
	}
	if want := "2024-06-10T23:30:00.000Z"; got != want {
		t.Errorf("ToPersistable = %q, want %q", got, want)
	}
}

func TestToPersistable_Empty(t *testing.T) {
	if _, err := ToPersistable("", time.UTC); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestFormatInput(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	utc := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	if got, want := FormatInput(utc, loc), "2024-01-15T09:00"; got != want {
		t.Errorf("FormatInput = %q, want %q", got, want)
	}
}

func TestAddToInput(t *testing.T) {
	got, ok := AddToInput("2024-06-10T20:00", 8*time.Hour, time.UTC)
	if !ok {
		t.Fatal("AddToInput reported parse failure")
	}
	if want := "2024-06-11T04:00"; got != want {
		t.Errorf("AddToInput = %q, want %q", got, want)
	}
	if _, ok := AddToInput("garbage", time.Hour, time.UTC); ok {
		t.Error("AddToInput(garbage) should fail")
	}
}
