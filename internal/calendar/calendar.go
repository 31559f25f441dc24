// Package calendar builds the weekly slot grid shown on booking and schedule
// screens and matches appointments into its cells.
package calendar

import (
	"fmt"
	"time"

	"medclinic-client/internal/models"
)

const (
	// SlotLength is the resolution of the grid.
	SlotLength = 30 * time.Minute

	firstSlotHour = 8
	lastSlotHour  = 19
)

// TimeSlots are the row labels of the grid, "08:00" through "19:30".
var TimeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	slots := make([]string, 0, (lastSlotHour-firstSlotHour+1)*2)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return slots
}

// MondayOf returns local midnight of the Monday starting t's week.
// Sunday belongs to the week that started six days earlier.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// WeekDates returns the seven dates Monday..Sunday of the week starting at monday.
func WeekDates(monday time.Time) []time.Time {
	dates := make([]time.Time, 7)
	y, m, d := monday.Date()
	for i := range dates {
		dates[i] = time.Date(y, m, d+i, 0, 0, 0, 0, monday.Location())
	}
	return dates
}

// ShiftWeek moves a week window by offset weeks. Calendar arithmetic keeps it
// on local midnight across DST changes.
func ShiftWeek(monday time.Time, offset int) time.Time {
	y, m, d := monday.Date()
	return time.Date(y, m, d+7*offset, 0, 0, 0, 0, monday.Location())
}

// SlotFor returns the first appointment starting on date's calendar day whose
// local start time reads label, or nil.
func SlotFor(appointments []models.Appointment, date time.Time, label string) *models.Appointment {
	loc := date.Location()
	y, m, d := date.Date()
	for i := range appointments {
		start := appointments[i].StartTime.In(loc)
		sy, sm, sd := start.Date()
		if sy != y || sm != m || sd != d {
			continue
		}
		if start.Format("15:04") == label {
			return &appointments[i]
		}
	}
	return nil
}

// Cell is one grid position; Appointment is nil for an empty cell.
type Cell struct {
	Date        time.Time
	Label       string
	Appointment *models.Appointment
}

// Week is a rendered grid: Rows[i][j] is TimeSlots[i] on Dates[j].
type Week struct {
	Monday time.Time
	Dates  []time.Time
	Rows   [][]Cell
}

// BuildWeek lays appointments out on the grid of the week starting at monday.
func BuildWeek(monday time.Time, appointments []models.Appointment) Week {
	dates := WeekDates(monday)
	rows := make([][]Cell, len(TimeSlots))
	for i, label := range TimeSlots {
		row := make([]Cell, len(dates))
		for j, date := range dates {
			row[j] = Cell{Date: date, Label: label, Appointment: SlotFor(appointments, date, label)}
		}
		rows[i] = row
	}
	return Week{Monday: monday, Dates: dates, Rows: rows}
}

// Count returns how many cells hold an appointment in the given status.
func (w Week) Count(status models.AppointmentStatus) int {
	n := 0
	for _, row := range w.Rows {
		for _, c := range row {
			if c.Appointment != nil && c.Appointment.Status == status {
				n++
			}
		}
	}
	return n
}
