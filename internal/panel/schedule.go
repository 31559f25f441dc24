package panel

import (
	"context"
	"fmt"
	"time"

	"medclinic-client/internal/calendar"
	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
)

const (
	// DefaultInterval is the slot length the wizard starts with, in minutes.
	DefaultInterval = 30
	// WorkdayLength is how far after the start the end is suggested.
	WorkdayLength = 8 * time.Hour
	// BreakLength is the suggested length of a new break.
	BreakLength = 30 * time.Minute
)

// ScheduleAPI is the part of the backend the schedule wizard uses.
type ScheduleAPI interface {
	GenerateBulkSchedule(ctx context.Context, req models.BulkScheduleRequest) (*models.ScheduleResult, error)
}

// BreakInput is one pause, as local "YYYY-MM-DDTHH:mm" values.
type BreakInput struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// ScheduleForm holds the wizard's inputs as local "YYYY-MM-DDTHH:mm" values.
type ScheduleForm struct {
	StartTime       string       `json:"start_time" validate:"required"`
	EndTime         string       `json:"end_time" validate:"required"`
	IntervalMinutes int          `json:"interval_minutes" validate:"required,min=5"`
	Breaks          []BreakInput `json:"breaks" validate:"dive"`
}

// ScheduleWizard generates a block of available slots for a doctor in two
// steps: the time frame and interval, then the breaks.
type ScheduleWizard struct {
	deps     Deps
	api      ScheduleAPI
	doctorID string
	step     int
	g        guard

	Form    ScheduleForm
	Touched Touched
	Errors  FieldErrors
}

// NewScheduleWizard starts the wizard on step 1 with the default interval.
func NewScheduleWizard(deps Deps, a ScheduleAPI, doctorID string) *ScheduleWizard {
	return &ScheduleWizard{
		deps:     deps.withDefaults(),
		api:      a,
		doctorID: doctorID,
		step:     1,
		Form:     ScheduleForm{IntervalMinutes: DefaultInterval},
		Touched:  Touched{},
	}
}

// Step is 1 (time frame) or 2 (breaks).
func (w *ScheduleWizard) Step() int { return w.step }

// SetStart sets the start and overwrites the end with start plus a workday.
func (w *ScheduleWizard) SetStart(v string) {
	w.Form.StartTime = v
	if end, ok := calendar.AddToInput(v, WorkdayLength, w.deps.Loc); ok {
		w.Form.EndTime = end
	}
}

// SetEnd sets the end of the time frame.
func (w *ScheduleWizard) SetEnd(v string) { w.Form.EndTime = v }

// SetInterval sets the slot length in minutes.
func (w *ScheduleWizard) SetInterval(minutes int) { w.Form.IntervalMinutes = minutes }

// Next moves to the breaks step once start and end are filled in.
func (w *ScheduleWizard) Next() error {
	missing := FieldErrors{}
	if w.Form.StartTime == "" {
		missing["start_time"] = "required"
	}
	if w.Form.EndTime == "" {
		missing["end_time"] = "required"
	}
	if len(missing) > 0 {
		w.Touched.All("start_time", "end_time")
		w.Errors = missing
		w.deps.show(notify.Warning, i18n.FillTimeframes)
		return missing
	}
	w.Errors = nil
	w.step = 2
	return nil
}

// Back returns to the time frame step.
func (w *ScheduleWizard) Back() { w.step = 1 }

// AddBreak appends a break starting at the schedule start, or now when no
// start is set, and lasting BreakLength.
func (w *ScheduleWizard) AddBreak() {
	start := w.Form.StartTime
	if start == "" {
		start = calendar.FormatInput(w.deps.Now(), w.deps.Loc)
	}
	end, _ := calendar.AddToInput(start, BreakLength, w.deps.Loc)
	w.Form.Breaks = append(w.Form.Breaks, BreakInput{Start: start, End: end})
}

// SetBreakStart changes break i's start and re-suggests its end.
func (w *ScheduleWizard) SetBreakStart(i int, v string) bool {
	if i < 0 || i >= len(w.Form.Breaks) {
		return false
	}
	w.Form.Breaks[i].Start = v
	if end, ok := calendar.AddToInput(v, BreakLength, w.deps.Loc); ok {
		w.Form.Breaks[i].End = end
	}
	return true
}

// SetBreakEnd changes break i's end only.
func (w *ScheduleWizard) SetBreakEnd(i int, v string) bool {
	if i < 0 || i >= len(w.Form.Breaks) {
		return false
	}
	w.Form.Breaks[i].End = v
	return true
}

// RemoveBreak drops break i.
func (w *ScheduleWizard) RemoveBreak(i int) bool {
	if i < 0 || i >= len(w.Form.Breaks) {
		return false
	}
	w.Form.Breaks = append(w.Form.Breaks[:i], w.Form.Breaks[i+1:]...)
	return true
}

// Request converts the form into the backend request, every time in the
// persistable form.
func (w *ScheduleWizard) Request() (models.BulkScheduleRequest, error) {
	loc := w.deps.Loc
	start, err := calendar.ToPersistable(w.Form.StartTime, loc)
	if err != nil {
		return models.BulkScheduleRequest{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := calendar.ToPersistable(w.Form.EndTime, loc)
	if err != nil {
		return models.BulkScheduleRequest{}, fmt.Errorf("end_time: %w", err)
	}
	interval := w.Form.IntervalMinutes
	if interval == 0 {
		interval = DefaultInterval
	}

	breaks := make([]models.BreakWindow, len(w.Form.Breaks))
	for i, b := range w.Form.Breaks {
		bs, err := calendar.ToPersistable(b.Start, loc)
		if err != nil {
			return models.BulkScheduleRequest{}, fmt.Errorf("breaks[%d].start: %w", i, err)
		}
		be, err := calendar.ToPersistable(b.End, loc)
		if err != nil {
			return models.BulkScheduleRequest{}, fmt.Errorf("breaks[%d].end: %w", i, err)
		}
		breaks[i] = models.BreakWindow{Start: bs, End: be}
	}

	return models.BulkScheduleRequest{
		DoctorID:        w.doctorID,
		StartTime:       start,
		EndTime:         end,
		IntervalMinutes: interval,
		Breaks:          breaks,
	}, nil
}

// Submit validates the whole form and posts it.
func (w *ScheduleWizard) Submit(ctx context.Context) (*models.ScheduleResult, error) {
	w.Errors = nil
	if err := w.deps.check(w.Form); err != nil {
		w.touchAll()
		if fe, ok := err.(FieldErrors); ok {
			w.Errors = fe
		}
		return nil, err
	}
	req, err := w.Request()
	if err != nil {
		w.touchAll()
		w.deps.Notifier.Show(notify.Warning, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrFormInvalid, err)
	}
	if !w.g.enter() {
		return nil, ErrInFlight
	}
	defer w.g.leave()

	result, err := w.api.GenerateBulkSchedule(ctx, req)
	if err != nil {
		w.deps.fail(err, i18n.ErrorDefault, "generate schedule")
		return nil, err
	}
	w.deps.show(notify.Success, i18n.ScheduleSuccess)
	w.deps.Log.Info().Str("doctor_id", w.doctorID).Int("count", result.Count).Msg("schedule generated")
	return result, nil
}

func (w *ScheduleWizard) touchAll() {
	w.Touched.All("start_time", "end_time", "interval_minutes")
	for i := range w.Form.Breaks {
		w.Touched.All(fmt.Sprintf("breaks[%d].start", i), fmt.Sprintf("breaks[%d].end", i))
	}
}
