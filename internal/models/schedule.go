package models

// BreakWindow excludes a time range from bulk slot generation.
type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BulkScheduleRequest is the body of POST /admin/generate-bulk-schedule.
type BulkScheduleRequest struct {
	DoctorID        string        `json:"doctor_id"`
	StartTime       string        `json:"start_time"`
	EndTime         string        `json:"end_time"`
	IntervalMinutes int           `json:"interval_minutes"`
	Breaks          []BreakWindow `json:"breaks"`
}

// ScheduleResult reports how many slots were generated.
type ScheduleResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
