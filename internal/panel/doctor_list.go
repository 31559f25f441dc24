package panel

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"

	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
)

// DoctorListAPI is the part of the backend the patient doctor list uses.
type DoctorListAPI interface {
	Doctors(ctx context.Context) ([]models.User, error)
	DoctorAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error)
}

// SortField selects the doctor list order.
type SortField string

const (
	SortByName     SortField = "name"
	SortByNextTerm SortField = "date"
)

// DoctorEntry is a doctor with the earliest bookable slot, if any.
type DoctorEntry struct {
	models.User
	NextTerm *time.Time
}

// DoctorList is the patient's list of active doctors.
type DoctorList struct {
	deps Deps
	api  DoctorListAPI

	entries       []DoctorEntry
	search        string
	sortBy        SortField
	desc          bool
	onlyAvailable bool
}

// NewDoctorList creates the list sorted by name ascending.
func NewDoctorList(deps Deps, a DoctorListAPI) *DoctorList {
	return &DoctorList{deps: deps.withDefaults(), api: a, sortBy: SortByName}
}

// Load fetches the doctors and, in parallel, every doctor's appointments.
// Any failed request fails the whole load and leaves the previous list.
func (l *DoctorList) Load(ctx context.Context) error {
	doctors, err := l.api.Doctors(ctx)
	if err != nil {
		l.loadFailed(err, "fetch doctors")
		return err
	}

	now := l.deps.Now()
	entries := make([]DoctorEntry, len(doctors))
	g, gctx := errgroup.WithContext(ctx)
	for i, doc := range doctors {
		g.Go(func() error {
			appts, err := l.api.DoctorAppointments(gctx, doc.ID)
			if err != nil {
				return err
			}
			entries[i] = DoctorEntry{User: doc, NextTerm: NextTerm(appts, now)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.loadFailed(err, "fetch doctor appointments")
		return err
	}
	l.entries = entries
	return nil
}

// loadFailed reports a failed load with the generic message; backend details
// only go to the log.
func (l *DoctorList) loadFailed(err error, action string) {
	l.deps.Log.Warn().Err(err).Str("action", action).Msg("request failed")
	l.deps.show(notify.Error, i18n.ErrorDefault)
}

// NextTerm returns the start of the earliest available slot after now.
func NextTerm(appts []models.Appointment, now time.Time) *time.Time {
	var next *time.Time
	for _, a := range appts {
		if !a.IsBookable() || !a.StartTime.After(now) {
			continue
		}
		if next == nil || a.StartTime.Before(*next) {
			t := a.StartTime.Time
			next = &t
		}
	}
	return next
}

// SetSearch filters by doctor name.
func (l *DoctorList) SetSearch(term string) { l.search = term }

// SetOnlyAvailable hides doctors without a bookable slot.
func (l *DoctorList) SetOnlyAvailable(on bool) { l.onlyAvailable = on }

// SetSort selects the order field.
func (l *DoctorList) SetSort(field SortField) { l.sortBy = field }

// ToggleDirection flips ascending and descending order.
func (l *DoctorList) ToggleDirection() { l.desc = !l.desc }

// SetDescending sets the order direction.
func (l *DoctorList) SetDescending(desc bool) { l.desc = desc }

// Visible returns the filtered and sorted doctors. Names compare with the
// catalog language's collation; doctors without a next term sort last in
// either direction.
func (l *DoctorList) Visible() []DoctorEntry {
	term := strings.ToLower(strings.TrimSpace(l.search))
	list := make([]DoctorEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if term != "" && !strings.Contains(strings.ToLower(e.FullName), term) {
			continue
		}
		if l.onlyAvailable && e.NextTerm == nil {
			continue
		}
		list = append(list, e)
	}

	switch l.sortBy {
	case SortByNextTerm:
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i].NextTerm, list[j].NextTerm
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			case l.desc:
				return a.After(*b)
			default:
				return a.Before(*b)
			}
		})
	default:
		col := collate.New(l.deps.Catalog.Lang().Tag(), collate.IgnoreCase)
		sort.SliceStable(list, func(i, j int) bool {
			c := col.CompareString(list[i].FullName, list[j].FullName)
			if l.desc {
				return c > 0
			}
			return c < 0
		})
	}
	return list
}

// Book navigates to a doctor's booking calendar.
func (l *DoctorList) Book(doctorID string) { l.deps.Nav.Navigate(BookingRoute(doctorID)) }
