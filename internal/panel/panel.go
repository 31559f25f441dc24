// Package panel holds the state and workflows behind every screen of the
// clinic client: login, the admin, doctor and patient panels, booking and
// the schedule wizard. Front ends render the state and call the methods.
package panel

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"medclinic-client/internal/api"
	"medclinic-client/internal/i18n"
	"medclinic-client/internal/notify"
	"medclinic-client/internal/session"
	"medclinic-client/internal/utils"
)

var (
	// ErrInFlight is returned when an action is submitted while the previous
	// submission has not finished. No request is issued.
	ErrInFlight = errors.New("request already in progress")
	// ErrFormInvalid is wrapped by every FieldErrors value.
	ErrFormInvalid = errors.New("form invalid")
	// ErrNotAuthenticated is returned when an action needs a logged-in user.
	ErrNotAuthenticated = errors.New("login required")
	// ErrDeclined is returned when the user answers no to a confirmation.
	ErrDeclined = errors.New("action declined")
	// ErrNotAllowed is returned when the session may not perform the action.
	ErrNotAllowed = errors.New("action not allowed")
)

// Navigator moves the front end to another screen.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

// Navigate calls f(route).
func (f NavigatorFunc) Navigate(route string) { f(route) }

// Confirmer asks the user to confirm a destructive or state-changing action.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, title, message string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, title, message string) (bool, error) {
	return f(ctx, title, message)
}

// AlwaysConfirm accepts every prompt.
var AlwaysConfirm = ConfirmFunc(func(context.Context, string, string) (bool, error) { return true, nil })

// Deps are the collaborators shared by every screen.
type Deps struct {
	Session  *session.Session
	Notifier notify.Notifier
	Catalog  *i18n.Catalog
	Nav      Navigator
	Confirm  Confirmer
	Validate *validator.Validate
	Log      zerolog.Logger
	Loc      *time.Location
	Now      func() time.Time
}

// withDefaults fills the optional collaborators.
func (d Deps) withDefaults() Deps {
	if d.Session == nil {
		d.Session = session.New("")
	}
	if d.Catalog == nil {
		d.Catalog = i18n.New(i18n.Polish)
	}
	if d.Notifier == nil {
		d.Notifier = notify.NewCenter(d.Log)
	}
	if d.Nav == nil {
		d.Nav = NavigatorFunc(func(string) {})
	}
	if d.Confirm == nil {
		d.Confirm = AlwaysConfirm
	}
	if d.Validate == nil {
		d.Validate = utils.NewValidator(utils.DefaultDoctorDomain)
	}
	if d.Loc == nil {
		d.Loc = time.Local
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

func (d *Deps) t(k i18n.Key) string { return d.Catalog.T(k) }

func (d *Deps) show(kind notify.Kind, k i18n.Key) {
	d.Notifier.Show(kind, d.t(k))
}

// fail reports a backend failure: the backend's detail when it sent one,
// the localized fallback otherwise.
func (d *Deps) fail(err error, fallback i18n.Key, action string) {
	d.Log.Warn().Err(err).Str("action", action).Msg("request failed")
	d.Notifier.Show(notify.Error, api.DetailOr(err, d.t(fallback)))
}

// check validates a form struct, returning FieldErrors when a rule fails.
func (d *Deps) check(form any) error {
	err := d.Validate.Struct(form)
	if err == nil {
		return nil
	}
	if fields := utils.FieldErrors(err); fields != nil {
		return FieldErrors(fields)
	}
	return err
}

// FieldErrors maps form field names to the rule they broke.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e[name])
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// Unwrap makes errors.Is(err, ErrFormInvalid) hold.
func (e FieldErrors) Unwrap() error { return ErrFormInvalid }

// Has reports whether field failed validation.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Touched tracks which form fields the user has interacted with; errors are
// shown only for touched fields.
type Touched map[string]bool

// All marks every named field as touched.
func (t Touched) All(fields ...string) {
	for _, f := range fields {
		t[f] = true
	}
}

// guard rejects a second submission while one is pending.
type guard struct {
	busy atomic.Bool
}

func (g *guard) enter() bool { return g.busy.CompareAndSwap(false, true) }
func (g *guard) leave()      { g.busy.Store(false) }

// Pending reports whether a submission is running.
func (g *guard) Pending() bool { return g.busy.Load() }

// action is one confirm-then-mutate flow.
type action struct {
	name    string
	title   string
	message string
	success i18n.Key
	failure i18n.Key
	run     func(ctx context.Context) error
	after   func(ctx context.Context) error
}

// runConfirmed asks for confirmation and, on yes, issues exactly one request.
// Success notifies and runs the follow-up reload; failure notifies and leaves
// state untouched. Declining returns ErrDeclined without a request.
func (d *Deps) runConfirmed(ctx context.Context, g *guard, a action) error {
	if !g.enter() {
		return ErrInFlight
	}
	defer g.leave()

	ok, err := d.Confirm.Confirm(ctx, a.title, a.message)
	if err != nil {
		return fmt.Errorf("confirm %s: %w", a.name, err)
	}
	if !ok {
		return ErrDeclined
	}

	if err := a.run(ctx); err != nil {
		d.fail(err, a.failure, a.name)
		return err
	}
	d.show(notify.Success, a.success)
	if a.after != nil {
		return a.after(ctx)
	}
	return nil
}
