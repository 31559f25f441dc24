// Package cli is the medclinic command line. Every command drives one panel
// screen against the clinic backend.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"medclinic-client/internal/api"
	"medclinic-client/internal/config"
	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
	"medclinic-client/internal/panel"
	"medclinic-client/internal/session"
	"medclinic-client/internal/utils"
)

var errWrongRole = errors.New("command not available for this account")

// shownError is a failure the user has already seen as a notification.
type shownError struct{ err error }

func (e *shownError) Error() string { return e.err.Error() }
func (e *shownError) Unwrap() error { return e.err }

type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	session *session.Session
	catalog *i18n.Catalog
	center  *notify.Center
	client  *api.Client
	loc     *time.Location
	now     func() time.Time

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	yes    bool
}

// NewRootCmd builds the medclinic command tree reading answers from in and
// printing to out.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: bufio.NewReader(in), out: out, errOut: errOut, now: time.Now}

	root := &cobra.Command{
		Use:           "medclinic",
		Short:         "Medical clinic appointment client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String("api-url", "", "backend base URL (CLINIC_API_URL)")
	flags.String("session", "", "session file (CLINIC_SESSION_FILE)")
	flags.String("lang", "", "message language, pl or en (CLINIC_LANG)")
	flags.String("tz", "", "time zone of entered and shown times (CLINIC_TZ)")
	flags.String("log-level", "", "log level (CLINIC_LOG_LEVEL)")
	flags.BoolVarP(&a.yes, "yes", "y", false, "answer yes to every confirmation")

	root.AddCommand(
		loginCmd(a), logoutCmd(a), registerCmd(a), whoamiCmd(a),
		doctorsCmd(a), calendarCmd(a), bookCmd(a),
		appointmentsCmd(a), cancelCmd(a), historyCmd(a),
		adminCmd(a), doctorCmd(a),
		devserverCmd(a),
	)
	return root
}

// Execute runs root and reports any error not already shown. It returns the
// process exit code.
func Execute(ctx context.Context, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var shown *shownError
	if !errors.As(err, &shown) {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return 1
}

// NewLogger builds the process logger: JSON by default, console output in development.
func NewLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(w).With().Timestamp().Logger()
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}
	return logger.Level(level)
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = NewLogger(cfg, a.errOut)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	a.loc = loc
	models.SetLocation(loc)

	sess, err := session.Load(cfg.SessionFile)
	if err != nil {
		a.log.Warn().Err(err).Msg("session file unreadable, starting logged out")
	}
	a.session = sess

	a.catalog = i18n.New(i18n.ParseLang(cfg.Lang))
	a.center = notify.NewCenter(a.log, notify.NewWriterSink(a.out))
	a.client = api.NewClient(cfg.APIURL,
		api.WithTokenSource(sess),
		api.WithLogger(a.log),
		api.WithTimeout(cfg.RequestTimeout),
	)
	return nil
}

func (a *app) deps() panel.Deps {
	return panel.Deps{
		Session:  a.session,
		Notifier: a.center,
		Catalog:  a.catalog,
		Nav: panel.NavigatorFunc(func(route string) {
			a.log.Debug().Str("route", route).Msg("navigate")
		}),
		Confirm:  &promptConfirmer{in: a.in, out: a.out, yes: a.yes},
		Validate: utils.NewValidator(a.cfg.DoctorEmailDomain),
		Log:      a.log,
		Loc:      a.loc,
		Now:      a.now,
	}
}

// require checks the session against the roles a command is for.
func (a *app) require(roles ...models.Role) error {
	redirect, ok := panel.Guard(a.session.IsLoggedIn(), a.session.Role(), roles...)
	if ok {
		return nil
	}
	if redirect == panel.RouteLogin {
		return panel.ErrNotAuthenticated
	}
	return fmt.Errorf("%w (signed in as %s)", errWrongRole, a.session.Role())
}

// finish maps a workflow result to the command result. Declined
// confirmations are not failures; backend failures were already shown.
func (a *app) finish(err error) error {
	switch {
	case err == nil, errors.Is(err, panel.ErrDeclined):
		return nil
	case errors.Is(err, panel.ErrFormInvalid), errors.Is(err, panel.ErrInFlight),
		errors.Is(err, panel.ErrNotAllowed), errors.Is(err, panel.ErrNoSelection):
		return err
	}
	return &shownError{err: err}
}
