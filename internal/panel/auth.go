package panel

import (
	"context"
	"fmt"
	"strings"

	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
)

// AuthAPI is the part of the backend the login and register screens use.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.UserCreate) (*models.User, error)
}

// LoginForm is the login screen's input.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
}

// RegisterForm is the patient sign-up input.
type RegisterForm struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Auth drives the login and register screens and logout.
type Auth struct {
	deps Deps
	api  AuthAPI
	g    guard

	Touched Touched
	Errors  FieldErrors
}

// NewAuth creates the auth screens' state.
func NewAuth(deps Deps, a AuthAPI) *Auth {
	return &Auth{deps: deps.withDefaults(), api: a, Touched: Touched{}}
}

// Login validates the form, logs in and stores the session, then navigates
// to the role's home screen.
func (a *Auth) Login(ctx context.Context, form LoginForm) error {
	form.Email = strings.TrimSpace(form.Email)
	if err := a.validate(form, "email", "password"); err != nil {
		return err
	}
	if !a.g.enter() {
		return ErrInFlight
	}
	defer a.g.leave()

	resp, err := a.api.Login(ctx, form.Email, form.Password)
	if err != nil {
		a.deps.fail(err, i18n.AuthLoginError, "login")
		return err
	}
	if err := a.deps.Session.Apply(resp); err != nil {
		a.deps.fail(err, i18n.AuthLoginError, "login")
		return fmt.Errorf("store session: %w", err)
	}

	a.deps.show(notify.Success, i18n.LoginSuccess)
	a.deps.Log.Info().Str("email", form.Email).Str("role", string(a.deps.Session.Role())).Msg("logged in")
	a.deps.Nav.Navigate(HomeFor(a.deps.Session.Role()))
	return nil
}

// Register creates a patient account and sends the user to the login screen.
func (a *Auth) Register(ctx context.Context, form RegisterForm) error {
	form.Email = strings.TrimSpace(form.Email)
	if err := a.validate(form, "full_name", "email", "password"); err != nil {
		return err
	}
	if !a.g.enter() {
		return ErrInFlight
	}
	defer a.g.leave()

	_, err := a.api.Register(ctx, models.UserCreate{
		Email:    form.Email,
		Password: form.Password,
		FullName: form.FullName,
	})
	if err != nil {
		a.deps.fail(err, i18n.RegisterDefaultError, "register")
		return err
	}
	a.deps.show(notify.Success, i18n.RegisterSuccess)
	a.deps.Nav.Navigate(RouteLogin)
	return nil
}

// Logout clears the session and returns to the login screen.
func (a *Auth) Logout() error {
	if err := a.deps.Session.Clear(); err != nil {
		return err
	}
	a.deps.Nav.Navigate(RouteLogin)
	return nil
}

func (a *Auth) validate(form any, fields ...string) error {
	a.Errors = nil
	if err := a.deps.check(form); err != nil {
		a.Touched.All(fields...)
		if fe, ok := err.(FieldErrors); ok {
			a.Errors = fe
		}
		a.deps.show(notify.Warning, i18n.AuthFormInvalid)
		return err
	}
	return nil
}
