package panel

import (
	"context"
	"strings"

	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
)

// DoctorFormAPI is the part of the backend the doctor form uses.
type DoctorFormAPI interface {
	Doctor(ctx context.Context, id string) (*models.User, error)
	RegisterDoctor(ctx context.Context, req models.UserCreate) (*models.User, error)
	UpdateDoctor(ctx context.Context, id string, req models.DoctorUpdate) error
}

// DoctorInput is the doctor form. Password is only used when creating.
type DoctorInput struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email,clinicdomain"`
	Password string `json:"password" validate:"required,min=6"`
}

type doctorEdit struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email,clinicdomain"`
}

// DoctorForm creates a doctor account, or edits one when opened with an id.
type DoctorForm struct {
	deps Deps
	api  DoctorFormAPI
	id   string
	g    guard

	Input   DoctorInput
	Touched Touched
	Errors  FieldErrors
}

// NewDoctorForm opens the form; an empty id means a new doctor.
func NewDoctorForm(deps Deps, a DoctorFormAPI, id string) *DoctorForm {
	return &DoctorForm{deps: deps.withDefaults(), api: a, id: id, Touched: Touched{}}
}

// IsEdit reports whether the form edits an existing doctor.
func (f *DoctorForm) IsEdit() bool { return f.id != "" }

// Load prefills an edit form with the doctor's current name and e-mail.
func (f *DoctorForm) Load(ctx context.Context) error {
	if !f.IsEdit() {
		return nil
	}
	doctor, err := f.api.Doctor(ctx, f.id)
	if err != nil {
		f.deps.fail(err, i18n.ErrorDefault, "load doctor")
		return err
	}
	f.Input.FullName = doctor.FullName
	f.Input.Email = doctor.Email
	return nil
}

// Submit validates and saves, then returns to the admin panel.
func (f *DoctorForm) Submit(ctx context.Context) error {
	f.Input.Email = strings.TrimSpace(f.Input.Email)
	f.Input.FullName = strings.TrimSpace(f.Input.FullName)

	var form any = f.Input
	fields := []string{"full_name", "email", "password"}
	if f.IsEdit() {
		form = doctorEdit{FullName: f.Input.FullName, Email: f.Input.Email}
		fields = fields[:2]
	}
	f.Errors = nil
	if err := f.deps.check(form); err != nil {
		f.Touched.All(fields...)
		if fe, ok := err.(FieldErrors); ok {
			f.Errors = fe
		}
		return err
	}

	if !f.g.enter() {
		return ErrInFlight
	}
	defer f.g.leave()

	if f.IsEdit() {
		err := f.api.UpdateDoctor(ctx, f.id, models.DoctorUpdate{FullName: f.Input.FullName, Email: f.Input.Email})
		if err != nil {
			f.deps.fail(err, i18n.ErrorDefault, "update doctor")
			return err
		}
		f.deps.show(notify.Success, i18n.UpdateDoctorSuccess)
	} else {
		_, err := f.api.RegisterDoctor(ctx, models.UserCreate{
			Email:    f.Input.Email,
			Password: f.Input.Password,
			FullName: f.Input.FullName,
		})
		if err != nil {
			f.deps.fail(err, i18n.ErrorDefault, "create doctor")
			return err
		}
		f.deps.show(notify.Success, i18n.CreateDoctorSuccess)
	}
	f.deps.Nav.Navigate(RouteAdmin)
	return nil
}
