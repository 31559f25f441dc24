package utils

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultDoctorDomain is the e-mail domain doctor accounts must use.
const DefaultDoctorDomain = "@med-clinic.pl"

var defaultValidator = NewValidator(DefaultDoctorDomain)

// NewValidator returns a validator that reports json field names and knows the
// "clinicdomain" rule (e-mail must end with doctorDomain, case-insensitive).
func NewValidator(doctorDomain string) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	domain := strings.ToLower(doctorDomain)
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("clinicdomain", func(fl validator.FieldLevel) bool {
		email := strings.ToLower(strings.TrimSpace(fl.Field().String()))
		if email == "" {
			return true
		}
		return strings.HasSuffix(email, domain)
	})
	return v
}

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	return defaultValidator.Struct(s)
}

// FieldErrors maps every failing field to the rule it broke, e.g.
// {"reason_for_visit": "min"}. Nested fields keep their path ("breaks[0].start").
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[fieldPath(e)] = e.Tag()
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// FormatValidationError formats validation errors into a readable string.
func FormatValidationError(err error) string {
	fields := FieldErrors(err)
	if fields == nil {
		return err.Error()
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	msgs := make([]string, len(names))
	for i, name := range names {
		msgs[i] = fmt.Sprintf("%s: %s", name, fields[name])
	}
	return strings.Join(msgs, ", ")
}
