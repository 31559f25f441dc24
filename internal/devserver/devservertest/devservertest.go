// Package devservertest starts throwaway development backends for tests.
package devservertest

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"medclinic-client/internal/config"
	"medclinic-client/internal/devserver"
	"medclinic-client/internal/devserver/store"
	"medclinic-client/internal/models"
)

const (
	AdminEmail    = "admin@med-clinic.pl"
	AdminPassword = "admin1234"
	Secret        = "test-secret"
)

// Env is a running backend with direct database access for fixtures.
type Env struct {
	URL    string
	Server *devserver.Server
}

// Start serves a fresh in-memory backend for the duration of the test.
func Start(t testing.TB) *Env {
	t.Helper()
	cfg := config.DevServerConfig{
		Origin:               "http://localhost:4200",
		JWTSecret:            Secret,
		JWTExpirationMinutes: 60,
		AdminEmail:           AdminEmail,
		AdminPassword:        AdminPassword,
	}
	srv, err := devserver.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("devserver.New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &Env{URL: ts.URL, Server: srv}
}

// CreateUser inserts an account directly.
func (e *Env) CreateUser(t testing.TB, email, password, fullName string, role models.Role, active bool) store.User {
	t.Helper()
	u := store.User{Email: email, FullName: fullName, Role: role, IsActive: active}
	if err := u.SetPassword(password); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := e.Server.DB.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

// CreateSlot inserts a 30-minute slot for a doctor.
func (e *Env) CreateSlot(t testing.TB, doctorID string, start time.Time, status models.AppointmentStatus) store.Appointment {
	t.Helper()
	a := store.Appointment{
		DoctorID:  doctorID,
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    status,
	}
	if err := e.Server.DB.Create(&a).Error; err != nil {
		t.Fatalf("create slot: %v", err)
	}
	return a
}

// Appointment reloads a slot from the database.
func (e *Env) Appointment(t testing.TB, id string) store.Appointment {
	t.Helper()
	var a store.Appointment
	if err := e.Server.DB.First(&a, "id = ?", id).Error; err != nil {
		t.Fatalf("load appointment %s: %v", id, err)
	}
	return a
}
