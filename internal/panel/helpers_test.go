package panel_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
	"medclinic-client/internal/notify"
	"medclinic-client/internal/panel"
	"medclinic-client/internal/session"
)

var testLoc = time.FixedZone("CET", 3600)

type harness struct {
	deps    panel.Deps
	center  *notify.Center
	catalog *i18n.Catalog
	session *session.Session
	routes  []string
	prompts []string
	answer  bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		center:  notify.NewCenter(zerolog.Nop()),
		catalog: i18n.New(i18n.English),
		session: session.New(""),
		answer:  true,
	}
	h.deps = panel.Deps{
		Session:  h.session,
		Notifier: h.center,
		Catalog:  h.catalog,
		Nav:      panel.NavigatorFunc(func(r string) { h.routes = append(h.routes, r) }),
		Confirm: panel.ConfirmFunc(func(_ context.Context, title, _ string) (bool, error) {
			h.prompts = append(h.prompts, title)
			return h.answer, nil
		}),
		Log: zerolog.Nop(),
		Loc: testLoc,
		Now: func() time.Time { return time.Date(2024, 6, 12, 10, 0, 0, 0, testLoc) },
	}
	return h
}

// login stores a session for role; a nil active leaves the claim out.
func (h *harness) login(t *testing.T, role models.Role, active *bool) {
	t.Helper()
	claims := jwt.MapClaims{"sub": "user-1", "role": string(role)}
	if active != nil {
		claims["is_active"] = *active
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test"))
	if err != nil {
		t.Fatal(err)
	}
	resp := &models.AuthResponse{AccessToken: tok, TokenType: "bearer", User: models.UserState{Email: "u@example.com", Role: role}}
	if err := h.session.Apply(resp); err != nil {
		t.Fatalf("Apply: %v", err)
	}
}

func (h *harness) lastToast(t *testing.T) notify.Toast {
	t.Helper()
	toast, ok := h.center.Last()
	if !ok {
		t.Fatal("no notification shown")
	}
	return toast
}

func (h *harness) expectToast(t *testing.T, kind notify.Kind, msg string) {
	t.Helper()
	got := h.lastToast(t)
	if got.Kind != kind || got.Message != msg {
		t.Errorf("toast = %s %q, want %s %q", got.Kind, got.Message, kind, msg)
	}
}

func (h *harness) lastRoute() string {
	if len(h.routes) == 0 {
		return ""
	}
	return h.routes[len(h.routes)-1]
}

func at(day, hour, minute int) models.Time {
	return models.NewTime(time.Date(2024, 6, day, hour, minute, 0, 0, testLoc))
}

func boolPtr(b bool) *bool { return &b }
