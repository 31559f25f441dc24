package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"medclinic-client/internal/models"
	"medclinic-client/internal/utils"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func TestApply_MissingActiveClaimMeansActive(t *testing.T) {
	s := New("")
	token := signed(t, jwt.MapClaims{"sub": "p1", "role": "patient", "exp": time.Now().Add(time.Hour).Unix()})

	err := s.Apply(&models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        models.UserState{Email: "p@example.com", FullName: "Pat", Role: models.RolePatient},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !s.IsActive() {
		t.Error("IsActive = false, want true")
	}
	if s.Role() != models.RolePatient || s.UserID() != "p1" {
		t.Errorf("Role/UserID = %q/%q", s.Role(), s.UserID())
	}
	if !s.IsLoggedIn() {
		t.Error("IsLoggedIn = false after Apply")
	}
}

func TestApply_SuspendedDoctor(t *testing.T) {
	s := New("")
	token, err := utils.GenerateToken("d1", models.RoleDoctor, false, "k", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if err := s.Apply(&models.AuthResponse{AccessToken: token}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.IsActive() {
		t.Error("IsActive = true, want false")
	}
	if s.Role() != models.RoleDoctor {
		t.Errorf("Role = %q, want doctor", s.Role())
	}
}

func TestApply_BadToken(t *testing.T) {
	s := New("")
	if err := s.Apply(&models.AuthResponse{AccessToken: "garbage"}); err == nil {
		t.Fatal("expected error")
	}
	if s.IsLoggedIn() {
		t.Error("session should stay logged out")
	}
}

func TestSaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s := New(path)
	token := signed(t, jwt.MapClaims{"sub": "a1", "role": "admin", "is_active": true})
	if err := s.Apply(&models.AuthResponse{AccessToken: token, User: models.UserState{FullName: "Admin"}}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Token() != token || loaded.Role() != models.RoleAdmin {
		t.Errorf("loaded = %+v", loaded.Snapshot())
	}
	if u := loaded.User(); u == nil || u.FullName != "Admin" {
		t.Errorf("User = %+v", u)
	}

	if err := loaded.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if loaded.IsLoggedIn() || loaded.User() != nil || !loaded.IsActive() {
		t.Errorf("state after Clear = %+v", loaded.Snapshot())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("session file still present: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.IsLoggedIn() {
		t.Error("empty session reports logged in")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err == nil {
		t.Error("expected decode error")
	}
	if s == nil || s.IsLoggedIn() {
		t.Error("corrupt file should still yield an empty session")
	}
}
