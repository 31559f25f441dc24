// Package session holds the logged-in user's token and profile and persists
// them between CLI invocations.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"medclinic-client/internal/models"
	"medclinic-client/internal/utils"
)

// State is the persisted part of a session.
type State struct {
	Token    string            `json:"token,omitempty"`
	User     *models.UserState `json:"user_data,omitempty"`
	UserID   string            `json:"user_id,omitempty"`
	Role     models.Role       `json:"role,omitempty"`
	IsActive bool              `json:"is_active"`
}

func emptyState() State {
	return State{IsActive: true}
}

// Session is safe for concurrent use; fan-out requests read the token while
// the owning workflow may be updating it.
type Session struct {
	mu    sync.RWMutex
	path  string
	state State
}

// New returns an empty session persisted at path. An empty path keeps it in memory.
func New(path string) *Session {
	return &Session{path: path, state: emptyState()}
}

// Load reads the session file at path. A missing file yields an empty session.
// A corrupt file also yields an empty, usable session together with the error.
func Load(path string) (*Session, error) {
	s := New(path)
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read session %s: %w", path, err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return s, fmt.Errorf("decode session %s: %w", path, err)
	}
	s.state = st
	return s, nil
}

// Token returns the bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// IsLoggedIn reports whether a token is present.
func (s *Session) IsLoggedIn() bool {
	return s.Token() != ""
}

// Role returns the role decoded from the token.
func (s *Session) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Role
}

// UserID returns the token subject.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UserID
}

// IsActive reports the account status decoded from the token.
func (s *Session) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsActive
}

// User returns a copy of the profile snapshot, nil when logged out.
func (s *Session) User() *models.UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// Snapshot returns a copy of the whole state.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

// Apply stores a login response: the token, the profile snapshot and the
// role and active flag carried by the token claims.
func (s *Session) Apply(resp *models.AuthResponse) error {
	claims, err := utils.DecodeClaims(resp.AccessToken)
	if err != nil {
		return err
	}
	user := resp.User
	role := claims.Role
	if role == "" {
		role = user.Role
	}

	s.mu.Lock()
	s.state = State{
		Token:    resp.AccessToken,
		User:     &user,
		UserID:   claims.UserID(),
		Role:     role,
		IsActive: claims.Active(),
	}
	s.mu.Unlock()
	return s.Save()
}

// Save writes the session file, if the session has one.
func (s *Session) Save() error {
	if s.path == "" {
		return nil
	}
	s.mu.RLock()
	data, err := json.MarshalIndent(s.state, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

// Clear logs out: every field is reset and the session file removed.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.state = emptyState()
	s.mu.Unlock()
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
