package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"driverapp/internal/domain"
	"driverapp/internal/domain/models"
	"driverapp/internal/utils"
)

// Store persists the session token and the cached profile snapshot to a
// device-local file, the Go stand-in for the app's async key-value
// storage. Written at login, read at launch and by authenticated
// requests, cleared at logout. Logout removes the token AND the cached
// profile together so a later login never sees a stale snapshot.
type Store struct {
	path string

	mu      sync.Mutex
	token   string
	profile *models.DriverProfile
}

type sessionFile struct {
	Token string                `json:"token"`
	User  *models.DriverProfile `json:"user,omitempty"`
}

// Open loads an existing session file if one is present. A missing file
// just means nobody is logged in.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, domain.InternalError{Msg: "failed to read session store", Err: err}
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		// A corrupt session file is treated as logged-out rather than
		// locking the user out of the app.
		utils.LogError("", "session", "open", err)
		return s, nil
	}

	s.token = f.Token
	s.profile = f.User
	return s, nil
}

// Token returns the stored bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Profile returns the cached profile snapshot when one is stored.
func (s *Store) Profile() (models.DriverProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.DriverProfile{}, false
	}
	return *s.profile, true
}

// SetSession stores the token and profile from a fresh login.
func (s *Store) SetSession(token string, profile models.DriverProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = &profile
	return s.save()
}

// SetProfile replaces only the cached profile snapshot.
func (s *Store) SetProfile(profile models.DriverProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &profile
	return s.save()
}

// Clear wipes the session on logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.InternalError{Msg: "failed to clear session store", Err: err}
	}
	return nil
}

func (s *Store) save() error {
	data, err := json.Marshal(sessionFile{Token: s.token, User: s.profile})
	if err != nil {
		return domain.InternalError{Msg: "failed to encode session", Err: err}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return domain.InternalError{Msg: "failed to create session dir", Err: err}
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return domain.InternalError{Msg: "failed to write session store", Err: err}
	}
	return nil
}
