package session

import (
	"encoding/json"
	"fmt"
	"log"

	"fyne.io/fyne/v2"

	"github.com/freshkart/freshkart/internal/model"
)

// Preference keys for the persisted session
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// Store persists the session token and customer profile in the app's
// key-value preferences so the session survives a restart.
type Store struct {
	prefs fyne.Preferences
}

// NewStore creates a session store backed by the app's preferences.
func NewStore(app fyne.App) *Store {
	return &Store{prefs: app.Preferences()}
}

// Token returns the persisted bearer token, or "" when logged out. It
// satisfies the API client's TokenSource interface.
func (s *Store) Token() string {
	return s.prefs.String(KeyToken)
}

// Get loads the persisted session. A missing key or an unparseable user
// value yields an empty session: a broken store fails open to logged-out
// rather than blocking startup.
func (s *Store) Get() (string, *model.User) {
	token := s.prefs.String(KeyToken)
	raw := s.prefs.String(KeyUser)
	if token == "" || raw == "" {
		return "", nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("session: discarding unparseable stored user: %v", err)
		s.Clear()
		return "", nil
	}
	return token, &user
}

// Set persists a new token and customer pair.
func (s *Store) Set(token string, user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode stored user: %w", err)
	}
	s.prefs.SetString(KeyToken, token)
	s.prefs.SetString(KeyUser, string(raw))
	return nil
}

// SetUser re-persists the customer profile without touching the token.
func (s *Store) SetUser(user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode stored user: %w", err)
	}
	s.prefs.SetString(KeyUser, string(raw))
	return nil
}

// Clear removes both session entries.
func (s *Store) Clear() {
	s.prefs.RemoveValue(KeyToken)
	s.prefs.RemoveValue(KeyUser)
}
