package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flashdeck/flashdeck-go/internal/model"
)

// ErrNotLoggedIn is returned by flashcard operations before a login.
var ErrNotLoggedIn = errors.New("not logged in")

// sessionFile is the on-disk shape of a persisted session.
type sessionFile struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Session holds the authenticated identity and keeps it in a local file so
// a restart picks up where the user left off. A stored token is trusted
// without a server round trip; an expired one simply fails on first use.
type Session struct {
	client   *Client
	path     string
	Token    string
	Username string
}

// DefaultSessionPath returns the conventional session file location under
// the user's config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "flashdeck", "session.json"), nil
}

// NewSession creates a session bound to an API client and a storage path.
// If the file holds a (token, username) pair the user starts logged in.
func NewSession(c *Client, path string) *Session {
	s := &Session{client: c, path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	var stored sessionFile
	if err := json.Unmarshal(data, &stored); err != nil {
		return s
	}
	if stored.Token != "" && stored.Username != "" {
		s.Token = stored.Token
		s.Username = stored.Username
	}
	return s
}

// LoggedIn reports whether the session holds an identity.
func (s *Session) LoggedIn() bool {
	return s.Token != "" && s.Username != ""
}

// Login authenticates against the server and persists the session on
// success. The server's error message is returned on failure.
func (s *Session) Login(ctx context.Context, username, password string) error {
	token, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return s.store(token, username)
}

// Register creates an account, which also logs the user in, and persists
// the session on success.
func (s *Session) Register(ctx context.Context, username, password string) error {
	token, err := s.client.Register(ctx, username, password)
	if err != nil {
		return err
	}
	return s.store(token, username)
}

// Logout clears the identity and removes the session file.
func (s *Session) Logout() error {
	s.Token = ""
	s.Username = ""

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// Flashcards fetches the logged-in user's groups.
func (s *Session) Flashcards(ctx context.Context) ([]model.Group, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	return s.client.GetFlashcards(ctx, s.Token)
}

// SaveFlashcards replaces the logged-in user's groups.
func (s *Session) SaveFlashcards(ctx context.Context, groups []model.Group) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	return s.client.SaveFlashcards(ctx, s.Token, groups)
}

func (s *Session) store(token, username string) error {
	s.Token = token
	s.Username = username

	data, err := json.Marshal(sessionFile{Token: token, Username: username})
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
