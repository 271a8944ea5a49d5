package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck-go/internal/model"
)

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestSessionStartsLoggedOut(t *testing.T) {
	s := NewSession(New("http://unused"), sessionPath(t))
	assert.False(t, s.LoggedIn())
}

func TestSessionLoginPersists(t *testing.T) {
	srv := newTestServer(t)
	path := sessionPath(t)
	ctx := context.Background()

	s := NewSession(New(srv.URL), path)
	require.NoError(t, s.Register(ctx, "alice", "longpassword"))
	require.True(t, s.LoggedIn())
	assert.Equal(t, "alice", s.Username)

	// A new session against the same file trusts the stored pair without
	// asking the server.
	restored := NewSession(New(srv.URL), path)
	assert.True(t, restored.LoggedIn())
	assert.Equal(t, "alice", restored.Username)
	assert.Equal(t, s.Token, restored.Token)
}

func TestSessionLoginFailureLeavesNoState(t *testing.T) {
	srv := newTestServer(t)
	path := sessionPath(t)

	s := NewSession(New(srv.URL), path)
	err := s.Login(context.Background(), "nobody", "longpassword")
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password", err.Error())
	assert.False(t, s.LoggedIn())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSessionLogoutClears(t *testing.T) {
	srv := newTestServer(t)
	path := sessionPath(t)
	ctx := context.Background()

	s := NewSession(New(srv.URL), path)
	require.NoError(t, s.Register(ctx, "alice", "longpassword"))

	require.NoError(t, s.Logout())
	assert.False(t, s.LoggedIn())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Restart after logout stays logged out.
	restored := NewSession(New(srv.URL), path)
	assert.False(t, restored.LoggedIn())
}

func TestSessionLogoutWithoutFile(t *testing.T) {
	s := NewSession(New("http://unused"), sessionPath(t))
	assert.NoError(t, s.Logout())
}

func TestSessionCorruptFileIgnored(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s := NewSession(New("http://unused"), path)
	assert.False(t, s.LoggedIn())
}

func TestSessionFlashcards(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	s := NewSession(New(srv.URL), sessionPath(t))

	_, err := s.Flashcards(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, s.Register(ctx, "alice", "longpassword"))

	groups := []model.Group{
		{Name: "Spanish", Cards: []model.FlashCard{{Front: "hola", Back: "hello"}}},
	}
	require.NoError(t, s.SaveFlashcards(ctx, groups))

	got, err := s.Flashcards(ctx)
	require.NoError(t, err)
	assert.Equal(t, groups, got)
}
