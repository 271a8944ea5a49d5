package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/flashdeck/flashdeck-go/internal/crypto"
	"github.com/flashdeck/flashdeck-go/internal/model"
	"github.com/flashdeck/flashdeck-go/internal/objstore"
)

var ErrUsernameTaken = errors.New("username already taken")

// CredentialRepository persists one auth record per user in object storage.
// Records are created once at registration and never updated; there is no
// password-change path.
type CredentialRepository struct {
	store objstore.Store
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(store objstore.Store) *CredentialRepository {
	return &CredentialRepository{store: store}
}

// credentialKey maps a username to its storage key. Usernames are
// case-folded so "Alice" and "alice" share one record.
func credentialKey(username string) string {
	return fmt.Sprintf("users/%s/auth.json", strings.ToLower(username))
}

// Exists reports whether a credential record is present for the username.
func (r *CredentialRepository) Exists(ctx context.Context, username string) (bool, error) {
	return r.store.Exists(ctx, credentialKey(username))
}

// Create generates a fresh salt, derives the password hash and stores the
// record with a conditional write. Returns ErrUsernameTaken if a record
// already exists; the conditional write makes the check atomic against
// concurrent registrations of the same username.
func (r *CredentialRepository) Create(ctx context.Context, username, password string) error {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return err
	}

	cred := model.Credential{
		Username:     username,
		PasswordHash: crypto.HashPassword(password, salt),
		Salt:         salt,
	}

	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encoding credential: %w", err)
	}

	if err := r.store.PutIfAbsent(ctx, credentialKey(username), data); err != nil {
		if errors.Is(err, objstore.ErrAlreadyExists) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Verify recomputes the password hash with the stored salt and compares it
// to the stored hash. An unknown username or a wrong password both return
// (false, nil); only storage failures surface as errors.
func (r *CredentialRepository) Verify(ctx context.Context, username, password string) (bool, error) {
	data, err := r.store.Get(ctx, credentialKey(username))
	if err != nil {
		if errors.Is(err, objstore.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	var cred model.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return false, fmt.Errorf("decoding credential: %w", err)
	}

	return crypto.VerifyPassword(password, cred.Salt, cred.PasswordHash), nil
}
