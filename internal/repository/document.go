package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/flashdeck/flashdeck-go/internal/model"
	"github.com/flashdeck/flashdeck-go/internal/objstore"
)

// DocumentRepository persists each user's complete flashcard group list as
// a single JSON object. Replace overwrites the whole document with no
// version check: concurrent writers race and the last one wins.
type DocumentRepository struct {
	store objstore.Store
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(store objstore.Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func documentKey(username string) string {
	return fmt.Sprintf("users/%s/flashcards.json", strings.ToLower(username))
}

// Read returns the user's group list. A user with no stored document gets
// an empty list, never an error.
func (r *DocumentRepository) Read(ctx context.Context, username string) ([]model.Group, error) {
	data, err := r.store.Get(ctx, documentKey(username))
	if err != nil {
		if errors.Is(err, objstore.ErrNotFound) {
			return []model.Group{}, nil
		}
		return nil, err
	}

	var groups []model.Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decoding flashcards document: %w", err)
	}
	if groups == nil {
		groups = []model.Group{}
	}
	return groups, nil
}

// Replace overwrites the user's entire document with the given groups.
func (r *DocumentRepository) Replace(ctx context.Context, username string, groups []model.Group) error {
	if groups == nil {
		groups = []model.Group{}
	}

	data, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("encoding flashcards document: %w", err)
	}

	return r.store.Put(ctx, documentKey(username), data)
}
