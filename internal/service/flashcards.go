package service

import (
	"context"

	"github.com/flashdeck/flashdeck-go/internal/model"
	"github.com/flashdeck/flashdeck-go/internal/repository"
)

// FlashcardService reads and replaces a user's flashcard document as a
// whole. The client always sends the complete group list, never a delta,
// so a save is a plain overwrite with last-write-wins semantics.
type FlashcardService struct {
	docs *repository.DocumentRepository
}

// NewFlashcardService creates a new FlashcardService.
func NewFlashcardService(docs *repository.DocumentRepository) *FlashcardService {
	return &FlashcardService{docs: docs}
}

// List returns the user's full group list, empty for a new user.
func (s *FlashcardService) List(ctx context.Context, username string) ([]model.Group, error) {
	return s.docs.Read(ctx, username)
}

// Save replaces the user's stored document with the given groups.
func (s *FlashcardService) Save(ctx context.Context, username string, groups []model.Group) error {
	return s.docs.Replace(ctx, username, groups)
}
