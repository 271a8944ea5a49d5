package model

// FlashCard is a single card. Cards have no identity beyond their position
// in the owning group.
type FlashCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Group is a named ordered collection of flashcards. Names need not be
// unique.
type Group struct {
	Name  string      `json:"name"`
	Cards []FlashCard `json:"cards"`
}

// FlashcardsResponse wraps a user's full group list for API responses.
type FlashcardsResponse struct {
	Data []Group `json:"data"`
}

// SaveResponse acknowledges a whole-document save.
type SaveResponse struct {
	Success bool `json:"success"`
}
