package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/flashdeck/flashdeck-go/internal/middleware"
	"github.com/flashdeck/flashdeck-go/internal/model"
	"github.com/flashdeck/flashdeck-go/internal/service"
)

// FlashcardHandler handles HTTP requests for the flashcard document.
type FlashcardHandler struct {
	service *service.FlashcardService
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(svc *service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{service: svc}
}

// HandleGet handles GET /api/flashcards requests, returning the caller's
// full group list.
func (h *FlashcardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	groups, err := h.service.List(r.Context(), username)
	if err != nil {
		slog.Error("listing flashcards failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal Server Error"))
		return
	}

	writeJSON(w, http.StatusOK, model.FlashcardsResponse{Data: groups})
}

// HandleSave handles POST /api/flashcards requests. The body is the
// caller's complete group list and replaces the stored document as a unit.
func (h *FlashcardHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 10<<20) // 10MB

	var groups []model.Group
	if err := json.NewDecoder(r.Body).Decode(&groups); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	if err := h.service.Save(r.Context(), username, groups); err != nil {
		slog.Error("saving flashcards failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal Server Error"))
		return
	}

	writeJSON(w, http.StatusOK, model.SaveResponse{Success: true})
}
