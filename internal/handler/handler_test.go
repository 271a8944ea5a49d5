package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/flashdeck/flashdeck-go/internal/middleware"
	"github.com/flashdeck/flashdeck-go/internal/objstore"
	"github.com/flashdeck/flashdeck-go/internal/repository"
	"github.com/flashdeck/flashdeck-go/internal/service"
)

const testSecret = "test-secret"

// newTestRouter wires the full API over an in-memory store, mirroring the
// wiring in cmd/api.
func newTestRouter() http.Handler {
	store := objstore.NewMemStore()

	authService := service.NewAuthService(repository.NewCredentialRepository(store), testSecret, time.Hour)
	authHandler := NewAuthHandler(authService)

	cardService := service.NewFlashcardService(repository.NewDocumentRepository(store))
	cardHandler := NewFlashcardHandler(cardService)

	r := chi.NewRouter()
	r.Post("/api/auth/register", authHandler.HandleRegister)
	r.Post("/api/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(testSecret))
		r.Get("/api/flashcards", cardHandler.HandleGet)
		r.Post("/api/flashcards", cardHandler.HandleSave)
	})

	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}

func registerAndGetToken(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	if resp.Token == "" {
		t.Fatal("register returned empty token")
	}
	return resp.Token
}
