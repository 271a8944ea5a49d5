// Package client provides a Go client for the flashdeck API and a local
// session that remembers the authenticated user between runs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flashdeck/flashdeck-go/internal/model"
)

// Client is a thin HTTP client for the flashdeck API. Failures carry the
// server's error message so callers can show it verbatim.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Register creates an account and returns the issued session token.
func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	var resp model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", "",
		model.RegisterRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Login authenticates and returns the issued session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "",
		model.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// GetFlashcards fetches the caller's full group list.
func (c *Client) GetFlashcards(ctx context.Context, token string) ([]model.Group, error) {
	var resp model.FlashcardsResponse
	if err := c.do(ctx, http.MethodGet, "/api/flashcards", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []model.Group{}
	}
	return resp.Data, nil
}

// SaveFlashcards replaces the caller's stored group list with groups.
func (c *Client) SaveFlashcards(ctx context.Context, token string, groups []model.Group) error {
	var resp model.SaveResponse
	if err := c.do(ctx, http.MethodPost, "/api/flashcards", token, groups, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return errors.New("server did not acknowledge save")
	}
	return nil
}

// do performs one JSON round trip. Non-2xx responses are turned into an
// error using the server's "error" field when present.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
