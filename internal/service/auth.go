package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/flashdeck/flashdeck-go/internal/crypto"
	"github.com/flashdeck/flashdeck-go/internal/model"
	"github.com/flashdeck/flashdeck-go/internal/repository"
)

var (
	ErrMissingFields      = errors.New("Username and password are required")
	ErrUsernameLength     = errors.New("Username must be between 3 and 20 characters")
	ErrUsernameCharset    = errors.New("Username can only contain letters and numbers")
	ErrPasswordLength     = errors.New("Password must be at least 8 characters long")
	ErrUsernameTaken      = errors.New("Username already taken")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrInvalidToken       = errors.New("Invalid token")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// AuthService composes the credential store and token generation into
// register/login/verify operations. Each call is stateless.
type AuthService struct {
	creds     *repository.CredentialRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(creds *repository.CredentialRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		creds:     creds,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// validateRegistration enforces the input rules before any storage access:
// username 3-20 alphanumeric characters, password at least 8 characters.
func validateRegistration(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingFields
	}
	if len(username) < 3 || len(username) > 20 {
		return ErrUsernameLength
	}
	if !usernamePattern.MatchString(username) {
		return ErrUsernameCharset
	}
	if len(password) < 8 {
		return ErrPasswordLength
	}
	return nil
}

// Register validates the request, creates the credential record and logs
// the new user straight in, returning a session token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if err := validateRegistration(req.Username, req.Password); err != nil {
		return model.AuthResponse{}, err
	}

	if err := s.creds.Create(ctx, req.Username, req.Password); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return model.AuthResponse{}, ErrUsernameTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(req.Username, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token}, nil
}

// Login authenticates a user and returns a session token. Unknown username
// and wrong password produce the same ErrInvalidCredentials so callers
// cannot tell which one happened. Storage failures pass through unchanged
// and surface as generic server errors, not as auth failures.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return model.AuthResponse{}, ErrMissingFields
	}

	ok, err := s.creds.Verify(ctx, req.Username, req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !ok {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(req.Username, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token}, nil
}

// VerifyToken checks a session token and returns the username it carries.
func (s *AuthService) VerifyToken(token string) (string, error) {
	claims, err := crypto.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}
