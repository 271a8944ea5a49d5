package model

// Credential is the per-user authentication record persisted in object
// storage. The hash and salt are hex-encoded; the record is written once at
// registration and never updated.
type Credential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Salt         string `json:"salt"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents a successful authentication response.
type AuthResponse struct {
	Token string `json:"token"`
}
