package token

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingHeader = errors.New("missing Authorization header")
	ErrInvalidFormat = errors.New("invalid Authorization header format")
	ErrInvalidToken  = errors.New("invalid token")
)

// StaticToken checks bearer tokens against a single shared secret.
type StaticToken struct {
	secret []byte
}

// New creates a StaticToken for the given secret.
func New(secret string) *StaticToken {
	return &StaticToken{secret: []byte(secret)}
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
// The header must be exactly "Bearer", one space and a non-empty token
// without further spaces.
func (s *StaticToken) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || scheme != "Bearer" || token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidFormat
	}

	return token, nil
}

// Validate compares token with the secret in constant time.
func (s *StaticToken) Validate(ctx context.Context, token string) error {
	if subtle.ConstantTimeCompare([]byte(token), s.secret) != 1 {
		return ErrInvalidToken
	}
	return nil
}
