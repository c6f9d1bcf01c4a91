// Package auth guards the admin operations: a single configured admin
// account logs in with a password and receives a signed token.
package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/iggarsaudev/career-hub/internal/common"
)

type Service struct {
	email        string
	passwordHash []byte
	tokens       *Tokens
}

// NewService builds the admin login. passwordHash is a bcrypt hash.
func NewService(email string, passwordHash []byte, tokens *Tokens) *Service {
	return &Service{email: strings.ToLower(strings.TrimSpace(email)), passwordHash: passwordHash, tokens: tokens}
}

// HashPassword hashes a plain admin password for NewService.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// Login returns a token for the admin, ErrInvalidCredentials otherwise.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if s.email == "" || len(s.passwordHash) == 0 {
		return "", common.ErrInvalidCredentials
	}
	given := strings.ToLower(strings.TrimSpace(email))
	if subtle.ConstantTimeCompare([]byte(given), []byte(s.email)) != 1 {
		return "", common.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return "", common.ErrInvalidCredentials
	}
	return s.tokens.Generate(s.email)
}
