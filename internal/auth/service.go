package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sva-insights/founder-dashboard/internal/shared"
)

// Service checks the shared dashboard password.
type Service struct {
	hash []byte
}

// NewService constructs a Service from a bcrypt hash.
func NewService(passwordHash string) (*Service, error) {
	hash := strings.TrimSpace(passwordHash)
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, errors.New("auth: password hash is not a bcrypt hash")
	}
	return &Service{hash: []byte(hash)}, nil
}

// Authenticate validates the submitted password.
func (s *Service) Authenticate(ctx context.Context, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if password == "" {
		return shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return shared.ErrInvalidCredentials
	}
	return nil
}
