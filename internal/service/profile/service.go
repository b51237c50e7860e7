// Package profile manages the caller's own account: reading it and choosing
// a public username.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	SetUsername(ctx context.Context, id uuid.UUID, username string) (*domain.Account, error)
}

// User-facing messages.
const (
	MsgUsernameTaken   = "Username is already taken"
	MsgUsernameInvalid = "Username must be 3-20 characters and contain only letters, numbers and underscores"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// Service implements profile operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
}

// NewService creates a profile service.
func NewService(logger *slog.Logger, accounts accountRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		accounts: accounts,
	}
}

// Get returns the caller's account.
func (s *Service) Get(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("profile.Get: %w", err)
	}
	return account, nil
}

// SetUsername sets the caller's public username. Usernames are unique
// regardless of case.
func (s *Service) SetUsername(ctx context.Context, accountID uuid.UUID, username string) (*domain.Account, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	username = strings.TrimSpace(username)
	if !usernameRe.MatchString(username) {
		return nil, domain.NewUserError(domain.ErrValidation, MsgUsernameInvalid)
	}

	account, err := s.accounts.SetUsername(ctx, accountID, username)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return nil, domain.NewUserError(domain.ErrAlreadyExists, MsgUsernameTaken)
	case err != nil:
		return nil, fmt.Errorf("profile.SetUsername: %w", err)
	}

	s.log.InfoContext(ctx, "username updated", slog.String("user_id", accountID.String()))
	return account, nil
}
