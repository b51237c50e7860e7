package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/auth"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// Login performs OAuth authentication and returns access/refresh tokens.
// An unknown (provider, provider id) pair creates a new account. A known one
// has its display fields refreshed when the provider reports new values.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.oauth.VerifyCode(ctx, input.Provider, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.Login oauth verification: %w", err)
	}

	provider := domain.AuthProvider(input.Provider)

	account, err := s.accounts.GetByProvider(ctx, provider, identity.ProviderID)
	switch {
	case err == nil:
		if profileChanged(account, identity) {
			name := account.DisplayName
			if identity.Name != nil {
				name = *identity.Name
			}
			avatar := account.AvatarURL
			if identity.AvatarURL != nil {
				avatar = identity.AvatarURL
			}
			account, err = s.accounts.UpdateProfile(ctx, account.ID, name, avatar)
			if err != nil {
				return nil, fmt.Errorf("auth.Login update profile: %w", err)
			}
		}
	case errors.Is(err, domain.ErrNotFound):
		account, err = s.registerAccount(ctx, provider, identity)
		if err != nil {
			return nil, err
		}
		s.log.InfoContext(ctx, "account registered via oauth",
			slog.String("user_id", account.ID.String()),
			slog.String("provider", input.Provider))
	default:
		return nil, fmt.Errorf("auth.Login get account: %w", err)
	}

	result, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "account logged in",
		slog.String("user_id", account.ID.String()),
		slog.String("provider", input.Provider))

	return result, nil
}

// emailPrefix extracts the part before @ from an email address.
func emailPrefix(email string) string {
	if idx := strings.IndexByte(email, '@'); idx > 0 {
		return email[:idx]
	}
	return email
}

// registerAccount creates the account for a first-time social login.
// A concurrent login for the same identity loses the insert race and loads the winner.
func (s *Service) registerAccount(ctx context.Context, provider domain.AuthProvider, identity *auth.OAuthIdentity) (*domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(identity.Email))

	displayName := derefOrEmpty(identity.Name)
	if displayName == "" {
		displayName = emailPrefix(email)
	}

	created, err := s.accounts.Create(ctx, &domain.Account{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: displayName,
		AvatarURL:   identity.AvatarURL,
		Provider:    provider,
		ProviderID:  identity.ProviderID,
		Role:        domain.RoleUser,
	})
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("auth.Login register account: %w", err)
	}

	existing, retryErr := s.accounts.GetByProvider(ctx, provider, identity.ProviderID)
	if retryErr != nil {
		return nil, domain.ErrAlreadyExists
	}
	return existing, nil
}
