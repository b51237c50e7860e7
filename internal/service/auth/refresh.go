package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/rotection-backend/internal/auth"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// If the refresh token is not found (revoked or reused), logs a warning and returns ErrUnauthorized.
// If the token is expired or the account is gone, returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	account, err := s.accounts.GetByID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted account",
				slog.String("user_id", token.AccountID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get account: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		issued, err := s.issueTokens(txCtx, account)
		if err != nil {
			return fmt.Errorf("issue tokens: %w", err)
		}
		result = issued
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
