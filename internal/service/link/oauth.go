package link

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/auth"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/metrics"
)

const stateBytes = 32

// StartOAuth persists a fresh anti-CSRF state for the account and returns the
// Roblox authorize URL to redirect to.
func (s *Service) StartOAuth(ctx context.Context, accountID uuid.UUID) (string, error) {
	if accountID == uuid.Nil {
		return "", domain.NewUserError(domain.ErrUnauthorized, MsgNoSession)
	}

	state, err := auth.RandomString(stateBytes)
	if err != nil {
		return "", fmt.Errorf("link.StartOAuth generate state: %w", err)
	}

	flow, err := NewFlow().Begin(state)
	if err != nil {
		return "", fmt.Errorf("link.StartOAuth: %w", err)
	}

	if err := s.store.SaveState(ctx, accountID, state); err != nil {
		return "", fmt.Errorf("link.StartOAuth save state: %w", err)
	}

	s.record(PathOAuth, metrics.OutcomeStarted)
	s.log.InfoContext(ctx, "roblox oauth started",
		slog.String("user_id", accountID.String()),
		slog.String("state", flow.State().String()),
	)

	return s.oauth.AuthorizationURL(state), nil
}

// CompleteOAuth handles the provider redirect. accountID is nil when the caller
// has no local session. The stored state is consumed whatever the outcome, so
// a callback can never be replayed.
func (s *Service) CompleteOAuth(ctx context.Context, accountID *uuid.UUID, cb Callback) (*domain.Account, error) {
	cb.Authenticated = accountID != nil && *accountID != uuid.Nil

	flow := NewFlow()
	if cb.Authenticated {
		expected, err := s.store.TakeState(ctx, *accountID)
		switch {
		case err == nil:
			flow, err = flow.Begin(expected)
			if err != nil {
				return nil, fmt.Errorf("link.CompleteOAuth: %w", err)
			}
		case errors.Is(err, domain.ErrNotFound):
			// No pending state: Return fails closed below.
		default:
			return nil, fmt.Errorf("link.CompleteOAuth take state: %w", err)
		}
	}

	flow = flow.Return(cb)
	if flow.State() == StateError {
		return nil, s.fail(ctx, accountID, flow)
	}

	token, err := s.oauth.ExchangeCode(ctx, flow.Code())
	if err != nil {
		flow = flow.Fail(domain.ErrUpstream, MsgExchangeFailed)
		return nil, s.fail(ctx, accountID, flow, err)
	}

	// The token is only needed to read the profile.
	defer s.revoke(ctx, token.AccessToken)

	profile, err := s.oauth.FetchProfile(ctx, token.AccessToken)
	if err != nil {
		flow = flow.Fail(domain.ErrUpstream, MsgProfileFailed)
		return nil, s.fail(ctx, accountID, flow, err)
	}

	robloxID, err := profile.UserID()
	if err != nil {
		flow = flow.Fail(domain.ErrUpstream, MsgProfileFailed)
		return nil, s.fail(ctx, accountID, flow, err)
	}

	link := domain.RobloxLink{UserID: robloxID, Username: profile.Username()}
	account, err := s.saveLink(ctx, *accountID, link)
	if err != nil {
		s.record(PathOAuth, metrics.OutcomeFailed)
		return nil, fmt.Errorf("link.CompleteOAuth: %w", err)
	}

	flow = flow.Succeed(link)
	s.record(PathOAuth, metrics.OutcomeLinked)
	s.log.InfoContext(ctx, "roblox account linked",
		slog.String("user_id", accountID.String()),
		slog.Int64("roblox_user_id", robloxID),
		slog.String("path", PathOAuth),
		slog.String("state", flow.State().String()),
	)

	return account, nil
}

func (s *Service) fail(ctx context.Context, accountID *uuid.UUID, flow Flow, causes ...error) error {
	s.record(PathOAuth, metrics.OutcomeFailed)

	attrs := []any{slog.String("error", flow.Err().Error())}
	if accountID != nil {
		attrs = append(attrs, slog.String("user_id", accountID.String()))
	}
	if len(causes) > 0 {
		attrs = append(attrs, slog.String("cause", errors.Join(causes...).Error()))
	}

	if errors.Is(flow.Err(), domain.ErrIntegrity) {
		s.log.WarnContext(ctx, "roblox oauth callback rejected", attrs...)
	} else {
		s.log.InfoContext(ctx, "roblox oauth failed", attrs...)
	}

	if len(causes) > 0 {
		return fmt.Errorf("link.CompleteOAuth: %w: %v", flow.Err(), errors.Join(causes...))
	}
	return fmt.Errorf("link.CompleteOAuth: %w", flow.Err())
}

// revoke is cleanup; its failure is only logged.
func (s *Service) revoke(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.oauth.RevokeToken(context.WithoutCancel(ctx), token); err != nil {
		s.log.WarnContext(ctx, "roblox token revoke failed", slog.String("error", err.Error()))
	}
}
