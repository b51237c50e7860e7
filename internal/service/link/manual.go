package link

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/auth"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/metrics"
)

const nonceBytes = 4

// Challenge tells the user which phrase to publish and for which Roblox account.
type Challenge struct {
	RobloxUserID   int64
	RobloxUsername string
	Phrase         string
	ExpiresAt      time.Time
}

// StartManual looks up the claimed Roblox username and stores a pending
// challenge. The user then adds the returned phrase to their Roblox profile
// description and calls ConfirmManual. Starting again replaces the challenge.
func (s *Service) StartManual(ctx context.Context, accountID uuid.UUID, username string) (*Challenge, error) {
	if accountID == uuid.Nil {
		return nil, domain.NewUserError(domain.ErrUnauthorized, MsgNoSession)
	}

	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}

	user, err := s.users.LookupUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.record(PathManual, metrics.OutcomeFailed)
		return nil, fmt.Errorf("link.StartManual: %w: %v", domain.NewUserError(domain.ErrNotFound, MsgNotFound), err)
	case err != nil:
		s.record(PathManual, metrics.OutcomeFailed)
		return nil, fmt.Errorf("link.StartManual: %w: %v", domain.NewUserError(domain.ErrUpstream, MsgLookupFailed), err)
	}

	phrase, err := s.phrase()
	if err != nil {
		return nil, fmt.Errorf("link.StartManual: %w", err)
	}

	now := time.Now()
	ch := domain.LinkChallenge{
		AccountID:      accountID,
		RobloxUserID:   user.ID,
		RobloxUsername: user.Name,
		Phrase:         phrase,
		CreatedAt:      now,
	}
	if err := s.store.SaveChallenge(ctx, ch); err != nil {
		return nil, fmt.Errorf("link.StartManual save challenge: %w", err)
	}

	s.record(PathManual, metrics.OutcomeStarted)
	s.log.InfoContext(ctx, "roblox manual verification started",
		slog.String("user_id", accountID.String()),
		slog.Int64("roblox_user_id", user.ID),
	)

	return &Challenge{
		RobloxUserID:   user.ID,
		RobloxUsername: user.Name,
		Phrase:         phrase,
		ExpiresAt:      now.Add(s.cfg.ChallengeTTL),
	}, nil
}

// ConfirmManual re-reads the claimed profile and links it when the description
// contains the challenge phrase. A missing phrase leaves the account unchanged
// and keeps the challenge, so the user can fix the description and retry.
func (s *Service) ConfirmManual(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	if accountID == uuid.Nil {
		return nil, domain.NewUserError(domain.ErrUnauthorized, MsgNoSession)
	}

	ch, err := s.store.GetChallenge(ctx, accountID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("link.ConfirmManual: %w", domain.NewUserError(domain.ErrConflict, MsgNoChallenge))
	case err != nil:
		return nil, fmt.Errorf("link.ConfirmManual get challenge: %w", err)
	}

	profile, err := s.users.FetchPublicProfile(ctx, ch.RobloxUserID)
	if err != nil {
		s.record(PathManual, metrics.OutcomeFailed)
		return nil, fmt.Errorf("link.ConfirmManual: %w: %v", domain.NewUserError(domain.ErrUpstream, MsgLookupFailed), err)
	}

	if !strings.Contains(profile.Description, ch.Phrase) {
		s.record(PathManual, metrics.OutcomeFailed)
		s.log.InfoContext(ctx, "roblox verification phrase missing",
			slog.String("user_id", accountID.String()),
			slog.Int64("roblox_user_id", ch.RobloxUserID),
		)
		return nil, fmt.Errorf("link.ConfirmManual: %w", domain.NewUserError(domain.ErrIntegrity, MsgPhraseNotFound))
	}

	name := ch.RobloxUsername
	if profile.Name != "" {
		name = profile.Name
	}

	account, err := s.saveLink(ctx, accountID, domain.RobloxLink{UserID: ch.RobloxUserID, Username: name})
	if err != nil {
		s.record(PathManual, metrics.OutcomeFailed)
		return nil, fmt.Errorf("link.ConfirmManual: %w", err)
	}

	if err := s.store.DeleteChallenge(ctx, accountID); err != nil {
		// The challenge expires on its own.
		s.log.WarnContext(ctx, "delete link challenge failed", slog.String("error", err.Error()))
	}

	s.record(PathManual, metrics.OutcomeLinked)
	s.log.InfoContext(ctx, "roblox account linked",
		slog.String("user_id", accountID.String()),
		slog.Int64("roblox_user_id", ch.RobloxUserID),
		slog.String("path", PathManual),
	)

	return account, nil
}

// phrase returns the text to publish. With manual_nonce enabled every
// challenge gets its own code, so an old profile text cannot be reused.
func (s *Service) phrase() (string, error) {
	if !s.cfg.ManualNonce {
		return domain.VerificationPhrase, nil
	}
	code, err := auth.RandomString(nonceBytes)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	return fmt.Sprintf("%s (code: %s)", domain.VerificationPhrase, strings.ToLower(code)), nil
}
