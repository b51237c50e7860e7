// Package link attaches a verified Roblox identity to a local account, either
// through the Roblox OAuth redirect or by finding a verification phrase in the
// user's public Roblox profile.
package link

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/config"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/provider"
)

// Paths reported to metrics.
const (
	PathOAuth  = "oauth"
	PathManual = "manual"
)

type robloxOAuth interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*provider.OAuthToken, error)
	FetchProfile(ctx context.Context, accessToken string) (*provider.RobloxProfile, error)
	RevokeToken(ctx context.Context, token string) error
}

type robloxUsers interface {
	LookupUsername(ctx context.Context, username string) (*provider.RobloxUser, error)
	FetchPublicProfile(ctx context.Context, userID int64) (*provider.RobloxUser, error)
}

type stateStore interface {
	SaveState(ctx context.Context, accountID uuid.UUID, state string) error
	TakeState(ctx context.Context, accountID uuid.UUID) (string, error)
	SaveChallenge(ctx context.Context, ch domain.LinkChallenge) error
	GetChallenge(ctx context.Context, accountID uuid.UUID) (*domain.LinkChallenge, error)
	DeleteChallenge(ctx context.Context, accountID uuid.UUID) error
}

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	LinkRoblox(ctx context.Context, id uuid.UUID, link domain.RobloxLink) (*domain.Account, error)
	UnlinkRoblox(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

type attemptRecorder interface {
	LinkAttempt(path, outcome string)
}

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// Service drives both linking paths. Every operation names the local account
// explicitly; nothing is read from ambient session state.
type Service struct {
	log      *slog.Logger
	oauth    robloxOAuth
	users    robloxUsers
	store    stateStore
	accounts accountRepo
	attempts attemptRecorder
	cfg      config.LinkConfig
}

// NewService creates a link service. attempts may be nil.
func NewService(
	logger *slog.Logger,
	oauth robloxOAuth,
	users robloxUsers,
	store stateStore,
	accounts accountRepo,
	attempts attemptRecorder,
	cfg config.LinkConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "link"),
		oauth:    oauth,
		users:    users,
		store:    store,
		accounts: accounts,
		attempts: attempts,
		cfg:      cfg,
	}
}

// Unlink removes the Roblox identity from the account. Tokens are never
// stored, so there is nothing to revoke.
func (s *Service) Unlink(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	account, err := s.accounts.UnlinkRoblox(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("link.Unlink: %w", err)
	}

	s.log.InfoContext(ctx, "roblox account unlinked", slog.String("user_id", accountID.String()))
	return account, nil
}

// saveLink writes the verified identity onto the account. This is the only
// write of either path.
func (s *Service) saveLink(ctx context.Context, accountID uuid.UUID, link domain.RobloxLink) (*domain.Account, error) {
	account, err := s.accounts.LinkRoblox(ctx, accountID, link)
	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, domain.ErrAlreadyExists):
		return nil, fmt.Errorf("%w: %v", domain.NewUserError(domain.ErrAlreadyExists, MsgAlreadyLinked), err)
	case errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("%w: %v", domain.NewUserError(domain.ErrUnauthorized, MsgNoSession), err)
	default:
		return nil, fmt.Errorf("%w: %v", domain.NewUserError(errLinkSave, MsgLinkSaveFailed), err)
	}
}

// errLinkSave marks an unexpected failure of the final account write.
var errLinkSave = errors.New("link: save failed")

func (s *Service) record(path, outcome string) {
	if s.attempts != nil {
		s.attempts.LinkAttempt(path, outcome)
	}
}

func normalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if !usernameRe.MatchString(username) {
		return "", domain.NewUserError(domain.ErrValidation, MsgInvalidUsername)
	}
	return username, nil
}
