package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/auth"
	"github.com/heartmarshall/rotection-backend/internal/config"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// accountRepo defines the account repository interface needed by auth service.
type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByProvider(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, displayName string, avatarURL *string) (*domain.Account, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// oauthVerifier defines the OAuth verification interface needed by auth service.
type oauthVerifier interface {
	VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(accountID uuid.UUID, role domain.Role) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, domain.Role, error)
	GenerateRefreshToken() (string, string, error)
}

// Service implements local session operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	tokens   tokenRepo
	tx       txManager
	oauth    oauthVerifier
	jwt      jwtManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	tokens tokenRepo,
	tx txManager,
	oauth oauthVerifier,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		accounts: accounts,
		tokens:   tokens,
		tx:       tx,
		oauth:    oauth,
		jwt:      jwt,
		cfg:      cfg,
	}
}

// issueTokens generates access and refresh tokens for the given account, stores
// the refresh token hash, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, account *domain.Account) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, account.ID, hashRefresh, time.Now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		Account:      account,
	}, nil
}

// derefOrEmpty returns the dereferenced value or empty string if nil.
func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ptrStringNotEqual compares *string with *string, treating nil as distinct from "".
func ptrStringNotEqual(a, b *string) bool {
	if a == nil && b == nil {
		return false
	}
	if a == nil || b == nil {
		return true
	}
	return *a != *b
}

// profileChanged checks if the OAuth identity profile differs from the stored account.
func profileChanged(account *domain.Account, identity *auth.OAuthIdentity) bool {
	if identity.Name != nil && *identity.Name != account.DisplayName {
		return true
	}
	if identity.AvatarURL != nil && ptrStringNotEqual(identity.AvatarURL, account.AvatarURL) {
		return true
	}
	return false
}
