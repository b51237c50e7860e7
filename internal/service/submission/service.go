// Package submission handles user contributions that need moderation: game
// submissions and reports, and the admin actions that settle them.
package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/provider"
)

type gameRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GameWithStats, error)
	GetByRobloxID(ctx context.Context, robloxID string) (*domain.GameWithStats, error)
	Create(ctx context.Context, g *domain.Game) (*domain.Game, error)
}

type submissionRepo interface {
	Create(ctx context.Context, in *domain.Submission) (*domain.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	HasPending(ctx context.Context, robloxID string) (bool, error)
	ListByStatus(ctx context.Context, status domain.ModerationStatus) ([]domain.Submission, error)
	Review(ctx context.Context, id uuid.UUID, status domain.ModerationStatus, reviewerID uuid.UUID, notes *string) (*domain.Submission, error)
}

type reportRepo interface {
	Create(ctx context.Context, in *domain.Report) (*domain.Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ListByStatus(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error)
	Resolve(ctx context.Context, id uuid.UUID, status domain.ReportStatus, notes *string) (*domain.Report, error)
}

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

type gameCatalog interface {
	Identify(rawURL string) (string, bool)
	Lookup(ctx context.Context, rawURL string) provider.GameLookup
	EstimateAgeRating(name, description string) string
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

type failureCounter interface {
	NotificationFailed()
}

type auditLog interface {
	Create(ctx context.Context, rec domain.AuditRecord) (*domain.AuditRecord, error)
	GetByEntity(ctx context.Context, entityType domain.AuditEntity, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements submissions, reports and their moderation.
type Service struct {
	log         *slog.Logger
	games       gameRepo
	submissions submissionRepo
	reports     reportRepo
	accounts    accountRepo
	catalog     gameCatalog
	notifier    notifier
	failures    failureCounter
	audit       auditLog
	tx          txManager
}

// NewService creates a submission service. failures may be nil.
func NewService(
	logger *slog.Logger,
	games gameRepo,
	submissions submissionRepo,
	reports reportRepo,
	accounts accountRepo,
	catalog gameCatalog,
	notifier notifier,
	failures failureCounter,
	audit auditLog,
	tx txManager,
) *Service {
	return &Service{
		log:         logger.With("service", "submission"),
		games:       games,
		submissions: submissions,
		reports:     reports,
		accounts:    accounts,
		catalog:     catalog,
		notifier:    notifier,
		failures:    failures,
		audit:       audit,
		tx:          tx,
	}
}

// notify delivers n best-effort. A failure is logged and counted, never returned.
func (s *Service) notify(ctx context.Context, n domain.Notification) {
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.log.WarnContext(ctx, "moderation notification failed",
			slog.String("kind", n.Kind),
			slog.String("error", err.Error()),
		)
		if s.failures != nil {
			s.failures.NotificationFailed()
		}
	}
}

// requireAdmin loads the acting account and checks its role.
func (s *Service) requireAdmin(ctx context.Context, adminID uuid.UUID) error {
	if adminID == uuid.Nil {
		return domain.ErrUnauthorized
	}

	account, err := s.accounts.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("load acting account: %w", err)
	}
	if !account.Role.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
