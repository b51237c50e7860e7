package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// ApproveInput carries the moderator's decision details. An empty AgeRating
// is estimated from the submission's title and description.
type ApproveInput struct {
	AgeRating string
	Notes     string
}

// ApproveResult is the settled submission and the game it created.
type ApproveResult struct {
	Submission *domain.Submission
	Game       *domain.Game
}

var ageRatings = []string{"5+", "7+", "9+", "13+", "17+"}

// ListPending returns submissions awaiting moderation (admin only).
func (s *Service) ListPending(ctx context.Context, adminID uuid.UUID) ([]domain.Submission, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, fmt.Errorf("submission.ListPending: %w", err)
	}

	subs, err := s.submissions.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("submission.ListPending: %w", err)
	}
	return subs, nil
}

// Approve accepts a pending submission and adds the game to the catalog in
// one transaction (admin only).
func (s *Service) Approve(ctx context.Context, adminID, submissionID uuid.UUID, in ApproveInput) (*ApproveResult, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, fmt.Errorf("submission.Approve: %w", err)
	}

	ageRating := strings.TrimSpace(in.AgeRating)
	if ageRating != "" && !lo.Contains(ageRatings, ageRating) {
		return nil, domain.NewValidationError("age_rating", "must be one of: "+strings.Join(ageRatings, " "))
	}

	var res ApproveResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sub, err := s.submissions.GetByID(ctx, submissionID)
		if err != nil {
			return fmt.Errorf("get submission: %w", err)
		}
		if sub.Status != domain.StatusPending {
			return domain.NewUserError(domain.ErrConflict, "This submission has already been reviewed.")
		}

		if ageRating == "" {
			ageRating = s.catalog.EstimateAgeRating(deref(sub.Title, ""), deref(sub.Description, ""))
		}

		reviewed, err := s.submissions.Review(ctx, submissionID, domain.StatusApproved, adminID, notesPtr(in.Notes))
		if err != nil {
			return fmt.Errorf("mark approved: %w", err)
		}

		game := sub.ToGame(adminID, ageRating)
		created, err := s.games.Create(ctx, &game)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewUserError(domain.ErrAlreadyExists, MsgAlreadyListed)
			}
			return fmt.Errorf("create game: %w", err)
		}

		if err := s.record(ctx, adminID, domain.AuditSubmission, submissionID, domain.AuditApprove, map[string]any{
			"status":     string(domain.StatusApproved),
			"game_id":    created.ID.String(),
			"age_rating": created.AgeRating,
			"notes":      strings.TrimSpace(in.Notes),
		}); err != nil {
			return err
		}

		res = ApproveResult{Submission: reviewed, Game: created}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("submission.Approve: %w", err)
	}

	s.log.InfoContext(ctx, "submission approved",
		slog.String("admin_id", adminID.String()),
		slog.String("submission_id", submissionID.String()),
		slog.String("game_id", res.Game.ID.String()),
		slog.String("age_rating", res.Game.AgeRating),
	)

	return &res, nil
}

// Reject declines a pending submission (admin only).
func (s *Service) Reject(ctx context.Context, adminID, submissionID uuid.UUID, notes string) (*domain.Submission, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, fmt.Errorf("submission.Reject: %w", err)
	}

	var rejected *domain.Submission
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sub, err := s.submissions.GetByID(ctx, submissionID)
		if err != nil {
			return fmt.Errorf("get submission: %w", err)
		}
		if sub.Status != domain.StatusPending {
			return domain.NewUserError(domain.ErrConflict, "This submission has already been reviewed.")
		}

		rejected, err = s.submissions.Review(ctx, submissionID, domain.StatusRejected, adminID, notesPtr(notes))
		if err != nil {
			return fmt.Errorf("mark rejected: %w", err)
		}

		return s.record(ctx, adminID, domain.AuditSubmission, submissionID, domain.AuditReject, map[string]any{
			"status": string(domain.StatusRejected),
			"notes":  strings.TrimSpace(notes),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("submission.Reject: %w", err)
	}

	s.log.InfoContext(ctx, "submission rejected",
		slog.String("admin_id", adminID.String()),
		slog.String("submission_id", submissionID.String()),
	)
	return rejected, nil
}

// ListReports returns reports in the given state (admin only).
func (s *Service) ListReports(ctx context.Context, adminID uuid.UUID, status domain.ReportStatus) ([]domain.Report, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, fmt.Errorf("submission.ListReports: %w", err)
	}
	if status == "" {
		status = domain.ReportPending
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be one of: pending resolved dismissed")
	}

	reports, err := s.reports.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("submission.ListReports: %w", err)
	}
	return reports, nil
}

// ResolveReport closes a report as resolved or dismissed (admin only).
func (s *Service) ResolveReport(ctx context.Context, adminID, reportID uuid.UUID, status domain.ReportStatus, notes string) (*domain.Report, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, fmt.Errorf("submission.ResolveReport: %w", err)
	}
	if !status.IsFinal() {
		return nil, domain.NewValidationError("status", "must be one of: resolved dismissed")
	}

	action := domain.AuditResolve
	if status == domain.ReportDismissed {
		action = domain.AuditDismiss
	}

	var report *domain.Report
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.reports.GetByID(ctx, reportID); err != nil {
			return fmt.Errorf("get report: %w", err)
		}

		var err error
		report, err = s.reports.Resolve(ctx, reportID, status, notesPtr(notes))
		if err != nil {
			return fmt.Errorf("close report: %w", err)
		}

		return s.record(ctx, adminID, domain.AuditReport, reportID, action, map[string]any{
			"status": status.String(),
			"notes":  strings.TrimSpace(notes),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("submission.ResolveReport: %w", err)
	}

	s.log.InfoContext(ctx, "report resolved",
		slog.String("admin_id", adminID.String()),
		slog.String("report_id", reportID.String()),
		slog.String("status", status.String()),
	)
	return report, nil
}

// History returns the moderation trail of a submission or report (admin only).
func (s *Service) History(ctx context.Context, adminID uuid.UUID, entityType domain.AuditEntity, entityID uuid.UUID) ([]domain.AuditRecord, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, fmt.Errorf("submission.History: %w", err)
	}
	if !entityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "must be one of: submission report")
	}

	records, err := s.audit.GetByEntity(ctx, entityType, entityID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("submission.History: %w", err)
	}
	return records, nil
}

const historyLimit = 100

// record appends a moderation decision to the audit trail of the current transaction.
func (s *Service) record(ctx context.Context, actorID uuid.UUID, entity domain.AuditEntity, entityID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	if _, err := s.audit.Create(ctx, domain.AuditRecord{
		ActorID:    actorID,
		EntityType: entity,
		EntityID:   entityID,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

func notesPtr(notes string) *string {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil
	}
	return &notes
}
