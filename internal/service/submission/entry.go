package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// User-facing messages of game submission.
const (
	MsgInvalidURL      = "Please provide a valid Roblox game URL."
	MsgAlreadyListed   = "This game is already listed on Rotection."
	MsgAlreadyPending  = "This game has already been submitted and is pending review."
	MsgEntrySubmitted  = "Game submitted successfully! It will be reviewed by our team."
	MsgReportSubmitted = "Report submitted successfully. Our team will review it shortly."
)

// EntryResult is the stored submission and the message to show.
type EntryResult struct {
	Submission *domain.Submission
	Message    string
}

// SubmitEntry proposes a Roblox game for the catalog. Metadata is fetched
// from Roblox when available; a submission without it is still accepted.
func (s *Service) SubmitEntry(ctx context.Context, accountID uuid.UUID, robloxURL string) (*EntryResult, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	robloxURL = strings.TrimSpace(robloxURL)
	robloxID, ok := s.catalog.Identify(robloxURL)
	if !ok {
		return nil, domain.NewUserError(domain.ErrValidation, MsgInvalidURL)
	}

	_, err := s.games.GetByRobloxID(ctx, robloxID)
	switch {
	case err == nil:
		return nil, domain.NewUserError(domain.ErrAlreadyExists, MsgAlreadyListed)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("submission.SubmitEntry check listed: %w", err)
	}

	pending, err := s.submissions.HasPending(ctx, robloxID)
	if err != nil {
		return nil, fmt.Errorf("submission.SubmitEntry check pending: %w", err)
	}
	if pending {
		return nil, domain.NewUserError(domain.ErrConflict, MsgAlreadyPending)
	}

	lookup := s.catalog.Lookup(ctx, robloxURL)

	sub := &domain.Submission{
		RobloxURL:   robloxURL,
		RobloxID:    robloxID,
		SubmitterID: accountID,
		Status:      domain.StatusPending,
	}
	if meta := lookup.Metadata; meta != nil {
		sub.Title = &meta.Name
		sub.Developer = &meta.Creator
		sub.Description = &meta.Description
		if meta.Genre != "" {
			sub.Genre = &meta.Genre
		}
	}
	if lookup.Thumbnail != "" {
		sub.ThumbnailURL = &lookup.Thumbnail
	}

	created, err := s.submissions.Create(ctx, sub)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		// Lost a race with another submission of the same game.
		return nil, fmt.Errorf("submission.SubmitEntry: %w", domain.NewUserError(domain.ErrConflict, MsgAlreadyPending))
	case err != nil:
		return nil, fmt.Errorf("submission.SubmitEntry: %w", err)
	}

	s.log.InfoContext(ctx, "game submitted",
		slog.String("user_id", accountID.String()),
		slog.String("submission_id", created.ID.String()),
		slog.String("roblox_id", robloxID),
		slog.Bool("enriched", lookup.Metadata != nil),
	)

	s.notify(ctx, domain.Notification{
		Kind:    domain.NotifySubmission,
		Subject: "New game submission: " + deref(created.Title, robloxID),
		Fields: map[string]string{
			"submission_id": created.ID.String(),
			"roblox_url":    robloxURL,
			"developer":     deref(created.Developer, ""),
			"genre":         deref(created.Genre, ""),
			"submitter_id":  accountID.String(),
		},
	})

	return &EntryResult{Submission: created, Message: MsgEntrySubmitted}, nil
}

// ReportInput is a complaint about a game.
type ReportInput struct {
	Description string
}

// ReportResult is the stored report and the message to show.
type ReportResult struct {
	Report  *domain.Report
	Message string
}

// SubmitReport files a report against a game and notifies moderators.
func (s *Service) SubmitReport(ctx context.Context, accountID, gameID uuid.UUID, in ReportInput) (*ReportResult, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	desc := strings.TrimSpace(in.Description)
	switch n := len([]rune(desc)); {
	case n < domain.MinReportLength:
		return nil, domain.NewValidationError("description", fmt.Sprintf("must be at least %d characters", domain.MinReportLength))
	case n > domain.MaxReportLength:
		return nil, domain.NewValidationError("description", fmt.Sprintf("must be at most %d characters", domain.MaxReportLength))
	}

	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("submission.SubmitReport get game: %w", err)
	}

	report, err := s.reports.Create(ctx, &domain.Report{
		GameID:      gameID,
		AccountID:   accountID,
		Description: desc,
		Status:      domain.ReportPending,
	})
	if err != nil {
		return nil, fmt.Errorf("submission.SubmitReport: %w", err)
	}

	s.log.InfoContext(ctx, "game reported",
		slog.String("user_id", accountID.String()),
		slog.String("report_id", report.ID.String()),
		slog.String("game_id", gameID.String()),
	)

	s.notify(ctx, domain.Notification{
		Kind:    domain.NotifyReport,
		Subject: "Game reported: " + game.Title,
		Fields: map[string]string{
			"report_id":   report.ID.String(),
			"game_id":     gameID.String(),
			"description": desc,
			"reporter_id": accountID.String(),
		},
	})

	return &ReportResult{Report: report, Message: MsgReportSubmitted}, nil
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
