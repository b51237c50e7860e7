package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a proposal to add a game to the catalog.
type Submission struct {
	ID           uuid.UUID
	RobloxURL    string
	RobloxID     string
	Title        *string
	Developer    *string
	Description  *string
	ThumbnailURL *string
	Genre        *string
	SubmitterID  uuid.UUID
	Status       ModerationStatus
	AdminNotes   *string
	ReviewedBy   *uuid.UUID
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ToGame builds the approved catalog entry for an accepted submission.
func (s Submission) ToGame(approvedBy uuid.UUID, ageRating string) Game {
	g := Game{
		ID:           uuid.New(),
		RobloxID:     s.RobloxID,
		Title:        derefOr(s.Title, "Unknown Game"),
		Developer:    derefOr(s.Developer, "Unknown Creator"),
		Description:  derefOr(s.Description, ""),
		ThumbnailURL: s.ThumbnailURL,
		RobloxURL:    s.RobloxURL,
		Genre:        s.Genre,
		AgeRating:    ageRating,
		Status:       StatusApproved,
		TotalPlays:   "0",
		SubmittedBy:  &s.SubmitterID,
		ApprovedBy:   &approvedBy,
	}
	if g.AgeRating == "" {
		g.AgeRating = DefaultAgeRating
	}
	return g
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
