package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinReviewLength is the shortest trimmed review text that is stored.
const MinReviewLength = 10

// Rating holds one account's four-axis scores for one game.
type Rating struct {
	ID             uuid.UUID
	GameID         uuid.UUID
	AccountID      uuid.UUID
	Honesty        int
	Safety         int
	Fairness       int
	AgeAppropriate int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Overall returns the mean of the four axes.
func (r Rating) Overall() float64 {
	return float64(r.Honesty+r.Safety+r.Fairness+r.AgeAppropriate) / 4
}

// Review is free text attached to a rating.
type Review struct {
	ID             uuid.UUID
	GameID         uuid.UUID
	AccountID      uuid.UUID
	RatingID       uuid.UUID
	Content        string
	HelpfulCount   int
	UnhelpfulCount int
	AuthorUsername *string
	Overall        *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReviewVote is one account's helpfulness verdict on a review.
type ReviewVote struct {
	ReviewID  uuid.UUID
	AccountID uuid.UUID
	Helpful   bool
	CreatedAt time.Time
}
