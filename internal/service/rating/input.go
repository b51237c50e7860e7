package rating

import (
	"strings"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/pkg/validate"
)

// RatingInput holds the four axis scores and an optional review.
type RatingInput struct {
	Honesty        int    `field:"honesty"         validate:"min=1,max=5"`
	Safety         int    `field:"safety"          validate:"min=1,max=5"`
	Fairness       int    `field:"fairness"        validate:"min=1,max=5"`
	AgeAppropriate int    `field:"age_appropriate" validate:"min=1,max=5"`
	Review         string `field:"review"          validate:"max=5000"`
}

// Validate checks every score is within 1..5.
func (i RatingInput) Validate() error {
	return validate.Struct(i)
}

// reviewText returns the trimmed review and whether it is long enough to store.
func (i RatingInput) reviewText() (string, bool) {
	text := strings.TrimSpace(i.Review)
	return text, len([]rune(text)) >= domain.MinReviewLength
}

// VoteInput is a helpfulness verdict on a review.
type VoteInput struct {
	Helpful bool
}
