package rating

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// Result messages shown to the user.
const (
	MsgRatingSaved      = "Rating and review submitted successfully!"
	MsgReviewSaveFailed = "Rating submitted successfully, but review failed to save."
)

// RatingResult describes what SubmitRating stored.
type RatingResult struct {
	Rating      *domain.Rating
	Review      *domain.Review
	ReviewSaved bool
	Message     string
}

// SubmitRating upserts the caller's rating of a game. A review of at least
// domain.MinReviewLength characters is attached to it. A failed review insert
// keeps the rating and is reported through the result, not as an error.
func (s *Service) SubmitRating(ctx context.Context, accountID, gameID uuid.UUID, in RatingInput) (*RatingResult, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.games.GetByID(ctx, gameID); err != nil {
		return nil, fmt.Errorf("rating.SubmitRating get game: %w", err)
	}

	rating, err := s.ratings.Upsert(ctx, &domain.Rating{
		GameID:         gameID,
		AccountID:      accountID,
		Honesty:        in.Honesty,
		Safety:         in.Safety,
		Fairness:       in.Fairness,
		AgeAppropriate: in.AgeAppropriate,
	})
	if err != nil {
		return nil, fmt.Errorf("rating.SubmitRating upsert: %w", err)
	}

	if s.counter != nil {
		s.counter.RatingSubmitted()
	}

	res := &RatingResult{Rating: rating, Message: MsgRatingSaved}

	text, ok := in.reviewText()
	if !ok {
		s.log.InfoContext(ctx, "rating submitted",
			slog.String("user_id", accountID.String()),
			slog.String("game_id", gameID.String()),
		)
		return res, nil
	}

	review, err := s.reviews.Create(ctx, &domain.Review{
		GameID:    gameID,
		AccountID: accountID,
		RatingID:  rating.ID,
		Content:   text,
	})
	if err != nil {
		s.log.WarnContext(ctx, "review save failed",
			slog.String("user_id", accountID.String()),
			slog.String("rating_id", rating.ID.String()),
			slog.String("error", err.Error()),
		)
		res.Message = MsgReviewSaveFailed
		return res, nil
	}

	res.Review = review
	res.ReviewSaved = true

	s.log.InfoContext(ctx, "rating and review submitted",
		slog.String("user_id", accountID.String()),
		slog.String("game_id", gameID.String()),
	)
	return res, nil
}

// VoteOnReview records whether the caller found a review helpful. Voting
// again replaces the previous verdict.
func (s *Service) VoteOnReview(ctx context.Context, accountID, reviewID uuid.UUID, in VoteInput) (*domain.ReviewVote, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.reviews.GetByID(ctx, reviewID); err != nil {
		return nil, fmt.Errorf("rating.VoteOnReview get review: %w", err)
	}

	vote, err := s.reviews.Vote(ctx, domain.ReviewVote{
		ReviewID:  reviewID,
		AccountID: accountID,
		Helpful:   in.Helpful,
	})
	if err != nil {
		return nil, fmt.Errorf("rating.VoteOnReview: %w", err)
	}
	return vote, nil
}
