package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/service/rating"
	"sync"
)

var _ ratingService = &ratingServiceMock{}

type ratingServiceMock struct {
	SubmitRatingFunc func(ctx context.Context, accountID uuid.UUID, gameID uuid.UUID, in rating.RatingInput) (*rating.RatingResult, error)
	VoteOnReviewFunc func(ctx context.Context, accountID uuid.UUID, reviewID uuid.UUID, in rating.VoteInput) (*domain.ReviewVote, error)

	calls struct {
		SubmitRating []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			GameID    uuid.UUID
			In        rating.RatingInput
		}
		VoteOnReview []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			ReviewID  uuid.UUID
			In        rating.VoteInput
		}
	}
	lockSubmitRating sync.RWMutex
	lockVoteOnReview sync.RWMutex
}

func (mock *ratingServiceMock) SubmitRating(ctx context.Context, accountID uuid.UUID, gameID uuid.UUID, in rating.RatingInput) (*rating.RatingResult, error) {
	if mock.SubmitRatingFunc == nil {
		panic("ratingServiceMock.SubmitRatingFunc: method is nil but ratingService.SubmitRating was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		GameID    uuid.UUID
		In        rating.RatingInput
	}{Ctx: ctx, AccountID: accountID, GameID: gameID, In: in}
	mock.lockSubmitRating.Lock()
	mock.calls.SubmitRating = append(mock.calls.SubmitRating, callInfo)
	mock.lockSubmitRating.Unlock()
	return mock.SubmitRatingFunc(ctx, accountID, gameID, in)
}

func (mock *ratingServiceMock) SubmitRatingCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	GameID    uuid.UUID
	In        rating.RatingInput
} {
	mock.lockSubmitRating.RLock()
	calls := mock.calls.SubmitRating
	mock.lockSubmitRating.RUnlock()
	return calls
}

func (mock *ratingServiceMock) VoteOnReview(ctx context.Context, accountID uuid.UUID, reviewID uuid.UUID, in rating.VoteInput) (*domain.ReviewVote, error) {
	if mock.VoteOnReviewFunc == nil {
		panic("ratingServiceMock.VoteOnReviewFunc: method is nil but ratingService.VoteOnReview was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		ReviewID  uuid.UUID
		In        rating.VoteInput
	}{Ctx: ctx, AccountID: accountID, ReviewID: reviewID, In: in}
	mock.lockVoteOnReview.Lock()
	mock.calls.VoteOnReview = append(mock.calls.VoteOnReview, callInfo)
	mock.lockVoteOnReview.Unlock()
	return mock.VoteOnReviewFunc(ctx, accountID, reviewID, in)
}

func (mock *ratingServiceMock) VoteOnReviewCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	ReviewID  uuid.UUID
	In        rating.VoteInput
} {
	mock.lockVoteOnReview.RLock()
	calls := mock.calls.VoteOnReview
	mock.lockVoteOnReview.RUnlock()
	return calls
}
