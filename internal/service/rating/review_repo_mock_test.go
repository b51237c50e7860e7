package rating

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"sync"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	CreateFunc  func(ctx context.Context, in *domain.Review) (*domain.Review, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	VoteFunc    func(ctx context.Context, v domain.ReviewVote) (*domain.ReviewVote, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			In  *domain.Review
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Vote []struct {
			Ctx context.Context
			V   domain.ReviewVote
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockVote    sync.RWMutex
}

func (mock *reviewRepoMock) Create(ctx context.Context, in *domain.Review) (*domain.Review, error) {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  *domain.Review
	}{Ctx: ctx, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *reviewRepoMock) CreateCalls() []struct {
	Ctx context.Context
	In  *domain.Review
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	if mock.GetByIDFunc == nil {
		panic("reviewRepoMock.GetByIDFunc: method is nil but reviewRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *reviewRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Vote(ctx context.Context, v domain.ReviewVote) (*domain.ReviewVote, error) {
	if mock.VoteFunc == nil {
		panic("reviewRepoMock.VoteFunc: method is nil but reviewRepo.Vote was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   domain.ReviewVote
	}{Ctx: ctx, V: v}
	mock.lockVote.Lock()
	mock.calls.Vote = append(mock.calls.Vote, callInfo)
	mock.lockVote.Unlock()
	return mock.VoteFunc(ctx, v)
}

func (mock *reviewRepoMock) VoteCalls() []struct {
	Ctx context.Context
	V   domain.ReviewVote
} {
	mock.lockVote.RLock()
	calls := mock.calls.Vote
	mock.lockVote.RUnlock()
	return calls
}
