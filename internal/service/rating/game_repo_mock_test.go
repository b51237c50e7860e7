package rating

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"sync"
)

var _ gameRepo = &gameRepoMock{}

type gameRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.GameWithStats, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *gameRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.GameWithStats, error) {
	if mock.GetByIDFunc == nil {
		panic("gameRepoMock.GetByIDFunc: method is nil but gameRepo.GetByID was just called")
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

func (mock *gameRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
