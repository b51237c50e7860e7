package submission

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"sync"
)

var _ gameRepo = &gameRepoMock{}

type gameRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.GameWithStats, error)
	GetByRobloxIDFunc func(ctx context.Context, robloxID string) (*domain.GameWithStats, error)
	CreateFunc        func(ctx context.Context, g *domain.Game) (*domain.Game, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByRobloxID []struct {
			Ctx      context.Context
			RobloxID string
		}
		Create []struct {
			Ctx context.Context
			G   *domain.Game
		}
	}
	lockGetByID       sync.RWMutex
	lockGetByRobloxID sync.RWMutex
	lockCreate        sync.RWMutex
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

func (mock *gameRepoMock) GetByRobloxID(ctx context.Context, robloxID string) (*domain.GameWithStats, error) {
	if mock.GetByRobloxIDFunc == nil {
		panic("gameRepoMock.GetByRobloxIDFunc: method is nil but gameRepo.GetByRobloxID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RobloxID string
	}{Ctx: ctx, RobloxID: robloxID}
	mock.lockGetByRobloxID.Lock()
	mock.calls.GetByRobloxID = append(mock.calls.GetByRobloxID, callInfo)
	mock.lockGetByRobloxID.Unlock()
	return mock.GetByRobloxIDFunc(ctx, robloxID)
}

func (mock *gameRepoMock) GetByRobloxIDCalls() []struct {
	Ctx      context.Context
	RobloxID string
} {
	mock.lockGetByRobloxID.RLock()
	calls := mock.calls.GetByRobloxID
	mock.lockGetByRobloxID.RUnlock()
	return calls
}

func (mock *gameRepoMock) Create(ctx context.Context, g *domain.Game) (*domain.Game, error) {
	if mock.CreateFunc == nil {
		panic("gameRepoMock.CreateFunc: method is nil but gameRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.Game
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *gameRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   *domain.Game
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
