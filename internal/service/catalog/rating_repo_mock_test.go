package catalog

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"sync"
)

var _ ratingRepo = &ratingRepoMock{}

type ratingRepoMock struct {
	GetByAccountFunc func(ctx context.Context, accountID uuid.UUID, gameID uuid.UUID) (*domain.Rating, error)

	calls struct {
		GetByAccount []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			GameID    uuid.UUID
		}
	}
	lockGetByAccount sync.RWMutex
}

func (mock *ratingRepoMock) GetByAccount(ctx context.Context, accountID uuid.UUID, gameID uuid.UUID) (*domain.Rating, error) {
	if mock.GetByAccountFunc == nil {
		panic("ratingRepoMock.GetByAccountFunc: method is nil but ratingRepo.GetByAccount was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		GameID    uuid.UUID
	}{Ctx: ctx, AccountID: accountID, GameID: gameID}
	mock.lockGetByAccount.Lock()
	mock.calls.GetByAccount = append(mock.calls.GetByAccount, callInfo)
	mock.lockGetByAccount.Unlock()
	return mock.GetByAccountFunc(ctx, accountID, gameID)
}

func (mock *ratingRepoMock) GetByAccountCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	GameID    uuid.UUID
} {
	mock.lockGetByAccount.RLock()
	calls := mock.calls.GetByAccount
	mock.lockGetByAccount.RUnlock()
	return calls
}
