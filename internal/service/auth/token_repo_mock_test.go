package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"sync"
	"time"
)

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc             func(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHashFunc          func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByIDFunc         func(ctx context.Context, id uuid.UUID) error
	RevokeAllByAccountFunc func(ctx context.Context, accountID uuid.UUID) error
	DeleteExpiredFunc      func(ctx context.Context) (int, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			TokenHash string
			ExpiresAt time.Time
		}
		GetByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
		RevokeByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		RevokeAllByAccount []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		DeleteExpired []struct {
			Ctx context.Context
		}
	}
	lockCreate             sync.RWMutex
	lockGetByHash          sync.RWMutex
	lockRevokeByID         sync.RWMutex
	lockRevokeAllByAccount sync.RWMutex
	lockDeleteExpired      sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		TokenHash string
		ExpiresAt time.Time
	}{Ctx: ctx, AccountID: accountID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, accountID, tokenHash, expiresAt)
}

func (mock *tokenRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	TokenHash string
	ExpiresAt time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) GetByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeByID(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeByIDFunc == nil {
		panic("tokenRepoMock.RevokeByIDFunc: method is nil but tokenRepo.RevokeByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRevokeByID.Lock()
	mock.calls.RevokeByID = append(mock.calls.RevokeByID, callInfo)
	mock.lockRevokeByID.Unlock()
	return mock.RevokeByIDFunc(ctx, id)
}

func (mock *tokenRepoMock) RevokeByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRevokeByID.RLock()
	calls := mock.calls.RevokeByID
	mock.lockRevokeByID.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error {
	if mock.RevokeAllByAccountFunc == nil {
		panic("tokenRepoMock.RevokeAllByAccountFunc: method is nil but tokenRepo.RevokeAllByAccount was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockRevokeAllByAccount.Lock()
	mock.calls.RevokeAllByAccount = append(mock.calls.RevokeAllByAccount, callInfo)
	mock.lockRevokeAllByAccount.Unlock()
	return mock.RevokeAllByAccountFunc(ctx, accountID)
}

func (mock *tokenRepoMock) RevokeAllByAccountCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockRevokeAllByAccount.RLock()
	calls := mock.calls.RevokeAllByAccount
	mock.lockRevokeAllByAccount.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

func (mock *tokenRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
