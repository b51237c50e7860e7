package profile

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"sync"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	SetUsernameFunc func(ctx context.Context, id uuid.UUID, username string) (*domain.Account, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SetUsername []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Username string
		}
	}
	lockGetByID     sync.RWMutex
	lockSetUsername sync.RWMutex
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
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

func (mock *accountRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) SetUsername(ctx context.Context, id uuid.UUID, username string) (*domain.Account, error) {
	if mock.SetUsernameFunc == nil {
		panic("accountRepoMock.SetUsernameFunc: method is nil but accountRepo.SetUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Username string
	}{Ctx: ctx, Id: id, Username: username}
	mock.lockSetUsername.Lock()
	mock.calls.SetUsername = append(mock.calls.SetUsername, callInfo)
	mock.lockSetUsername.Unlock()
	return mock.SetUsernameFunc(ctx, id, username)
}

func (mock *accountRepoMock) SetUsernameCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Username string
} {
	mock.lockSetUsername.RLock()
	calls := mock.calls.SetUsername
	mock.lockSetUsername.RUnlock()
	return calls
}
