package link

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"sync"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	LinkRobloxFunc   func(ctx context.Context, id uuid.UUID, link domain.RobloxLink) (*domain.Account, error)
	UnlinkRobloxFunc func(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		LinkRoblox []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Link domain.RobloxLink
		}
		UnlinkRoblox []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID      sync.RWMutex
	lockLinkRoblox   sync.RWMutex
	lockUnlinkRoblox sync.RWMutex
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

func (mock *accountRepoMock) LinkRoblox(ctx context.Context, id uuid.UUID, link domain.RobloxLink) (*domain.Account, error) {
	if mock.LinkRobloxFunc == nil {
		panic("accountRepoMock.LinkRobloxFunc: method is nil but accountRepo.LinkRoblox was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Link domain.RobloxLink
	}{Ctx: ctx, Id: id, Link: link}
	mock.lockLinkRoblox.Lock()
	mock.calls.LinkRoblox = append(mock.calls.LinkRoblox, callInfo)
	mock.lockLinkRoblox.Unlock()
	return mock.LinkRobloxFunc(ctx, id, link)
}

func (mock *accountRepoMock) LinkRobloxCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Link domain.RobloxLink
} {
	mock.lockLinkRoblox.RLock()
	calls := mock.calls.LinkRoblox
	mock.lockLinkRoblox.RUnlock()
	return calls
}

func (mock *accountRepoMock) UnlinkRoblox(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.UnlinkRobloxFunc == nil {
		panic("accountRepoMock.UnlinkRobloxFunc: method is nil but accountRepo.UnlinkRoblox was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockUnlinkRoblox.Lock()
	mock.calls.UnlinkRoblox = append(mock.calls.UnlinkRoblox, callInfo)
	mock.lockUnlinkRoblox.Unlock()
	return mock.UnlinkRobloxFunc(ctx, id)
}

func (mock *accountRepoMock) UnlinkRobloxCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockUnlinkRoblox.RLock()
	calls := mock.calls.UnlinkRoblox
	mock.lockUnlinkRoblox.RUnlock()
	return calls
}
