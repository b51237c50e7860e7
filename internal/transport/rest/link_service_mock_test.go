package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/service/link"
	"sync"
)

var _ linkService = &linkServiceMock{}

type linkServiceMock struct {
	StartOAuthFunc    func(ctx context.Context, accountID uuid.UUID) (string, error)
	CompleteOAuthFunc func(ctx context.Context, accountID *uuid.UUID, cb link.Callback) (*domain.Account, error)
	StartManualFunc   func(ctx context.Context, accountID uuid.UUID, username string) (*link.Challenge, error)
	ConfirmManualFunc func(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	UnlinkFunc        func(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)

	calls struct {
		StartOAuth []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		CompleteOAuth []struct {
			Ctx       context.Context
			AccountID *uuid.UUID
			Cb        link.Callback
		}
		StartManual []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			Username  string
		}
		ConfirmManual []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		Unlink []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
	}
	lockStartOAuth    sync.RWMutex
	lockCompleteOAuth sync.RWMutex
	lockStartManual   sync.RWMutex
	lockConfirmManual sync.RWMutex
	lockUnlink        sync.RWMutex
}

func (mock *linkServiceMock) StartOAuth(ctx context.Context, accountID uuid.UUID) (string, error) {
	if mock.StartOAuthFunc == nil {
		panic("linkServiceMock.StartOAuthFunc: method is nil but linkService.StartOAuth was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockStartOAuth.Lock()
	mock.calls.StartOAuth = append(mock.calls.StartOAuth, callInfo)
	mock.lockStartOAuth.Unlock()
	return mock.StartOAuthFunc(ctx, accountID)
}

func (mock *linkServiceMock) StartOAuthCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockStartOAuth.RLock()
	calls := mock.calls.StartOAuth
	mock.lockStartOAuth.RUnlock()
	return calls
}

func (mock *linkServiceMock) CompleteOAuth(ctx context.Context, accountID *uuid.UUID, cb link.Callback) (*domain.Account, error) {
	if mock.CompleteOAuthFunc == nil {
		panic("linkServiceMock.CompleteOAuthFunc: method is nil but linkService.CompleteOAuth was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID *uuid.UUID
		Cb        link.Callback
	}{Ctx: ctx, AccountID: accountID, Cb: cb}
	mock.lockCompleteOAuth.Lock()
	mock.calls.CompleteOAuth = append(mock.calls.CompleteOAuth, callInfo)
	mock.lockCompleteOAuth.Unlock()
	return mock.CompleteOAuthFunc(ctx, accountID, cb)
}

func (mock *linkServiceMock) CompleteOAuthCalls() []struct {
	Ctx       context.Context
	AccountID *uuid.UUID
	Cb        link.Callback
} {
	mock.lockCompleteOAuth.RLock()
	calls := mock.calls.CompleteOAuth
	mock.lockCompleteOAuth.RUnlock()
	return calls
}

func (mock *linkServiceMock) StartManual(ctx context.Context, accountID uuid.UUID, username string) (*link.Challenge, error) {
	if mock.StartManualFunc == nil {
		panic("linkServiceMock.StartManualFunc: method is nil but linkService.StartManual was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		Username  string
	}{Ctx: ctx, AccountID: accountID, Username: username}
	mock.lockStartManual.Lock()
	mock.calls.StartManual = append(mock.calls.StartManual, callInfo)
	mock.lockStartManual.Unlock()
	return mock.StartManualFunc(ctx, accountID, username)
}

func (mock *linkServiceMock) StartManualCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	Username  string
} {
	mock.lockStartManual.RLock()
	calls := mock.calls.StartManual
	mock.lockStartManual.RUnlock()
	return calls
}

func (mock *linkServiceMock) ConfirmManual(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	if mock.ConfirmManualFunc == nil {
		panic("linkServiceMock.ConfirmManualFunc: method is nil but linkService.ConfirmManual was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockConfirmManual.Lock()
	mock.calls.ConfirmManual = append(mock.calls.ConfirmManual, callInfo)
	mock.lockConfirmManual.Unlock()
	return mock.ConfirmManualFunc(ctx, accountID)
}

func (mock *linkServiceMock) ConfirmManualCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockConfirmManual.RLock()
	calls := mock.calls.ConfirmManual
	mock.lockConfirmManual.RUnlock()
	return calls
}

func (mock *linkServiceMock) Unlink(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	if mock.UnlinkFunc == nil {
		panic("linkServiceMock.UnlinkFunc: method is nil but linkService.Unlink was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockUnlink.Lock()
	mock.calls.Unlink = append(mock.calls.Unlink, callInfo)
	mock.lockUnlink.Unlock()
	return mock.UnlinkFunc(ctx, accountID)
}

func (mock *linkServiceMock) UnlinkCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockUnlink.RLock()
	calls := mock.calls.Unlink
	mock.lockUnlink.RUnlock()
	return calls
}
