package link

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"sync"
)

var _ stateStore = &stateStoreMock{}

type stateStoreMock struct {
	SaveStateFunc       func(ctx context.Context, accountID uuid.UUID, state string) error
	TakeStateFunc       func(ctx context.Context, accountID uuid.UUID) (string, error)
	SaveChallengeFunc   func(ctx context.Context, ch domain.LinkChallenge) error
	GetChallengeFunc    func(ctx context.Context, accountID uuid.UUID) (*domain.LinkChallenge, error)
	DeleteChallengeFunc func(ctx context.Context, accountID uuid.UUID) error

	calls struct {
		SaveState []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			State     string
		}
		TakeState []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		SaveChallenge []struct {
			Ctx context.Context
			Ch  domain.LinkChallenge
		}
		GetChallenge []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		DeleteChallenge []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
	}
	lockSaveState       sync.RWMutex
	lockTakeState       sync.RWMutex
	lockSaveChallenge   sync.RWMutex
	lockGetChallenge    sync.RWMutex
	lockDeleteChallenge sync.RWMutex
}

func (mock *stateStoreMock) SaveState(ctx context.Context, accountID uuid.UUID, state string) error {
	if mock.SaveStateFunc == nil {
		panic("stateStoreMock.SaveStateFunc: method is nil but stateStore.SaveState was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		State     string
	}{Ctx: ctx, AccountID: accountID, State: state}
	mock.lockSaveState.Lock()
	mock.calls.SaveState = append(mock.calls.SaveState, callInfo)
	mock.lockSaveState.Unlock()
	return mock.SaveStateFunc(ctx, accountID, state)
}

func (mock *stateStoreMock) SaveStateCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	State     string
} {
	mock.lockSaveState.RLock()
	calls := mock.calls.SaveState
	mock.lockSaveState.RUnlock()
	return calls
}

func (mock *stateStoreMock) TakeState(ctx context.Context, accountID uuid.UUID) (string, error) {
	if mock.TakeStateFunc == nil {
		panic("stateStoreMock.TakeStateFunc: method is nil but stateStore.TakeState was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockTakeState.Lock()
	mock.calls.TakeState = append(mock.calls.TakeState, callInfo)
	mock.lockTakeState.Unlock()
	return mock.TakeStateFunc(ctx, accountID)
}

func (mock *stateStoreMock) TakeStateCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockTakeState.RLock()
	calls := mock.calls.TakeState
	mock.lockTakeState.RUnlock()
	return calls
}

func (mock *stateStoreMock) SaveChallenge(ctx context.Context, ch domain.LinkChallenge) error {
	if mock.SaveChallengeFunc == nil {
		panic("stateStoreMock.SaveChallengeFunc: method is nil but stateStore.SaveChallenge was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ch  domain.LinkChallenge
	}{Ctx: ctx, Ch: ch}
	mock.lockSaveChallenge.Lock()
	mock.calls.SaveChallenge = append(mock.calls.SaveChallenge, callInfo)
	mock.lockSaveChallenge.Unlock()
	return mock.SaveChallengeFunc(ctx, ch)
}

func (mock *stateStoreMock) SaveChallengeCalls() []struct {
	Ctx context.Context
	Ch  domain.LinkChallenge
} {
	mock.lockSaveChallenge.RLock()
	calls := mock.calls.SaveChallenge
	mock.lockSaveChallenge.RUnlock()
	return calls
}

func (mock *stateStoreMock) GetChallenge(ctx context.Context, accountID uuid.UUID) (*domain.LinkChallenge, error) {
	if mock.GetChallengeFunc == nil {
		panic("stateStoreMock.GetChallengeFunc: method is nil but stateStore.GetChallenge was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockGetChallenge.Lock()
	mock.calls.GetChallenge = append(mock.calls.GetChallenge, callInfo)
	mock.lockGetChallenge.Unlock()
	return mock.GetChallengeFunc(ctx, accountID)
}

func (mock *stateStoreMock) GetChallengeCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockGetChallenge.RLock()
	calls := mock.calls.GetChallenge
	mock.lockGetChallenge.RUnlock()
	return calls
}

func (mock *stateStoreMock) DeleteChallenge(ctx context.Context, accountID uuid.UUID) error {
	if mock.DeleteChallengeFunc == nil {
		panic("stateStoreMock.DeleteChallengeFunc: method is nil but stateStore.DeleteChallenge was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockDeleteChallenge.Lock()
	mock.calls.DeleteChallenge = append(mock.calls.DeleteChallenge, callInfo)
	mock.lockDeleteChallenge.Unlock()
	return mock.DeleteChallengeFunc(ctx, accountID)
}

func (mock *stateStoreMock) DeleteChallengeCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockDeleteChallenge.RLock()
	calls := mock.calls.DeleteChallenge
	mock.lockDeleteChallenge.RUnlock()
	return calls
}
