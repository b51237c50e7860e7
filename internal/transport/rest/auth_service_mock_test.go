package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/service/auth"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc   func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc  func(ctx context.Context, accountID uuid.UUID) error

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Refresh []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
		Logout []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
	}
	lockLogin   sync.RWMutex
	lockRefresh sync.RWMutex
	lockLogout  sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{Ctx: ctx, Input: input}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input auth.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context, accountID uuid.UUID) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx, accountID)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}
