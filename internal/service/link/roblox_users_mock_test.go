package link

import (
	"context"
	"github.com/heartmarshall/rotection-backend/internal/provider"
	"sync"
)

var _ robloxUsers = &robloxUsersMock{}

type robloxUsersMock struct {
	LookupUsernameFunc     func(ctx context.Context, username string) (*provider.RobloxUser, error)
	FetchPublicProfileFunc func(ctx context.Context, userID int64) (*provider.RobloxUser, error)

	calls struct {
		LookupUsername []struct {
			Ctx      context.Context
			Username string
		}
		FetchPublicProfile []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockLookupUsername     sync.RWMutex
	lockFetchPublicProfile sync.RWMutex
}

func (mock *robloxUsersMock) LookupUsername(ctx context.Context, username string) (*provider.RobloxUser, error) {
	if mock.LookupUsernameFunc == nil {
		panic("robloxUsersMock.LookupUsernameFunc: method is nil but robloxUsers.LookupUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockLookupUsername.Lock()
	mock.calls.LookupUsername = append(mock.calls.LookupUsername, callInfo)
	mock.lockLookupUsername.Unlock()
	return mock.LookupUsernameFunc(ctx, username)
}

func (mock *robloxUsersMock) LookupUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockLookupUsername.RLock()
	calls := mock.calls.LookupUsername
	mock.lockLookupUsername.RUnlock()
	return calls
}

func (mock *robloxUsersMock) FetchPublicProfile(ctx context.Context, userID int64) (*provider.RobloxUser, error) {
	if mock.FetchPublicProfileFunc == nil {
		panic("robloxUsersMock.FetchPublicProfileFunc: method is nil but robloxUsers.FetchPublicProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockFetchPublicProfile.Lock()
	mock.calls.FetchPublicProfile = append(mock.calls.FetchPublicProfile, callInfo)
	mock.lockFetchPublicProfile.Unlock()
	return mock.FetchPublicProfileFunc(ctx, userID)
}

func (mock *robloxUsersMock) FetchPublicProfileCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockFetchPublicProfile.RLock()
	calls := mock.calls.FetchPublicProfile
	mock.lockFetchPublicProfile.RUnlock()
	return calls
}
