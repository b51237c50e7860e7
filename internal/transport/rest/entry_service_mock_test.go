package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/service/submission"
	"sync"
)

var _ entryService = &entryServiceMock{}

type entryServiceMock struct {
	SubmitEntryFunc func(ctx context.Context, accountID uuid.UUID, robloxURL string) (*submission.EntryResult, error)

	calls struct {
		SubmitEntry []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			RobloxURL string
		}
	}
	lockSubmitEntry sync.RWMutex
}

func (mock *entryServiceMock) SubmitEntry(ctx context.Context, accountID uuid.UUID, robloxURL string) (*submission.EntryResult, error) {
	if mock.SubmitEntryFunc == nil {
		panic("entryServiceMock.SubmitEntryFunc: method is nil but entryService.SubmitEntry was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		RobloxURL string
	}{Ctx: ctx, AccountID: accountID, RobloxURL: robloxURL}
	mock.lockSubmitEntry.Lock()
	mock.calls.SubmitEntry = append(mock.calls.SubmitEntry, callInfo)
	mock.lockSubmitEntry.Unlock()
	return mock.SubmitEntryFunc(ctx, accountID, robloxURL)
}

func (mock *entryServiceMock) SubmitEntryCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	RobloxURL string
} {
	mock.lockSubmitEntry.RLock()
	calls := mock.calls.SubmitEntry
	mock.lockSubmitEntry.RUnlock()
	return calls
}
