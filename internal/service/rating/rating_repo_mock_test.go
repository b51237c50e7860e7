package rating

import (
	"context"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"sync"
)

var _ ratingRepo = &ratingRepoMock{}

type ratingRepoMock struct {
	UpsertFunc func(ctx context.Context, in *domain.Rating) (*domain.Rating, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			In  *domain.Rating
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *ratingRepoMock) Upsert(ctx context.Context, in *domain.Rating) (*domain.Rating, error) {
	if mock.UpsertFunc == nil {
		panic("ratingRepoMock.UpsertFunc: method is nil but ratingRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  *domain.Rating
	}{Ctx: ctx, In: in}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, in)
}

func (mock *ratingRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	In  *domain.Rating
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
