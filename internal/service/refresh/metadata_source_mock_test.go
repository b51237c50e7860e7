package refresh

import (
	"context"
	"github.com/heartmarshall/rotection-backend/internal/provider"
	"sync"
)

var _ metadataSource = &metadataSourceMock{}

type metadataSourceMock struct {
	FetchMetadataFunc  func(ctx context.Context, placeID string) (*provider.GameMetadata, error)
	FetchThumbnailFunc func(ctx context.Context, id string, size string) string

	calls struct {
		FetchMetadata []struct {
			Ctx     context.Context
			PlaceID string
		}
		FetchThumbnail []struct {
			Ctx  context.Context
			Id   string
			Size string
		}
	}
	lockFetchMetadata  sync.RWMutex
	lockFetchThumbnail sync.RWMutex
}

func (mock *metadataSourceMock) FetchMetadata(ctx context.Context, placeID string) (*provider.GameMetadata, error) {
	if mock.FetchMetadataFunc == nil {
		panic("metadataSourceMock.FetchMetadataFunc: method is nil but metadataSource.FetchMetadata was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlaceID string
	}{Ctx: ctx, PlaceID: placeID}
	mock.lockFetchMetadata.Lock()
	mock.calls.FetchMetadata = append(mock.calls.FetchMetadata, callInfo)
	mock.lockFetchMetadata.Unlock()
	return mock.FetchMetadataFunc(ctx, placeID)
}

func (mock *metadataSourceMock) FetchMetadataCalls() []struct {
	Ctx     context.Context
	PlaceID string
} {
	mock.lockFetchMetadata.RLock()
	calls := mock.calls.FetchMetadata
	mock.lockFetchMetadata.RUnlock()
	return calls
}

func (mock *metadataSourceMock) FetchThumbnail(ctx context.Context, id string, size string) string {
	if mock.FetchThumbnailFunc == nil {
		panic("metadataSourceMock.FetchThumbnailFunc: method is nil but metadataSource.FetchThumbnail was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   string
		Size string
	}{Ctx: ctx, Id: id, Size: size}
	mock.lockFetchThumbnail.Lock()
	mock.calls.FetchThumbnail = append(mock.calls.FetchThumbnail, callInfo)
	mock.lockFetchThumbnail.Unlock()
	return mock.FetchThumbnailFunc(ctx, id, size)
}

func (mock *metadataSourceMock) FetchThumbnailCalls() []struct {
	Ctx  context.Context
	Id   string
	Size string
} {
	mock.lockFetchThumbnail.RLock()
	calls := mock.calls.FetchThumbnail
	mock.lockFetchThumbnail.RUnlock()
	return calls
}
