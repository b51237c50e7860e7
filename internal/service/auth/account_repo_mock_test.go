package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"sync"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByProviderFunc func(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.Account, error)
	CreateFunc        func(ctx context.Context, a *domain.Account) (*domain.Account, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, displayName string, avatarURL *string) (*domain.Account, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByProvider []struct {
			Ctx        context.Context
			Provider   domain.AuthProvider
			ProviderID string
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Account
		}
		UpdateProfile []struct {
			Ctx         context.Context
			ID          uuid.UUID
			DisplayName string
			AvatarURL   *string
		}
	}
	lockGetByID       sync.RWMutex
	lockGetByProvider sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *accountRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByProvider(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.Account, error) {
	if mock.GetByProviderFunc == nil {
		panic("accountRepoMock.GetByProviderFunc: method is nil but accountRepo.GetByProvider was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Provider   domain.AuthProvider
		ProviderID string
	}{Ctx: ctx, Provider: provider, ProviderID: providerID}
	mock.lockGetByProvider.Lock()
	mock.calls.GetByProvider = append(mock.calls.GetByProvider, callInfo)
	mock.lockGetByProvider.Unlock()
	return mock.GetByProviderFunc(ctx, provider, providerID)
}

func (mock *accountRepoMock) GetByProviderCalls() []struct {
	Ctx        context.Context
	Provider   domain.AuthProvider
	ProviderID string
} {
	mock.lockGetByProvider.RLock()
	calls := mock.calls.GetByProvider
	mock.lockGetByProvider.RUnlock()
	return calls
}

func (mock *accountRepoMock) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Account
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Account
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, displayName string, avatarURL *string) (*domain.Account, error) {
	if mock.UpdateProfileFunc == nil {
		panic("accountRepoMock.UpdateProfileFunc: method is nil but accountRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		DisplayName string
		AvatarURL   *string
	}{Ctx: ctx, ID: id, DisplayName: displayName, AvatarURL: avatarURL}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, displayName, avatarURL)
}

func (mock *accountRepoMock) UpdateProfileCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	DisplayName string
	AvatarURL   *string
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
