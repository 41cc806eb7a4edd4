package trail

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ApplyRewardsFunc func(ctx context.Context, id uuid.UUID, currency int64, vouchers int) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ApplyRewards []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Currency int64
			Vouchers int
		}
	}
	lockGetByID      sync.RWMutex
	lockApplyRewards sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) ApplyRewards(ctx context.Context, id uuid.UUID, currency int64, vouchers int) (*domain.User, error) {
	if mock.ApplyRewardsFunc == nil {
		panic("userRepoMock.ApplyRewardsFunc: method is nil but userRepo.ApplyRewards was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Currency int64
		Vouchers int
	}{Ctx: ctx, Id: id, Currency: currency, Vouchers: vouchers}
	mock.lockApplyRewards.Lock()
	mock.calls.ApplyRewards = append(mock.calls.ApplyRewards, callInfo)
	mock.lockApplyRewards.Unlock()
	return mock.ApplyRewardsFunc(ctx, id, currency, vouchers)
}

func (mock *userRepoMock) ApplyRewardsCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Currency int64
	Vouchers int
} {
	mock.lockApplyRewards.RLock()
	calls := mock.calls.ApplyRewards
	mock.lockApplyRewards.RUnlock()
	return calls
}
