package trail

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

var _ creatureRepo = &creatureRepoMock{}

type creatureRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Creature, error)
	SaveFunc    func(ctx context.Context, c *domain.Creature) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Save []struct {
			Ctx context.Context
			C   *domain.Creature
		}
	}
	lockGetByID sync.RWMutex
	lockSave    sync.RWMutex
}

func (mock *creatureRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Creature, error) {
	if mock.GetByIDFunc == nil {
		panic("creatureRepoMock.GetByIDFunc: method is nil but creatureRepo.GetByID was just called")
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

func (mock *creatureRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *creatureRepoMock) Save(ctx context.Context, c *domain.Creature) error {
	if mock.SaveFunc == nil {
		panic("creatureRepoMock.SaveFunc: method is nil but creatureRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Creature
	}{Ctx: ctx, C: c}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, c)
}

func (mock *creatureRepoMock) SaveCalls() []struct {
	Ctx context.Context
	C   *domain.Creature
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
