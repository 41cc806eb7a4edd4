package trail

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

var _ trailRepo = &trailRepoMock{}

type trailRepoMock struct {
	GetByTitleFunc       func(ctx context.Context, title string) (*domain.Trail, error)
	ListFunc             func(ctx context.Context) ([]domain.Trail, error)
	CreateFunc           func(ctx context.Context, t *domain.Trail) (*domain.Trail, error)
	UpdateFunc           func(ctx context.Context, title string, params domain.TrailUpdateParams) (*domain.Trail, error)
	DeleteFunc           func(ctx context.Context, title string) (*domain.Trail, error)
	AddToRosterFunc      func(ctx context.Context, trailID uuid.UUID, creatureID uuid.UUID) error
	RemoveFromRosterFunc func(ctx context.Context, creatureID uuid.UUID) error

	calls struct {
		GetByTitle []struct {
			Ctx   context.Context
			Title string
		}
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Trail
		}
		Update []struct {
			Ctx    context.Context
			Title  string
			Params domain.TrailUpdateParams
		}
		Delete []struct {
			Ctx   context.Context
			Title string
		}
		AddToRoster []struct {
			Ctx        context.Context
			TrailID    uuid.UUID
			CreatureID uuid.UUID
		}
		RemoveFromRoster []struct {
			Ctx        context.Context
			CreatureID uuid.UUID
		}
	}
	lockGetByTitle       sync.RWMutex
	lockList             sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockAddToRoster      sync.RWMutex
	lockRemoveFromRoster sync.RWMutex
}

func (mock *trailRepoMock) GetByTitle(ctx context.Context, title string) (*domain.Trail, error) {
	if mock.GetByTitleFunc == nil {
		panic("trailRepoMock.GetByTitleFunc: method is nil but trailRepo.GetByTitle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Title string
	}{Ctx: ctx, Title: title}
	mock.lockGetByTitle.Lock()
	mock.calls.GetByTitle = append(mock.calls.GetByTitle, callInfo)
	mock.lockGetByTitle.Unlock()
	return mock.GetByTitleFunc(ctx, title)
}

func (mock *trailRepoMock) GetByTitleCalls() []struct {
	Ctx   context.Context
	Title string
} {
	mock.lockGetByTitle.RLock()
	calls := mock.calls.GetByTitle
	mock.lockGetByTitle.RUnlock()
	return calls
}

func (mock *trailRepoMock) List(ctx context.Context) ([]domain.Trail, error) {
	if mock.ListFunc == nil {
		panic("trailRepoMock.ListFunc: method is nil but trailRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *trailRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *trailRepoMock) Create(ctx context.Context, t *domain.Trail) (*domain.Trail, error) {
	if mock.CreateFunc == nil {
		panic("trailRepoMock.CreateFunc: method is nil but trailRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Trail
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *trailRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Trail
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *trailRepoMock) Update(ctx context.Context, title string, params domain.TrailUpdateParams) (*domain.Trail, error) {
	if mock.UpdateFunc == nil {
		panic("trailRepoMock.UpdateFunc: method is nil but trailRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Title  string
		Params domain.TrailUpdateParams
	}{Ctx: ctx, Title: title, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, title, params)
}

func (mock *trailRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Title  string
	Params domain.TrailUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *trailRepoMock) Delete(ctx context.Context, title string) (*domain.Trail, error) {
	if mock.DeleteFunc == nil {
		panic("trailRepoMock.DeleteFunc: method is nil but trailRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Title string
	}{Ctx: ctx, Title: title}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, title)
}

func (mock *trailRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	Title string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *trailRepoMock) AddToRoster(ctx context.Context, trailID uuid.UUID, creatureID uuid.UUID) error {
	if mock.AddToRosterFunc == nil {
		panic("trailRepoMock.AddToRosterFunc: method is nil but trailRepo.AddToRoster was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		TrailID    uuid.UUID
		CreatureID uuid.UUID
	}{Ctx: ctx, TrailID: trailID, CreatureID: creatureID}
	mock.lockAddToRoster.Lock()
	mock.calls.AddToRoster = append(mock.calls.AddToRoster, callInfo)
	mock.lockAddToRoster.Unlock()
	return mock.AddToRosterFunc(ctx, trailID, creatureID)
}

func (mock *trailRepoMock) AddToRosterCalls() []struct {
	Ctx        context.Context
	TrailID    uuid.UUID
	CreatureID uuid.UUID
} {
	mock.lockAddToRoster.RLock()
	calls := mock.calls.AddToRoster
	mock.lockAddToRoster.RUnlock()
	return calls
}

func (mock *trailRepoMock) RemoveFromRoster(ctx context.Context, creatureID uuid.UUID) error {
	if mock.RemoveFromRosterFunc == nil {
		panic("trailRepoMock.RemoveFromRosterFunc: method is nil but trailRepo.RemoveFromRoster was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CreatureID uuid.UUID
	}{Ctx: ctx, CreatureID: creatureID}
	mock.lockRemoveFromRoster.Lock()
	mock.calls.RemoveFromRoster = append(mock.calls.RemoveFromRoster, callInfo)
	mock.lockRemoveFromRoster.Unlock()
	return mock.RemoveFromRosterFunc(ctx, creatureID)
}

func (mock *trailRepoMock) RemoveFromRosterCalls() []struct {
	Ctx        context.Context
	CreatureID uuid.UUID
} {
	mock.lockRemoveFromRoster.RLock()
	calls := mock.calls.RemoveFromRoster
	mock.lockRemoveFromRoster.RUnlock()
	return calls
}
