package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
	"github.com/heartmarshall/pokeranch-backend/internal/service/trail"
)

var _ trailService = &trailServiceMock{}

type trailServiceMock struct {
	DispatchFunc    func(ctx context.Context, input trail.DispatchInput) (*trail.DispatchResult, error)
	CollectFunc     func(ctx context.Context, creatureID uuid.UUID) (*trail.CollectResult, error)
	VisibleLogFunc  func(ctx context.Context, creatureID uuid.UUID) (*trail.LogResult, error)
	GetTrailFunc    func(ctx context.Context, slug string) (*domain.Trail, error)
	ListTrailsFunc  func(ctx context.Context) ([]domain.Trail, error)
	CreateTrailFunc func(ctx context.Context, input trail.CreateTrailInput) (*domain.Trail, error)
	EditTrailFunc   func(ctx context.Context, input trail.EditTrailInput) (*domain.Trail, error)
	DeleteTrailFunc func(ctx context.Context, slug string) (*domain.Trail, error)

	calls struct {
		Dispatch []struct {
			Ctx   context.Context
			Input trail.DispatchInput
		}
		Collect []struct {
			Ctx        context.Context
			CreatureID uuid.UUID
		}
		VisibleLog []struct {
			Ctx        context.Context
			CreatureID uuid.UUID
		}
		GetTrail []struct {
			Ctx  context.Context
			Slug string
		}
		ListTrails []struct {
			Ctx context.Context
		}
		CreateTrail []struct {
			Ctx   context.Context
			Input trail.CreateTrailInput
		}
		EditTrail []struct {
			Ctx   context.Context
			Input trail.EditTrailInput
		}
		DeleteTrail []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockDispatch    sync.RWMutex
	lockCollect     sync.RWMutex
	lockVisibleLog  sync.RWMutex
	lockGetTrail    sync.RWMutex
	lockListTrails  sync.RWMutex
	lockCreateTrail sync.RWMutex
	lockEditTrail   sync.RWMutex
	lockDeleteTrail sync.RWMutex
}

func (mock *trailServiceMock) Dispatch(ctx context.Context, input trail.DispatchInput) (*trail.DispatchResult, error) {
	if mock.DispatchFunc == nil {
		panic("trailServiceMock.DispatchFunc: method is nil but trailService.Dispatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input trail.DispatchInput
	}{Ctx: ctx, Input: input}
	mock.lockDispatch.Lock()
	mock.calls.Dispatch = append(mock.calls.Dispatch, callInfo)
	mock.lockDispatch.Unlock()
	return mock.DispatchFunc(ctx, input)
}

func (mock *trailServiceMock) DispatchCalls() []struct {
	Ctx   context.Context
	Input trail.DispatchInput
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}

func (mock *trailServiceMock) Collect(ctx context.Context, creatureID uuid.UUID) (*trail.CollectResult, error) {
	if mock.CollectFunc == nil {
		panic("trailServiceMock.CollectFunc: method is nil but trailService.Collect was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CreatureID uuid.UUID
	}{Ctx: ctx, CreatureID: creatureID}
	mock.lockCollect.Lock()
	mock.calls.Collect = append(mock.calls.Collect, callInfo)
	mock.lockCollect.Unlock()
	return mock.CollectFunc(ctx, creatureID)
}

func (mock *trailServiceMock) CollectCalls() []struct {
	Ctx        context.Context
	CreatureID uuid.UUID
} {
	mock.lockCollect.RLock()
	calls := mock.calls.Collect
	mock.lockCollect.RUnlock()
	return calls
}

func (mock *trailServiceMock) VisibleLog(ctx context.Context, creatureID uuid.UUID) (*trail.LogResult, error) {
	if mock.VisibleLogFunc == nil {
		panic("trailServiceMock.VisibleLogFunc: method is nil but trailService.VisibleLog was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CreatureID uuid.UUID
	}{Ctx: ctx, CreatureID: creatureID}
	mock.lockVisibleLog.Lock()
	mock.calls.VisibleLog = append(mock.calls.VisibleLog, callInfo)
	mock.lockVisibleLog.Unlock()
	return mock.VisibleLogFunc(ctx, creatureID)
}

func (mock *trailServiceMock) VisibleLogCalls() []struct {
	Ctx        context.Context
	CreatureID uuid.UUID
} {
	mock.lockVisibleLog.RLock()
	calls := mock.calls.VisibleLog
	mock.lockVisibleLog.RUnlock()
	return calls
}

func (mock *trailServiceMock) GetTrail(ctx context.Context, slug string) (*domain.Trail, error) {
	if mock.GetTrailFunc == nil {
		panic("trailServiceMock.GetTrailFunc: method is nil but trailService.GetTrail was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetTrail.Lock()
	mock.calls.GetTrail = append(mock.calls.GetTrail, callInfo)
	mock.lockGetTrail.Unlock()
	return mock.GetTrailFunc(ctx, slug)
}

func (mock *trailServiceMock) GetTrailCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetTrail.RLock()
	calls := mock.calls.GetTrail
	mock.lockGetTrail.RUnlock()
	return calls
}

func (mock *trailServiceMock) ListTrails(ctx context.Context) ([]domain.Trail, error) {
	if mock.ListTrailsFunc == nil {
		panic("trailServiceMock.ListTrailsFunc: method is nil but trailService.ListTrails was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTrails.Lock()
	mock.calls.ListTrails = append(mock.calls.ListTrails, callInfo)
	mock.lockListTrails.Unlock()
	return mock.ListTrailsFunc(ctx)
}

func (mock *trailServiceMock) ListTrailsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTrails.RLock()
	calls := mock.calls.ListTrails
	mock.lockListTrails.RUnlock()
	return calls
}

func (mock *trailServiceMock) CreateTrail(ctx context.Context, input trail.CreateTrailInput) (*domain.Trail, error) {
	if mock.CreateTrailFunc == nil {
		panic("trailServiceMock.CreateTrailFunc: method is nil but trailService.CreateTrail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input trail.CreateTrailInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTrail.Lock()
	mock.calls.CreateTrail = append(mock.calls.CreateTrail, callInfo)
	mock.lockCreateTrail.Unlock()
	return mock.CreateTrailFunc(ctx, input)
}

func (mock *trailServiceMock) CreateTrailCalls() []struct {
	Ctx   context.Context
	Input trail.CreateTrailInput
} {
	mock.lockCreateTrail.RLock()
	calls := mock.calls.CreateTrail
	mock.lockCreateTrail.RUnlock()
	return calls
}

func (mock *trailServiceMock) EditTrail(ctx context.Context, input trail.EditTrailInput) (*domain.Trail, error) {
	if mock.EditTrailFunc == nil {
		panic("trailServiceMock.EditTrailFunc: method is nil but trailService.EditTrail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input trail.EditTrailInput
	}{Ctx: ctx, Input: input}
	mock.lockEditTrail.Lock()
	mock.calls.EditTrail = append(mock.calls.EditTrail, callInfo)
	mock.lockEditTrail.Unlock()
	return mock.EditTrailFunc(ctx, input)
}

func (mock *trailServiceMock) EditTrailCalls() []struct {
	Ctx   context.Context
	Input trail.EditTrailInput
} {
	mock.lockEditTrail.RLock()
	calls := mock.calls.EditTrail
	mock.lockEditTrail.RUnlock()
	return calls
}

func (mock *trailServiceMock) DeleteTrail(ctx context.Context, slug string) (*domain.Trail, error) {
	if mock.DeleteTrailFunc == nil {
		panic("trailServiceMock.DeleteTrailFunc: method is nil but trailService.DeleteTrail was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockDeleteTrail.Lock()
	mock.calls.DeleteTrail = append(mock.calls.DeleteTrail, callInfo)
	mock.lockDeleteTrail.Unlock()
	return mock.DeleteTrailFunc(ctx, slug)
}

func (mock *trailServiceMock) DeleteTrailCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockDeleteTrail.RLock()
	calls := mock.calls.DeleteTrail
	mock.lockDeleteTrail.RUnlock()
	return calls
}
