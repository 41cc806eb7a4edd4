package cli

import (
	"context"
	"sync"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

var _ trailCreator = &trailCreatorMock{}

type trailCreatorMock struct {
	CreateFunc func(ctx context.Context, t *domain.Trail) (*domain.Trail, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Trail
		}
	}
	lockCreate sync.RWMutex
}

func (mock *trailCreatorMock) Create(ctx context.Context, t *domain.Trail) (*domain.Trail, error) {
	if mock.CreateFunc == nil {
		panic("trailCreatorMock.CreateFunc: method is nil but trailCreator.Create was just called")
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

func (mock *trailCreatorMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Trail
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
