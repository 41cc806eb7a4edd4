package cli

import (
	"context"
	"sync"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

var _ trailLister = &trailListerMock{}

type trailListerMock struct {
	ListFunc func(ctx context.Context) ([]domain.Trail, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *trailListerMock) List(ctx context.Context) ([]domain.Trail, error) {
	if mock.ListFunc == nil {
		panic("trailListerMock.ListFunc: method is nil but trailLister.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *trailListerMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
