package cli

import (
	"context"
	"sync"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

var _ roleSetter = &roleSetterMock{}

type roleSetterMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)

	SetRoleFunc func(ctx context.Context, email string, role domain.UserRole) error

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		SetRole []struct {
			Ctx   context.Context
			Email string
			Role  domain.UserRole
		}
	}
	lockGetByEmail sync.RWMutex
	lockSetRole    sync.RWMutex
}

func (mock *roleSetterMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("roleSetterMock.GetByEmailFunc: method is nil but roleSetter.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *roleSetterMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *roleSetterMock) SetRole(ctx context.Context, email string, role domain.UserRole) error {
	if mock.SetRoleFunc == nil {
		panic("roleSetterMock.SetRoleFunc: method is nil but roleSetter.SetRole was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Role  domain.UserRole
	}{Ctx: ctx, Email: email, Role: role}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, email, role)
}

func (mock *roleSetterMock) SetRoleCalls() []struct {
	Ctx   context.Context
	Email string
	Role  domain.UserRole
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}
