package mocks

import (
	"context"

	"gameforge/internal/interfaces"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGameLocker is a mock type for the GameLocker type
type MockGameLocker struct {
	mock.Mock
}

// Acquire provides a mock function with given fields: ctx, gameID
func (_m *MockGameLocker) Acquire(ctx context.Context, gameID uuid.UUID) (func(), error) {
	ret := _m.Called(ctx, gameID)

	var r0 func()
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) func()); ok {
		r0 = rf(ctx, gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(func())
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockGameLocker creates a new instance of MockGameLocker. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockGameLocker(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGameLocker {
	m := &MockGameLocker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.GameLocker = (*MockGameLocker)(nil)
