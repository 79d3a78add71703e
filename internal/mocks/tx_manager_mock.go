package mocks

import (
	"context"

	"gameforge/internal/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockTxManager is a mock type for the TxManager type
type MockTxManager struct {
	mock.Mock
}

// WithTx provides a mock function with given fields: ctx, fn
func (_m *MockTxManager) WithTx(ctx context.Context, fn func(context.Context, interfaces.DBTX) error) error {
	ret := _m.Called(ctx, fn)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(context.Context, interfaces.DBTX) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockTxManager creates a new instance of MockTxManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTxManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTxManager {
	m := &MockTxManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.TxManager = (*MockTxManager)(nil)
