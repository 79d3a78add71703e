package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockImageTaskHandler is a mock type for the ImageTaskHandler type
type MockImageTaskHandler struct {
	mock.Mock
}

// HandleImageTask provides a mock function with given fields: ctx, task
func (_m *MockImageTaskHandler) HandleImageTask(ctx context.Context, task models.ImageTask) error {
	ret := _m.Called(ctx, task)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, models.ImageTask) error); ok {
		r0 = rf(ctx, task)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockImageTaskHandler creates a new instance of MockImageTaskHandler. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockImageTaskHandler(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageTaskHandler {
	m := &MockImageTaskHandler{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.ImageTaskHandler = (*MockImageTaskHandler)(nil)
