package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockImageTaskPublisher is a mock type for the ImageTaskPublisher type
type MockImageTaskPublisher struct {
	mock.Mock
}

// PublishImageTask provides a mock function with given fields: ctx, task
func (_m *MockImageTaskPublisher) PublishImageTask(ctx context.Context, task models.ImageTask) error {
	ret := _m.Called(ctx, task)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, models.ImageTask) error); ok {
		r0 = rf(ctx, task)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockImageTaskPublisher creates a new instance of MockImageTaskPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockImageTaskPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageTaskPublisher {
	m := &MockImageTaskPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.ImageTaskPublisher = (*MockImageTaskPublisher)(nil)
