package mocks

import (
	"context"

	"gameforge/internal/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockImageStore is a mock type for the ImageStore type
type MockImageStore struct {
	mock.Mock
}

// DownloadAndSave provides a mock function with given fields: ctx, url, filename, subfolder
func (_m *MockImageStore) DownloadAndSave(ctx context.Context, url string, filename string, subfolder string) (string, error) {
	ret := _m.Called(ctx, url, filename, subfolder)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) string); ok {
		r0 = rf(ctx, url, filename, subfolder)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string, string) error); ok {
		r1 = rf(ctx, url, filename, subfolder)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockImageStore creates a new instance of MockImageStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockImageStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageStore {
	m := &MockImageStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.ImageStore = (*MockImageStore)(nil)
