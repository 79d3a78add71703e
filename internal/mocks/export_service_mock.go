package mocks

import (
	"context"
	"io"

	"gameforge/internal/interfaces"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockExportService is a mock type for the ExportService type
type MockExportService struct {
	mock.Mock
}

// ExportGamePDF provides a mock function with given fields: ctx, ownerID, gameID, w
func (_m *MockExportService) ExportGamePDF(ctx context.Context, ownerID uuid.UUID, gameID uuid.UUID, w io.Writer) (string, error) {
	ret := _m.Called(ctx, ownerID, gameID, w)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, io.Writer) string); ok {
		r0 = rf(ctx, ownerID, gameID, w)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, io.Writer) error); ok {
		r1 = rf(ctx, ownerID, gameID, w)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockExportService creates a new instance of MockExportService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockExportService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExportService {
	m := &MockExportService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.ExportService = (*MockExportService)(nil)
