package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNarrativeHistoryRepository is a mock type for the NarrativeHistoryRepository type
type MockNarrativeHistoryRepository struct {
	mock.Mock
}

// Append provides a mock function with given fields: ctx, querier, entry
func (_m *MockNarrativeHistoryRepository) Append(ctx context.Context, querier interfaces.DBTX, entry *models.NarrativeHistoryEntry) error {
	ret := _m.Called(ctx, querier, entry)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, *models.NarrativeHistoryEntry) error); ok {
		r0 = rf(ctx, querier, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListByGame provides a mock function with given fields: ctx, querier, gameID
func (_m *MockNarrativeHistoryRepository) ListByGame(ctx context.Context, querier interfaces.DBTX, gameID uuid.UUID) ([]*models.NarrativeHistoryEntry, error) {
	ret := _m.Called(ctx, querier, gameID)

	var r0 []*models.NarrativeHistoryEntry
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID) []*models.NarrativeHistoryEntry); ok {
		r0 = rf(ctx, querier, gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.NarrativeHistoryEntry)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, interfaces.DBTX, uuid.UUID) error); ok {
		r1 = rf(ctx, querier, gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockNarrativeHistoryRepository creates a new instance of MockNarrativeHistoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockNarrativeHistoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNarrativeHistoryRepository {
	m := &MockNarrativeHistoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.NarrativeHistoryRepository = (*MockNarrativeHistoryRepository)(nil)
