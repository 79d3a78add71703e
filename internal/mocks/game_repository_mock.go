package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGameRepository is a mock type for the GameRepository type
type MockGameRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, querier, game
func (_m *MockGameRepository) Create(ctx context.Context, querier interfaces.DBTX, game *models.Game) error {
	ret := _m.Called(ctx, querier, game)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, *models.Game) error); ok {
		r0 = rf(ctx, querier, game)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetByID provides a mock function with given fields: ctx, querier, id
func (_m *MockGameRepository) GetByID(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) (*models.Game, error) {
	ret := _m.Called(ctx, querier, id)

	var r0 *models.Game
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID) *models.Game); ok {
		r0 = rf(ctx, querier, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Game)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, interfaces.DBTX, uuid.UUID) error); ok {
		r1 = rf(ctx, querier, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByIDForUpdate provides a mock function with given fields: ctx, querier, id
func (_m *MockGameRepository) GetByIDForUpdate(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) (*models.Game, error) {
	ret := _m.Called(ctx, querier, id)

	var r0 *models.Game
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID) *models.Game); ok {
		r0 = rf(ctx, querier, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Game)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, interfaces.DBTX, uuid.UUID) error); ok {
		r1 = rf(ctx, querier, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListByOwner provides a mock function with given fields: ctx, querier, ownerID, limit, offset
func (_m *MockGameRepository) ListByOwner(ctx context.Context, querier interfaces.DBTX, ownerID uuid.UUID, limit int, offset int) ([]*models.Game, error) {
	ret := _m.Called(ctx, querier, ownerID, limit, offset)

	var r0 []*models.Game
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID, int, int) []*models.Game); ok {
		r0 = rf(ctx, querier, ownerID, limit, offset)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Game)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, interfaces.DBTX, uuid.UUID, int, int) error); ok {
		r1 = rf(ctx, querier, ownerID, limit, offset)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateActText provides a mock function with given fields: ctx, querier, id, act, text
func (_m *MockGameRepository) UpdateActText(ctx context.Context, querier interfaces.DBTX, id uuid.UUID, act int, text string) error {
	ret := _m.Called(ctx, querier, id, act, text)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID, int, string) error); ok {
		r0 = rf(ctx, querier, id, act, text)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetDynamicNarrative provides a mock function with given fields: ctx, querier, id, enabled
func (_m *MockGameRepository) SetDynamicNarrative(ctx context.Context, querier interfaces.DBTX, id uuid.UUID, enabled bool) error {
	ret := _m.Called(ctx, querier, id, enabled)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID, bool) error); ok {
		r0 = rf(ctx, querier, id, enabled)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockGameRepository creates a new instance of MockGameRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockGameRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGameRepository {
	m := &MockGameRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.GameRepository = (*MockGameRepository)(nil)
