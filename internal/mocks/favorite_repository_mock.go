package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFavoriteRepository is a mock type for the FavoriteRepository type
type MockFavoriteRepository struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, userID, gameID
func (_m *MockFavoriteRepository) Add(ctx context.Context, userID uuid.UUID, gameID uuid.UUID) error {
	ret := _m.Called(ctx, userID, gameID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, userID, gameID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Remove provides a mock function with given fields: ctx, userID, gameID
func (_m *MockFavoriteRepository) Remove(ctx context.Context, userID uuid.UUID, gameID uuid.UUID) error {
	ret := _m.Called(ctx, userID, gameID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, userID, gameID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Exists provides a mock function with given fields: ctx, userID, gameID
func (_m *MockFavoriteRepository) Exists(ctx context.Context, userID uuid.UUID, gameID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, userID, gameID)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) bool); ok {
		r0 = rf(ctx, userID, gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, userID, gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FavoritedAmong provides a mock function with given fields: ctx, userID, gameIDs
func (_m *MockFavoriteRepository) FavoritedAmong(ctx context.Context, userID uuid.UUID, gameIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	ret := _m.Called(ctx, userID, gameIDs)

	var r0 map[uuid.UUID]bool
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, []uuid.UUID) map[uuid.UUID]bool); ok {
		r0 = rf(ctx, userID, gameIDs)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[uuid.UUID]bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, []uuid.UUID) error); ok {
		r1 = rf(ctx, userID, gameIDs)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListGames provides a mock function with given fields: ctx, userID
func (_m *MockFavoriteRepository) ListGames(ctx context.Context, userID uuid.UUID) ([]*models.Game, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*models.Game
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*models.Game); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Game)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockFavoriteRepository creates a new instance of MockFavoriteRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockFavoriteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFavoriteRepository {
	m := &MockFavoriteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.FavoriteRepository = (*MockFavoriteRepository)(nil)
