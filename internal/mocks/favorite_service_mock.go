package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFavoriteService is a mock type for the FavoriteService type
type MockFavoriteService struct {
	mock.Mock
}

// ToggleFavorite provides a mock function with given fields: ctx, userID, gameID
func (_m *MockFavoriteService) ToggleFavorite(ctx context.Context, userID uuid.UUID, gameID uuid.UUID) (bool, error) {
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

// ListFavorites provides a mock function with given fields: ctx, userID
func (_m *MockFavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Game, error) {
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

// NewMockFavoriteService creates a new instance of MockFavoriteService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockFavoriteService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFavoriteService {
	m := &MockFavoriteService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.FavoriteService = (*MockFavoriteService)(nil)
