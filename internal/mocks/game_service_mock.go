package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGameService is a mock type for the GameService type
type MockGameService struct {
	mock.Mock
}

// CreateGame provides a mock function with given fields: ctx, ownerID, req
func (_m *MockGameService) CreateGame(ctx context.Context, ownerID uuid.UUID, req models.CreateGameRequest) (*models.GameDetails, error) {
	ret := _m.Called(ctx, ownerID, req)

	var r0 *models.GameDetails
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, models.CreateGameRequest) *models.GameDetails); ok {
		r0 = rf(ctx, ownerID, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.GameDetails)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, models.CreateGameRequest) error); ok {
		r1 = rf(ctx, ownerID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateRandomGame provides a mock function with given fields: ctx, ownerID
func (_m *MockGameService) CreateRandomGame(ctx context.Context, ownerID uuid.UUID) (*models.GameDetails, error) {
	ret := _m.Called(ctx, ownerID)

	var r0 *models.GameDetails
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.GameDetails); ok {
		r0 = rf(ctx, ownerID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.GameDetails)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetGame provides a mock function with given fields: ctx, ownerID, gameID
func (_m *MockGameService) GetGame(ctx context.Context, ownerID uuid.UUID, gameID uuid.UUID) (*models.GameDetails, error) {
	ret := _m.Called(ctx, ownerID, gameID)

	var r0 *models.GameDetails
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *models.GameDetails); ok {
		r0 = rf(ctx, ownerID, gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.GameDetails)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, ownerID, gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListGames provides a mock function with given fields: ctx, ownerID, limit, offset
func (_m *MockGameService) ListGames(ctx context.Context, ownerID uuid.UUID, limit int, offset int) ([]*models.GameSummary, error) {
	ret := _m.Called(ctx, ownerID, limit, offset)

	var r0 []*models.GameSummary
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int, int) []*models.GameSummary); ok {
		r0 = rf(ctx, ownerID, limit, offset)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.GameSummary)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, int, int) error); ok {
		r1 = rf(ctx, ownerID, limit, offset)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetDynamicNarrative provides a mock function with given fields: ctx, ownerID, gameID, enabled
func (_m *MockGameService) SetDynamicNarrative(ctx context.Context, ownerID uuid.UUID, gameID uuid.UUID, enabled bool) (*models.Game, error) {
	ret := _m.Called(ctx, ownerID, gameID, enabled)

	var r0 *models.Game
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, bool) *models.Game); ok {
		r0 = rf(ctx, ownerID, gameID, enabled)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Game)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, bool) error); ok {
		r1 = rf(ctx, ownerID, gameID, enabled)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockGameService creates a new instance of MockGameService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockGameService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGameService {
	m := &MockGameService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.GameService = (*MockGameService)(nil)
