package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCharacterRepository is a mock type for the CharacterRepository type
type MockCharacterRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, querier, character
func (_m *MockCharacterRepository) Create(ctx context.Context, querier interfaces.DBTX, character *models.Character) error {
	ret := _m.Called(ctx, querier, character)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, *models.Character) error); ok {
		r0 = rf(ctx, querier, character)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListByGame provides a mock function with given fields: ctx, querier, gameID
func (_m *MockCharacterRepository) ListByGame(ctx context.Context, querier interfaces.DBTX, gameID uuid.UUID) ([]*models.Character, error) {
	ret := _m.Called(ctx, querier, gameID)

	var r0 []*models.Character
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID) []*models.Character); ok {
		r0 = rf(ctx, querier, gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Character)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, interfaces.DBTX, uuid.UUID) error); ok {
		r1 = rf(ctx, querier, gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateImagePath provides a mock function with given fields: ctx, querier, id, imagePath
func (_m *MockCharacterRepository) UpdateImagePath(ctx context.Context, querier interfaces.DBTX, id uuid.UUID, imagePath string) error {
	ret := _m.Called(ctx, querier, id, imagePath)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID, string) error); ok {
		r0 = rf(ctx, querier, id, imagePath)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockCharacterRepository creates a new instance of MockCharacterRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCharacterRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCharacterRepository {
	m := &MockCharacterRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.CharacterRepository = (*MockCharacterRepository)(nil)
