package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNarrativeService is a mock type for the NarrativeService type
type MockNarrativeService struct {
	mock.Mock
}

// ViewState provides a mock function with given fields: ctx, ownerID, gameID
func (_m *MockNarrativeService) ViewState(ctx context.Context, ownerID uuid.UUID, gameID uuid.UUID) (*models.NarrativeState, error) {
	ret := _m.Called(ctx, ownerID, gameID)

	var r0 *models.NarrativeState
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *models.NarrativeState); ok {
		r0 = rf(ctx, ownerID, gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.NarrativeState)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, ownerID, gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RegenerateChoices provides a mock function with given fields: ctx, ownerID, gameID
func (_m *MockNarrativeService) RegenerateChoices(ctx context.Context, ownerID uuid.UUID, gameID uuid.UUID) ([]*models.NarrativeChoiceOption, error) {
	ret := _m.Called(ctx, ownerID, gameID)

	var r0 []*models.NarrativeChoiceOption
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) []*models.NarrativeChoiceOption); ok {
		r0 = rf(ctx, ownerID, gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.NarrativeChoiceOption)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, ownerID, gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CommitChoice provides a mock function with given fields: ctx, ownerID, gameID, optionID
func (_m *MockNarrativeService) CommitChoice(ctx context.Context, ownerID uuid.UUID, gameID uuid.UUID, optionID uuid.UUID) (*models.CommitResult, error) {
	ret := _m.Called(ctx, ownerID, gameID, optionID)

	var r0 *models.CommitResult
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) *models.CommitResult); ok {
		r0 = rf(ctx, ownerID, gameID, optionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CommitResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, ownerID, gameID, optionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockNarrativeService creates a new instance of MockNarrativeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockNarrativeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNarrativeService {
	m := &MockNarrativeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.NarrativeService = (*MockNarrativeService)(nil)
