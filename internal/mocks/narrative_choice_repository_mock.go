package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNarrativeChoiceRepository is a mock type for the NarrativeChoiceRepository type
type MockNarrativeChoiceRepository struct {
	mock.Mock
}

// ListByGameAndAct provides a mock function with given fields: ctx, querier, gameID, act
func (_m *MockNarrativeChoiceRepository) ListByGameAndAct(ctx context.Context, querier interfaces.DBTX, gameID uuid.UUID, act int) ([]*models.NarrativeChoiceOption, error) {
	ret := _m.Called(ctx, querier, gameID, act)

	var r0 []*models.NarrativeChoiceOption
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID, int) []*models.NarrativeChoiceOption); ok {
		r0 = rf(ctx, querier, gameID, act)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.NarrativeChoiceOption)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, interfaces.DBTX, uuid.UUID, int) error); ok {
		r1 = rf(ctx, querier, gameID, act)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetForGame provides a mock function with given fields: ctx, querier, gameID, optionID
func (_m *MockNarrativeChoiceRepository) GetForGame(ctx context.Context, querier interfaces.DBTX, gameID uuid.UUID, optionID uuid.UUID) (*models.NarrativeChoiceOption, error) {
	ret := _m.Called(ctx, querier, gameID, optionID)

	var r0 *models.NarrativeChoiceOption
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID, uuid.UUID) *models.NarrativeChoiceOption); ok {
		r0 = rf(ctx, querier, gameID, optionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.NarrativeChoiceOption)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, interfaces.DBTX, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, querier, gameID, optionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteByGameAndAct provides a mock function with given fields: ctx, querier, gameID, act
func (_m *MockNarrativeChoiceRepository) DeleteByGameAndAct(ctx context.Context, querier interfaces.DBTX, gameID uuid.UUID, act int) (int64, error) {
	ret := _m.Called(ctx, querier, gameID, act)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, uuid.UUID, int) int64); ok {
		r0 = rf(ctx, querier, gameID, act)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, interfaces.DBTX, uuid.UUID, int) error); ok {
		r1 = rf(ctx, querier, gameID, act)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateBatch provides a mock function with given fields: ctx, querier, options
func (_m *MockNarrativeChoiceRepository) CreateBatch(ctx context.Context, querier interfaces.DBTX, options []*models.NarrativeChoiceOption) error {
	ret := _m.Called(ctx, querier, options)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, interfaces.DBTX, []*models.NarrativeChoiceOption) error); ok {
		r0 = rf(ctx, querier, options)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockNarrativeChoiceRepository creates a new instance of MockNarrativeChoiceRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockNarrativeChoiceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNarrativeChoiceRepository {
	m := &MockNarrativeChoiceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.NarrativeChoiceRepository = (*MockNarrativeChoiceRepository)(nil)
