package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockContentGenerator is a mock type for the ContentGenerator type
type MockContentGenerator struct {
	mock.Mock
}

// ProposeChoices provides a mock function with given fields: ctx, nc, count
func (_m *MockContentGenerator) ProposeChoices(ctx context.Context, nc models.NarrativeContext, count int) ([]models.ProposedChoice, error) {
	ret := _m.Called(ctx, nc, count)

	var r0 []models.ProposedChoice
	if rf, ok := ret.Get(0).(func(context.Context, models.NarrativeContext, int) []models.ProposedChoice); ok {
		r0 = rf(ctx, nc, count)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.ProposedChoice)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, models.NarrativeContext, int) error); ok {
		r1 = rf(ctx, nc, count)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RewriteAct provides a mock function with given fields: ctx, nc, act
func (_m *MockContentGenerator) RewriteAct(ctx context.Context, nc models.NarrativeContext, act int) (string, error) {
	ret := _m.Called(ctx, nc, act)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, models.NarrativeContext, int) string); ok {
		r0 = rf(ctx, nc, act)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, models.NarrativeContext, int) error); ok {
		r1 = rf(ctx, nc, act)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockContentGenerator creates a new instance of MockContentGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockContentGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockContentGenerator {
	m := &MockContentGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.ContentGenerator = (*MockContentGenerator)(nil)
