package mocks

import (
	"context"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockConceptGenerator is a mock type for the ConceptGenerator type
type MockConceptGenerator struct {
	mock.Mock
}

// GenerateConcept provides a mock function with given fields: ctx, req
func (_m *MockConceptGenerator) GenerateConcept(ctx context.Context, req models.ConceptRequest) *models.GameConcept {
	ret := _m.Called(ctx, req)

	var r0 *models.GameConcept
	if rf, ok := ret.Get(0).(func(context.Context, models.ConceptRequest) *models.GameConcept); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.GameConcept)
	}

	return r0
}

// NewMockConceptGenerator creates a new instance of MockConceptGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockConceptGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConceptGenerator {
	m := &MockConceptGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.ConceptGenerator = (*MockConceptGenerator)(nil)
