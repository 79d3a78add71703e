package mocks

import (
	"gameforge/internal/interfaces"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockClientNotifier is a mock type for the ClientNotifier type
type MockClientNotifier struct {
	mock.Mock
}

// NotifyUser provides a mock function with given fields: userID, eventType, payload
func (_m *MockClientNotifier) NotifyUser(userID uuid.UUID, eventType string, payload interface{}) {
	_m.Called(userID, eventType, payload)
}

// NewMockClientNotifier creates a new instance of MockClientNotifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockClientNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClientNotifier {
	m := &MockClientNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.ClientNotifier = (*MockClientNotifier)(nil)
