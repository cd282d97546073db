package mocks

import "github.com/stretchr/testify/mock"

// MockCodeGenerator is a mock implementation of network.CodeGenerator.
type MockCodeGenerator struct {
	mock.Mock
}

func (m *MockCodeGenerator) Code() string {
	args := m.Called()
	return args.String(0)
}
