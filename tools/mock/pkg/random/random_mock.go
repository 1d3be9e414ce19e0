package random

import (
	"github.com/stretchr/testify/mock"
)

type MockIntGenerator struct {
	mock.Mock
}

func (m *MockIntGenerator) IntInRange(min, max float64) (int64, error) {
	args := m.Called(min, max)
	return args.Get(0).(int64), args.Error(1)
}
