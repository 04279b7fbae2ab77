package mocks

import (
	"github.com/stretchr/testify/mock"
)

type RandSource struct {
	mock.Mock
}

func (r *RandSource) Uniform(low, high int64) int64 {
	args := r.Called(low, high)
	return args.Get(0).(int64)
}
