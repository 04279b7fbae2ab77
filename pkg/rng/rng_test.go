package rng_test

import (
	"testing"

	"github.com/Behyna/payment-services/txdatagen/pkg/rng"
	"github.com/stretchr/testify/assert"
)

func TestSeededSourceIsDeterministic(t *testing.T) {
	first := rng.NewSeeded(42)
	second := rng.NewSeeded(42)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, first.Uniform(1, 5000), second.Uniform(1, 5000))
	}
}

func TestUniformStaysInRange(t *testing.T) {
	source := rng.NewSeeded(7)

	t.Run("wide range", func(t *testing.T) {
		for i := 0; i < 10000; i++ {
			v := source.Uniform(1, 1000)
			assert.GreaterOrEqual(t, v, int64(1))
			assert.LessOrEqual(t, v, int64(1000))
		}
	})

	t.Run("collapsed range returns the single value", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			assert.Equal(t, int64(1), source.Uniform(1, 1))
		}
	})
}

func TestUniformPanicsOnInvertedRange(t *testing.T) {
	source := rng.NewSeeded(7)
	assert.Panics(t, func() { source.Uniform(5, 1) })
}

func TestUnseededSourcesDiverge(t *testing.T) {
	first := rng.New()
	second := rng.New()

	same := true
	for i := 0; i < 64; i++ {
		if first.Uniform(1, 1<<30) != second.Uniform(1, 1<<30) {
			same = false
			break
		}
	}
	assert.False(t, same, "independent unseeded sources should not produce identical streams")
}
