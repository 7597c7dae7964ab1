package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	s, err := Aggregate([]float64{4, 1, 3, 2})
	require.NoError(t, err)

	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 4, s.Max, 1e-12)
	assert.InDelta(t, 2.5, s.Median, 1e-12)
	assert.Equal(t, 4, s.N)
	// P95 interpolates between the 3rd and 4th order statistics.
	assert.InDelta(t, 3.85, s.P95, 1e-12)
}

func TestAggregateSingleValue(t *testing.T) {
	s, err := Aggregate([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, s.Mean)
	assert.Equal(t, 7.0, s.Max)
	assert.Equal(t, 7.0, s.Median)
	assert.Equal(t, 7.0, s.P95)
	assert.Equal(t, 1, s.N)
}

func TestAggregateEmpty(t *testing.T) {
	_, err := Aggregate(nil)
	assert.ErrorIs(t, err, ErrNoValues)
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Aggregate(values)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}
