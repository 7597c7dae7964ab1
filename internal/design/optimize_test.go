package design

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// quadratic returns sum((x - target)²), minimized at x = target.
func quadratic(target *mat.Dense) Objective {
	return func(x *mat.Dense) (float64, error) {
		rows, cols := x.Dims()
		var sum float64
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				d := x.At(i, j) - target.At(i, j)
				sum += d * d
			}
		}
		return sum, nil
	}
}

func TestNumericalGradientQuadratic(t *testing.T) {
	target := mat.NewDense(2, 2, []float64{1, -2, 0.5, 3})
	x := mat.NewDense(2, 2, []float64{0, 0, 0, 0})

	grad, err := NumericalGradient(quadratic(target), x)
	require.NoError(t, err)

	// d/dx of (x - t)² at x = 0 is -2t.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, -2*target.At(i, j), grad.At(i, j), 1e-6)
		}
	}

	// x must be left untouched.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Zero(t, x.At(i, j))
		}
	}
}

func TestNumericalGradientPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	obj := func(x *mat.Dense) (float64, error) { return 0, boom }

	_, err := NumericalGradient(obj, mat.NewDense(1, 1, []float64{1}))
	assert.ErrorIs(t, err, boom)
}

func TestSGDConvergesOnQuadratic(t *testing.T) {
	target := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	init := mat.NewDense(3, 2, nil)
	obj := quadratic(target)

	result, err := Optimize(obj, init, NewSGD(SGDConfig{LR: 0.1}), Config{
		MaxIter: 200,
		Tol:     1e-14,
	})
	require.NoError(t, err)
	assert.Less(t, result.Loss, 1e-8)

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, target.At(i, j), result.Params.At(i, j), 1e-3)
		}
	}
}

func TestSGDMomentumConverges(t *testing.T) {
	target := mat.NewDense(2, 2, []float64{1, -1, 2, -2})
	init := mat.NewDense(2, 2, nil)

	result, err := Optimize(quadratic(target), init, NewSGD(SGDConfig{LR: 0.05, Momentum: 0.9}), Config{
		MaxIter: 300,
		Tol:     1e-14,
	})
	require.NoError(t, err)
	assert.Less(t, result.Loss, 1e-6)
}

func TestAdamConvergesOnQuadratic(t *testing.T) {
	target := mat.NewDense(2, 3, []float64{0.2, -0.4, 0.6, -0.8, 1.0, -1.2})
	init := mat.NewDense(2, 3, nil)

	result, err := Optimize(quadratic(target), init, NewAdam(AdamConfig{LR: 0.05}), Config{
		MaxIter: 500,
		Tol:     1e-14,
	})
	require.NoError(t, err)
	assert.Less(t, result.Loss, 1e-4)
}

func TestOptimizeBestLossNonIncreasing(t *testing.T) {
	target := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	init := mat.NewDense(2, 2, nil)
	obj := quadratic(target)

	var losses []float64
	result, err := Optimize(obj, init, NewAdam(AdamConfig{}), Config{
		MaxIter: 50,
		Callback: func(iter int, loss float64) {
			losses = append(losses, loss)
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, losses)

	// The reported loss is the best seen, never worse than any iterate.
	for _, l := range losses {
		assert.LessOrEqual(t, result.Loss, l+1e-15)
	}
	assert.Equal(t, len(losses), result.Iterations)
}

func TestOptimizeNonNegativeProjection(t *testing.T) {
	// The unconstrained minimum has negative entries; the projection keeps
	// the iterates at zero there.
	target := mat.NewDense(2, 1, []float64{-1, 2})
	init := mat.NewDense(2, 1, []float64{1, 1})

	result, err := Optimize(quadratic(target), init, NewSGD(SGDConfig{LR: 0.1}), Config{
		MaxIter:     200,
		NonNegative: true,
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Params.At(0, 0), 0.0)
	assert.InDelta(t, 0, result.Params.At(0, 0), 1e-6)
	assert.InDelta(t, 2, result.Params.At(1, 0), 1e-3)
}

func TestOptimizeNormalizeColumns(t *testing.T) {
	target := mat.NewDense(3, 2, []float64{2, 4, 6, 8, 10, 12})
	init := mat.NewDense(3, 2, []float64{1, 1, 1, 1, 1, 1})

	result, err := Optimize(quadratic(target), init, NewSGD(SGDConfig{LR: 0.01}), Config{
		MaxIter:          20,
		NormalizeColumns: true,
	})
	require.NoError(t, err)

	// Each column peaks at exactly 1.
	_, cols := result.Params.Dims()
	for j := 0; j < cols; j++ {
		peak := 0.0
		for i := 0; i < 3; i++ {
			if v := result.Params.At(i, j); v > peak {
				peak = v
			}
		}
		assert.InDelta(t, 1, peak, 1e-12)
	}
}

func TestOptimizeConverged(t *testing.T) {
	target := mat.NewDense(1, 1, []float64{5})
	init := mat.NewDense(1, 1, []float64{4.9})

	result, err := Optimize(quadratic(target), init, NewSGD(SGDConfig{LR: 0.5}), Config{
		MaxIter: 1000,
		Tol:     1e-10,
	})
	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.Less(t, result.Iterations, 1000)
}

func TestOptimizeNilArguments(t *testing.T) {
	_, err := Optimize(nil, mat.NewDense(1, 1, nil), NewSGD(SGDConfig{}), Config{})
	assert.Error(t, err)

	_, err = Optimize(quadratic(mat.NewDense(1, 1, nil)), nil, NewSGD(SGDConfig{}), Config{})
	assert.Error(t, err)
}

func TestOptimizeDoesNotMutateInit(t *testing.T) {
	target := mat.NewDense(1, 2, []float64{1, 2})
	init := mat.NewDense(1, 2, []float64{0.5, 0.5})

	_, err := Optimize(quadratic(target), init, NewSGD(SGDConfig{LR: 0.1}), Config{MaxIter: 10})
	require.NoError(t, err)

	assert.Equal(t, 0.5, init.At(0, 0))
	assert.Equal(t, 0.5, init.At(0, 1))
}

func TestOptimizerNames(t *testing.T) {
	assert.Equal(t, "SGD", NewSGD(SGDConfig{}).Name())
	assert.Equal(t, "Adam", NewAdam(AdamConfig{}).Name())
}
