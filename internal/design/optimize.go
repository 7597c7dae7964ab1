package design

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Config controls the optimization loop.
type Config struct {
	MaxIter int     // maximum number of iterations (default: 100)
	Tol     float64 // stop when |loss delta| < Tol (default: 1e-9)

	// NonNegative projects the sensitivities onto [0, +inf) after each
	// step. Physical sensor responses cannot go negative.
	NonNegative bool

	// NormalizeColumns rescales each channel to unit peak after each step,
	// removing the scale degree of freedom the subspace losses ignore.
	NormalizeColumns bool

	// Callback, when set, is invoked after each iteration with the
	// iteration index and current loss.
	Callback func(iter int, loss float64)
}

// Result holds the outcome of an optimization run.
type Result struct {
	Params     *mat.Dense // best parameters found
	Loss       float64    // loss at Params
	Iterations int        // iterations executed
	Converged  bool       // true when the Tol stop triggered
}

// Optimize minimizes obj starting from init using the given optimizer.
// init is not modified; the returned Result owns its parameter matrix.
func Optimize(obj Objective, init *mat.Dense, opt Optimizer, config Config) (*Result, error) {
	if obj == nil {
		return nil, errors.New("design: nil objective")
	}
	if init == nil {
		return nil, errors.New("design: nil initial parameters")
	}
	if config.MaxIter == 0 {
		config.MaxIter = 100
	}
	if config.Tol == 0 {
		config.Tol = 1e-9
	}

	params := mat.DenseCopyOf(init)
	project(params, config)

	loss, err := obj(params)
	if err != nil {
		return nil, fmt.Errorf("design: initial objective: %w", err)
	}

	best := mat.DenseCopyOf(params)
	bestLoss := loss

	result := &Result{}
	prevLoss := loss

	for iter := 0; iter < config.MaxIter; iter++ {
		grad, err := NumericalGradient(obj, params)
		if err != nil {
			return nil, err
		}

		opt.Step(params, grad)
		project(params, config)

		loss, err = obj(params)
		if err != nil {
			return nil, fmt.Errorf("design: objective at iteration %d: %w", iter, err)
		}

		if loss < bestLoss {
			bestLoss = loss
			best.Copy(params)
		}

		if config.Callback != nil {
			config.Callback(iter, loss)
		}

		result.Iterations = iter + 1
		if math.Abs(prevLoss-loss) < config.Tol {
			result.Converged = true
			break
		}
		prevLoss = loss
	}

	result.Params = best
	result.Loss = bestLoss
	return result, nil
}

// project applies the configured feasibility constraints in place.
func project(params *mat.Dense, config Config) {
	rows, cols := params.Dims()

	if config.NonNegative {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if params.At(i, j) < 0 {
					params.Set(i, j, 0)
				}
			}
		}
	}

	if config.NormalizeColumns {
		for j := 0; j < cols; j++ {
			peak := 0.0
			for i := 0; i < rows; i++ {
				if v := math.Abs(params.At(i, j)); v > peak {
					peak = v
				}
			}
			if peak > 0 {
				for i := 0; i < rows; i++ {
					params.Set(i, j, params.At(i, j)/peak)
				}
			}
		}
	}
}
