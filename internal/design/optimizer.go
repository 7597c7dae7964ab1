// Package design implements optimization of camera sensor spectral
// sensitivities against a loss objective.
//
// The optimizers (SGD with momentum, Adam) update a sensitivity matrix to
// minimize an Objective. Gradients come from central finite differences:
// the colorimetric losses run through matrix decompositions for which no
// analytic gradient is implemented.
package design

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/internal/parallel"
)

// Objective scores a candidate sensitivity matrix. Lower is better.
type Objective func(x *mat.Dense) (float64, error)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update the parameter matrix in place based on the gradient of
// the objective.
type Optimizer interface {
	// Step applies one gradient update to params in place.
	Step(params, grad *mat.Dense)

	// Name returns the optimizer name for logging.
	Name() string
}

// gradStepSize returns the central-difference step for a parameter value:
// cube-root-of-eps scaling, widened with the parameter magnitude.
func gradStepSize(v float64) float64 {
	const base = 6.055454452393343e-06 // cbrt(float64 eps)
	return base * (1 + math.Abs(v))
}

// NumericalGradient computes the gradient of obj at x by central finite
// differences. x is not modified.
//
// Entries are evaluated concurrently on private copies of x, so obj must be
// safe for concurrent calls on distinct matrices. The colorimetric losses
// are pure functions of their input and qualify.
func NumericalGradient(obj Objective, x *mat.Dense) (*mat.Dense, error) {
	rows, cols := x.Dims()
	grad := mat.NewDense(rows, cols, nil)

	var mu sync.Mutex
	var firstErr error

	cfg := parallel.DefaultConfig()
	cfg.MinChunkSize = 1 // each entry costs two objective evaluations

	parallel.ForGrid(rows, cols, func(i, j int) {
		work := mat.DenseCopyOf(x)
		orig := work.At(i, j)
		h := gradStepSize(orig)

		work.Set(i, j, orig+h)
		fPlus, err := obj(work)
		if err != nil {
			recordErr(&mu, &firstErr, fmt.Errorf("design: objective at +h: %w", err))
			return
		}

		work.Set(i, j, orig-h)
		fMinus, err := obj(work)
		if err != nil {
			recordErr(&mu, &firstErr, fmt.Errorf("design: objective at -h: %w", err))
			return
		}

		grad.Set(i, j, (fPlus-fMinus)/(2*h))
	}, cfg)

	if firstErr != nil {
		return nil, firstErr
	}
	return grad, nil
}

func recordErr(mu *sync.Mutex, dst *error, err error) {
	mu.Lock()
	if *dst == nil {
		*dst = err
	}
	mu.Unlock()
}
