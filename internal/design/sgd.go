package design

import "gonum.org/v1/gonum/mat"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum accelerates descent in consistent directions and dampens
// oscillations.
type SGD struct {
	lr       float64
	momentum float64
	velocity *mat.Dense
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Name returns the optimizer name.
func (s *SGD) Name() string {
	return "SGD"
}

// Step applies one gradient update to params in place.
func (s *SGD) Step(params, grad *mat.Dense) {
	rows, cols := params.Dims()

	if s.momentum == 0 {
		// param -= lr * grad
		var update mat.Dense
		update.Scale(s.lr, grad)
		params.Sub(params, &update)
		return
	}

	if s.velocity == nil {
		s.velocity = mat.NewDense(rows, cols, nil)
	}

	// velocity = momentum * velocity + grad
	s.velocity.Scale(s.momentum, s.velocity)
	s.velocity.Add(s.velocity, grad)

	// param -= lr * velocity
	var update mat.Dense
	update.Scale(s.lr, s.velocity)
	params.Sub(params, &update)
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
