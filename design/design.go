// Copyright 2025 The camdesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package design provides gradient-based optimization of camera spectral
// sensitivities against colorimetric objectives.
//
// Sensitivities are represented as a dense (wavelengths x channels)
// matrix. Objectives built from the losses package (Vora-Value, Luther
// condition) go through subspace decompositions, so gradients are
// estimated numerically with central finite differences rather than by
// backpropagation.
//
// Example:
//
//	obj := func(x *mat.Dense) (float64, error) {
//	    return losses.VoraDense(x, cmfs)
//	}
//	result, err := design.Optimize(obj, init, design.NewAdam(design.AdamConfig{}), design.Config{
//	    MaxIter:          500,
//	    NonNegative:      true,
//	    NormalizeColumns: true,
//	})
package design

import (
	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/internal/design"
)

// Objective maps a candidate sensitivity matrix to a scalar loss.
type Objective = design.Objective

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = design.Optimizer

// SGD represents the SGD optimizer with optional momentum.
type SGD = design.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = design.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return design.NewSGD(config)
}

// Adam represents the Adam optimizer.
type Adam = design.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = design.AdamConfig

// NewAdam creates a new Adam optimizer.
func NewAdam(config AdamConfig) *Adam {
	return design.NewAdam(config)
}

// Config controls the optimization loop.
type Config = design.Config

// Result holds the outcome of an optimization run.
type Result = design.Result

// Optimize minimizes obj starting from init using the given optimizer.
func Optimize(obj Objective, init *mat.Dense, opt Optimizer, config Config) (*Result, error) {
	return design.Optimize(obj, init, opt, config)
}

// NumericalGradient estimates the gradient of obj at x with central
// finite differences.
func NumericalGradient(obj Objective, x *mat.Dense) (*mat.Dense, error) {
	return design.NumericalGradient(obj, x)
}
