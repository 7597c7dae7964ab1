// Copyright 2025 The camdesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package losses provides camera-design loss functions.
//
// The losses score camera sensor spectral sensitivities against a
// colorimetric reference basis (typically CIE color matching functions):
//   - Luther loss: deviation from the Luther condition (linear mapping to CMFs)
//   - Vora loss/value: subspace similarity between sensor set and CMFs
//   - L2 loss: basic squared-error utility
//
// All losses accept 2D tensors whose first dimension is the wavelength
// sample count: sensors of shape (n, m) and reference bases of shape (n, 3).
//
// Example:
//
//	backend := cpu.New()
//	sensors, _ := tensor.FromSlice(sensorData, tensor.Shape{36, 3}, backend)
//	cmfs, _ := tensor.FromSlice(cmfData, tensor.Shape{36, 3}, backend)
//
//	vv, err := losses.VoraValue(sensors, cmfs)  // similarity in [0, 1]
//	ll, err := losses.Luther(sensors, cmfs, true)
package losses

import (
	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/internal/losses"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// Reduction selects how an element-wise loss collapses to its final value.
type Reduction = losses.Reduction

// Supported reductions.
const (
	ReductionNone Reduction = losses.ReductionNone
	ReductionMean Reduction = losses.ReductionMean
	ReductionSum  Reduction = losses.ReductionSum
)

// L2 computes the squared-error loss (pred − target)² under the given
// reduction. ReductionNone preserves the input shape; ReductionMean and
// ReductionSum yield a scalar tensor.
func L2[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	return losses.L2(pred, target, reduction)
}

// Luther computes the deviation from the Luther condition:
// ||(I − P_cmfs) @ sensors||_F, divided by ||sensors||_F when normalize is
// set. Zero means the sensors are a linear transform of the CMFs.
func Luther[T tensor.Float, B tensor.Backend](sensors, cmfs *tensor.Tensor[T, B], normalize bool) (float64, error) {
	return losses.Luther(sensors, cmfs, normalize)
}

// EstimateLutherMapping computes the least-squares map A with
// cmfs @ A ≈ sensors, i.e. A = pinv(cmfs) @ sensors.
func EstimateLutherMapping[T tensor.Float, B tensor.Backend](cmfs, sensors *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return losses.EstimateLutherMapping(cmfs, sensors)
}

// LutherMapping computes the mapping form of the Luther loss: ||Q·M − V||_F
// (divided by ||V||_F when normalize is set).
func LutherMapping[T tensor.Float, B tensor.Backend](q, m, v *tensor.Tensor[T, B], normalize bool) (float64, error) {
	return losses.LutherMapping(q, m, v, normalize)
}

// LutherRegression computes the least-squares Luther error at the optimal
// mapping M* = pinv(Q)·X, i.e. ||(P_Q − I)·X||_F.
func LutherRegression[T tensor.Float, B tensor.Backend](q, x *tensor.Tensor[T, B], normalize bool) (float64, error) {
	return losses.LutherRegression(q, x, normalize)
}

// VoraValue computes the Vora-Value: subspace similarity in [0, 1] as the
// average squared cosine of the principal angles between the sensor and CMF
// subspaces.
func VoraValue[T tensor.Float, B tensor.Backend](sensors, cmfs *tensor.Tensor[T, B]) (float64, error) {
	return losses.VoraValue(sensors, cmfs)
}

// VoraValueGeneral computes the Vora-Value through ridge-regularized
// projectors instead of orthonormal bases.
func VoraValueGeneral[T tensor.Float, B tensor.Backend](q, x *tensor.Tensor[T, B]) (float64, error) {
	return losses.VoraValueGeneral(q, x)
}

// Vora is the loss counterpart of VoraValue: 1 − VV, in [0, 1].
func Vora[T tensor.Float, B tensor.Backend](sensors, cmfs *tensor.Tensor[T, B]) (float64, error) {
	return losses.Vora(sensors, cmfs)
}

// Dense forms, for optimization objectives that hold sensitivities as
// gonum matrices.

// LutherDense is the dense-matrix form of Luther.
func LutherDense(sensors, cmfs *mat.Dense, normalize bool) (float64, error) {
	return losses.LutherDense(sensors, cmfs, normalize)
}

// VoraValueDense is the dense-matrix form of VoraValue.
func VoraValueDense(sensors, cmfs *mat.Dense) (float64, error) {
	return losses.VoraValueDense(sensors, cmfs)
}

// VoraDense is the dense-matrix form of Vora.
func VoraDense(sensors, cmfs *mat.Dense) (float64, error) {
	return losses.VoraDense(sensors, cmfs)
}

// Module forms, for callers that hold a criterion.

// L2Loss is the module form of L2.
type L2Loss[T tensor.Float, B tensor.Backend] = losses.L2Loss[T, B]

// LutherLoss is the module form of Luther.
type LutherLoss[T tensor.Float, B tensor.Backend] = losses.LutherLoss[T, B]

// VoraLoss is the module form of Vora.
type VoraLoss[T tensor.Float, B tensor.Backend] = losses.VoraLoss[T, B]

// NewL2Loss creates an L2 loss module. An empty reduction defaults to mean.
func NewL2Loss[T tensor.Float, B tensor.Backend](backend B, reduction Reduction) *L2Loss[T, B] {
	return losses.NewL2Loss[T, B](backend, reduction)
}

// NewLutherLoss creates a Luther loss module with normalization enabled.
func NewLutherLoss[T tensor.Float, B tensor.Backend](backend B) *LutherLoss[T, B] {
	return losses.NewLutherLoss[T, B](backend)
}

// NewRawLutherLoss creates a Luther loss module without normalization.
func NewRawLutherLoss[T tensor.Float, B tensor.Backend](backend B) *LutherLoss[T, B] {
	return losses.NewRawLutherLoss[T, B](backend)
}

// NewVoraLoss creates a Vora loss module.
func NewVoraLoss[T tensor.Float, B tensor.Backend](backend B) *VoraLoss[T, B] {
	return losses.NewVoraLoss[T, B](backend)
}
