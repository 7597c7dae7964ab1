// Copyright 2025 The camdesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/camdesign-ml/camdesign/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go with gonum-backed matrix products
//
// The operation set is deliberately small: it is what colorimetric losses and
// spectral simulation dispatch. Matrix decompositions (QR, SVD, pinv) are not
// backend operations; they run through internal/linalg on float64 data.
//
// Example:
//
//	import (
//	    "github.com/camdesign-ml/camdesign/tensor"
//	    "github.com/camdesign-ml/camdesign/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float64](tensor.Shape{36, 3}, backend)
//	y := tensor.Ones[float64](tensor.Shape{36, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Matrix operations.
	MatMul(a, b *RawTensor) *RawTensor // Matrix multiplication.

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reshape tensor.
	Transpose(t *RawTensor, axes ...int) *RawTensor  // Transpose dimensions.

	// Scalar operations (element-wise with scalar).
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.

	// Reduction operations.
	Sum(x *RawTensor) *RawTensor // Total sum (scalar result).

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
