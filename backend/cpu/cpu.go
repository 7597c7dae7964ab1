// Copyright 2025 The camdesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/camdesign-ml/camdesign/internal/backend/cpu"
	"github.com/camdesign-ml/camdesign/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go implementations of all tensor operations,
// delegating dense float matrix products to gonum.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/camdesign-ml/camdesign/backend/cpu"
//	    "github.com/camdesign-ml/camdesign/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float64](tensor.Shape{36, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
