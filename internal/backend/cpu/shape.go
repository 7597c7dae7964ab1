package cpu

import (
	"fmt"

	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// Reshape returns a tensor sharing the same buffer with a new shape.
// The new shape must have the same number of elements.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	if newShape.NumElements() != t.NumElements() {
		panic(fmt.Sprintf("reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			t.Shape(), t.NumElements(), newShape, newShape.NumElements()))
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	copy(result.Data(), t.Data())
	return result
}

// Transpose permutes the tensor's dimensions.
// An empty axes list reverses all dimensions.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	nd := len(t.Shape())

	if len(axes) == 0 {
		axes = make([]int, nd)
		for i := range axes {
			axes[i] = nd - 1 - i
		}
	}
	if len(axes) != nd {
		panic(fmt.Sprintf("transpose: expected %d axes, got %d", nd, len(axes)))
	}

	seen := make([]bool, nd)
	outShape := make(tensor.Shape, nd)
	for i, ax := range axes {
		if ax < 0 || ax >= nd || seen[ax] {
			panic(fmt.Sprintf("transpose: invalid axes permutation %v", axes))
		}
		seen[ax] = true
		outShape[i] = t.Shape()[ax]
	}

	result, err := tensor.NewRaw(outShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("transpose: failed to create result tensor: %v", err))
	}

	inStrides := t.Shape().ComputeStrides()
	outStrides := outShape.ComputeStrides()
	n := t.NumElements()

	// Map each output element back to its source position.
	srcFor := func(flat int) int {
		src := 0
		for d := 0; d < nd; d++ {
			coord := flat / outStrides[d]
			flat -= coord * outStrides[d]
			src += coord * inStrides[axes[d]]
		}
		return src
	}

	switch t.DType() {
	case tensor.Float32:
		out, in := result.AsFloat32(), t.AsFloat32()
		for i := 0; i < n; i++ {
			out[i] = in[srcFor(i)]
		}
	case tensor.Float64:
		out, in := result.AsFloat64(), t.AsFloat64()
		for i := 0; i < n; i++ {
			out[i] = in[srcFor(i)]
		}
	case tensor.Int32:
		out, in := result.AsInt32(), t.AsInt32()
		for i := 0; i < n; i++ {
			out[i] = in[srcFor(i)]
		}
	case tensor.Bool:
		out, in := result.AsBool(), t.AsBool()
		for i := 0; i < n; i++ {
			out[i] = in[srcFor(i)]
		}
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", t.DType()))
	}

	return result
}
