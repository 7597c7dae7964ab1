// Package cpu implements the CPU backend. Dense float matrix products are
// delegated to gonum; everything else is plain Go.
package cpu

import (
	"fmt"

	"github.com/camdesign-ml/camdesign/internal/parallel"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y },
		func(x, y int32) int32 { return x + y },
	)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y },
		func(x, y int32) int32 { return x - y },
	)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y },
		func(x, y int32) int32 { return x * y },
	)
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE 754 for floats and panics for int32.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y },
		func(x, y int32) int32 { return x / y },
	)
}

// binaryOp applies an element-wise binary operation with broadcasting.
func (cpu *CPUBackend) binaryOp(
	name string,
	a, b *tensor.RawTensor,
	f32 func(x, y float32) float32,
	f64 func(x, y float64) float64,
	i32 func(x, y int32) int32,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	aIdx := newBroadcastIndexer(outShape, a.Shape())
	bIdx := newBroadcastIndexer(outShape, b.Shape())
	n := outShape.NumElements()

	switch a.DType() {
	case tensor.Float32:
		out, av, bv := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		parallel.For(n, func(i int) {
			out[i] = f32(av[aIdx.source(i)], bv[bIdx.source(i)])
		}, cpu.parallel)
	case tensor.Float64:
		out, av, bv := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		parallel.For(n, func(i int) {
			out[i] = f64(av[aIdx.source(i)], bv[bIdx.source(i)])
		}, cpu.parallel)
	case tensor.Int32:
		out, av, bv := result.AsInt32(), a.AsInt32(), b.AsInt32()
		parallel.For(n, func(i int) {
			out[i] = i32(av[aIdx.source(i)], bv[bIdx.source(i)])
		}, cpu.parallel)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// broadcastIndexer maps flat output indices to flat source indices for a
// (possibly lower-rank or size-1-padded) source shape.
type broadcastIndexer struct {
	outStrides []int // strides of the output shape
	srcStrides []int // per-output-dim source strides, 0 where the source broadcasts
}

func newBroadcastIndexer(out, src tensor.Shape) *broadcastIndexer {
	outStrides := out.ComputeStrides()
	srcStrides := make([]int, len(out))

	realStrides := src.ComputeStrides()
	for i := 0; i < len(out); i++ {
		srcDim := len(src) - len(out) + i
		if srcDim < 0 || src[srcDim] == 1 {
			srcStrides[i] = 0
		} else {
			srcStrides[i] = realStrides[srcDim]
		}
	}
	return &broadcastIndexer{outStrides: outStrides, srcStrides: srcStrides}
}

// source converts a flat output index to the corresponding flat source index.
func (ix *broadcastIndexer) source(flat int) int {
	src := 0
	for d, stride := range ix.outStrides {
		coord := flat / stride
		flat -= coord * stride
		src += coord * ix.srcStrides[d]
	}
	return src
}
