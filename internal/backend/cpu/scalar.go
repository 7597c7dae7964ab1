package cpu

import (
	"fmt"

	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// MulScalar multiplies every element by a scalar.
// The scalar's Go type must match the tensor's dtype.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulscalar", x, scalar,
		func(v, s float32) float32 { return v * s },
		func(v, s float64) float64 { return v * s },
		func(v, s int32) int32 { return v * s },
	)
}

// AddScalar adds a scalar to every element.
// The scalar's Go type must match the tensor's dtype.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addscalar", x, scalar,
		func(v, s float32) float32 { return v + s },
		func(v, s float64) float64 { return v + s },
		func(v, s int32) int32 { return v + s },
	)
}

func (cpu *CPUBackend) scalarOp(
	name string,
	x *tensor.RawTensor,
	scalar any,
	f32 func(v, s float32) float32,
	f64 func(v, s float64) float64,
	i32 func(v, s int32) int32,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		s, ok := scalar.(float32)
		if !ok {
			panic(fmt.Sprintf("%s: scalar type %T does not match dtype float32", name, scalar))
		}
		out, in := result.AsFloat32(), x.AsFloat32()
		for i := range in {
			out[i] = f32(in[i], s)
		}
	case tensor.Float64:
		s, ok := scalar.(float64)
		if !ok {
			panic(fmt.Sprintf("%s: scalar type %T does not match dtype float64", name, scalar))
		}
		out, in := result.AsFloat64(), x.AsFloat64()
		for i := range in {
			out[i] = f64(in[i], s)
		}
	case tensor.Int32:
		s, ok := scalar.(int32)
		if !ok {
			panic(fmt.Sprintf("%s: scalar type %T does not match dtype int32", name, scalar))
		}
		out, in := result.AsInt32(), x.AsInt32()
		for i := range in {
			out[i] = i32(in[i], s)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}
