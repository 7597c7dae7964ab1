package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, one[T](), b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Eye creates a 2D identity matrix of size n×n.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	for i := 0; i < n; i++ {
		t.Set(one[T](), i, i)
	}
	return t
}

// Arange creates a 1D tensor with values [start, start+1, ..., end-1].
// Only defined for numeric types.
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	n := arangeLen(start, end)
	if n <= 0 {
		panic(fmt.Sprintf("arange: invalid range [%v, %v)", start, end))
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	for i := range data {
		data[i] = addIndex(start, i)
	}
	return t
}

// Randn creates a tensor filled with samples from the standard normal
// distribution N(0, 1). Only defined for float types.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = fromFloat64[T](rand.NormFloat64())
	}
	return t
}

// Rand creates a tensor filled with samples from the uniform distribution
// U(0, 1). Only defined for float types.
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = fromFloat64[T](rand.Float64())
	}
	return t
}

// one returns the multiplicative identity for T (true for bool).
func one[T DType]() T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(float32(1)).(T)
	case float64:
		return any(float64(1)).(T)
	case int32:
		return any(int32(1)).(T)
	case bool:
		return any(true).(T)
	default:
		panic("unsupported type")
	}
}

// fromFloat64 converts a float64 sample to T. Panics for non-float T.
func fromFloat64[T DType](v float64) T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	default:
		panic("random creation requires a float tensor type")
	}
}

// arangeLen computes the number of elements between start and end.
func arangeLen[T DType](start, end T) int {
	switch s := any(start).(type) {
	case float32:
		return int(any(end).(float32) - s)
	case float64:
		return int(any(end).(float64) - s)
	case int32:
		return int(any(end).(int32) - s)
	default:
		panic("arange requires a numeric tensor type")
	}
}

// addIndex returns start + i in T's arithmetic.
func addIndex[T DType](start T, i int) T {
	switch s := any(start).(type) {
	case float32:
		return any(s + float32(i)).(T)
	case float64:
		return any(s + float64(i)).(T)
	case int32:
		return any(s + int32(i)).(T)
	default:
		panic("arange requires a numeric tensor type")
	}
}
