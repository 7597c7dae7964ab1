package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N)
//
// Float64 goes straight through gonum over the tensors' backing slices
// (zero-copy); float32 is widened to float64 for the product; int32 uses a
// plain triple loop.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float64:
		dst := mat.NewDense(m, n, result.AsFloat64())
		dst.Mul(mat.NewDense(m, k, a.AsFloat64()), mat.NewDense(k, n, b.AsFloat64()))
	case tensor.Float32:
		matmulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	case tensor.Int32:
		matmulInt32(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulFloat32 widens to float64 and multiplies through gonum.
func matmulFloat32(c, a, b []float32, m, k, n int) {
	aw := make([]float64, len(a))
	for i, v := range a {
		aw[i] = float64(v)
	}
	bw := make([]float64, len(b))
	for i, v := range b {
		bw[i] = float64(v)
	}

	cw := mat.NewDense(m, n, nil)
	cw.Mul(mat.NewDense(m, k, aw), mat.NewDense(k, n, bw))

	raw := cw.RawMatrix().Data
	for i := range c {
		c[i] = float32(raw[i])
	}
}

// matmulInt32 performs naive matrix multiplication for int32.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmulInt32(c, a, b []int32, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum int32
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
