package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The operation set is the one colorimetric losses and spectral simulation
// actually dispatch: elementwise arithmetic with broadcasting, dense matrix
// products, shape manipulation, scalar arithmetic, and full reductions.
// Decompositions (QR, SVD, pseudo-inverse) are not backend operations; they
// go through internal/linalg on float64 data.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul performs matrix multiplication.
	// For 2D tensors: (M, K) @ (K, N) -> (M, N)
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Scalar operations (element-wise with scalar)
	MulScalar(x *RawTensor, scalar any) *RawTensor
	AddScalar(x *RawTensor, scalar any) *RawTensor

	// Reduction operations
	Sum(x *RawTensor) *RawTensor // total sum (scalar result, shape {1})

	// Metadata
	Name() string
	Device() Device
}
