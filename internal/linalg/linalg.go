// Package linalg bridges the tensor core to gonum's dense linear algebra.
//
// Colorimetric losses are defined through orthogonal projections onto
// spectral subspaces. The decompositions behind those projections (SVD,
// pseudo-inverse) come from gonum and run on float64; float32 tensors are
// widened on the way in.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// Epsilon is the float64 machine epsilon, used for tolerance guards.
const Epsilon = 2.220446049250313e-16

// ErrEmptyMatrix is returned when an operation receives a matrix with no
// elements or no numerically significant columns.
var ErrEmptyMatrix = errors.New("linalg: matrix is empty or has zero rank")

// FromTensor converts a 2D float tensor into a dense float64 matrix.
// The data is copied; float32 values are widened.
func FromTensor[T tensor.Float, B tensor.Backend](t *tensor.Tensor[T, B]) (*mat.Dense, error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("linalg: expected a 2D tensor, got shape %v", shape)
	}
	if t.NumElements() == 0 {
		return nil, ErrEmptyMatrix
	}

	rows, cols := shape[0], shape[1]
	data := make([]float64, rows*cols)
	for i, v := range t.Data() {
		data[i] = float64(v)
	}
	return mat.NewDense(rows, cols, data), nil
}

// ToTensor converts a dense float64 matrix into a 2D tensor.
// Float32 targets narrow the values.
func ToTensor[T tensor.Float, B tensor.Backend](d *mat.Dense, b B) (*tensor.Tensor[T, B], error) {
	rows, cols := d.Dims()
	raw := d.RawMatrix()

	data := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = T(raw.Data[i*raw.Stride+j])
		}
	}
	return tensor.FromSlice(data, tensor.Shape{rows, cols}, b)
}

// rankTol returns the singular value cutoff for rank decisions:
// eps · max(rows, cols) · σ_max.
func rankTol(rows, cols int, sigmaMax float64) float64 {
	return Epsilon * float64(max(rows, cols)) * sigmaMax
}

// OrthonormalBasis returns an orthonormal basis Q spanning col(x), with
// columns trimmed to the numerical rank of x.
func OrthonormalBasis(x *mat.Dense) (*mat.Dense, error) {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, errors.New("linalg: SVD failed to converge")
	}

	var u mat.Dense
	svd.UTo(&u)
	sigma := svd.Values(nil)

	tol := rankTol(rows, cols, sigma[0])
	rank := 0
	for _, s := range sigma {
		if s > tol {
			rank++
		}
	}
	if rank == 0 {
		return nil, ErrEmptyMatrix
	}

	basis := u.Slice(0, rows, 0, rank).(*mat.Dense)
	return mat.DenseCopyOf(basis), nil
}

// PseudoInverse computes the Moore-Penrose pseudo-inverse via SVD, zeroing
// singular values below the rank tolerance.
func PseudoInverse(x *mat.Dense) (*mat.Dense, error) {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, errors.New("linalg: SVD failed to converge")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sigma := svd.Values(nil)

	tol := rankTol(rows, cols, sigma[0])
	k := len(sigma)

	// V · Σ⁺ · Uᵀ
	sigmaInv := mat.NewDense(k, k, nil)
	for i, s := range sigma {
		if s > tol {
			sigmaInv.Set(i, i, 1/s)
		}
	}

	var tmp, pinv mat.Dense
	tmp.Mul(&v, sigmaInv)
	pinv.Mul(&tmp, u.T())
	return &pinv, nil
}

// Projector returns the orthogonal projection matrix onto span(basis):
// P = B · pinv(B).
func Projector(basis *mat.Dense) (*mat.Dense, error) {
	pinv, err := PseudoInverse(basis)
	if err != nil {
		return nil, err
	}
	var p mat.Dense
	p.Mul(basis, pinv)
	return &p, nil
}

// SubspaceProjector returns Q·Qᵀ for a matrix Q with orthonormal columns.
func SubspaceProjector(q *mat.Dense) *mat.Dense {
	var p mat.Dense
	p.Mul(q, q.T())
	return &p
}

// RidgeProjector returns X(XᵀX + λI)⁻¹Xᵀ, the ridge-regularized projector
// onto col(X). The regularization keeps the Gram inverse well-posed for
// nearly collinear columns.
func RidgeProjector(x *mat.Dense, lambda float64) (*mat.Dense, error) {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}

	var gram mat.Dense
	gram.Mul(x.T(), x)
	for i := 0; i < cols; i++ {
		gram.Set(i, i, gram.At(i, i)+lambda)
	}

	var inv mat.Dense
	if err := inv.Inverse(&gram); err != nil {
		return nil, fmt.Errorf("linalg: gram matrix inversion: %w", err)
	}

	var tmp, p mat.Dense
	tmp.Mul(x, &inv)
	p.Mul(&tmp, x.T())
	return &p, nil
}

// FrobeniusNorm returns ||x||_F.
func FrobeniusNorm(x mat.Matrix) float64 {
	return mat.Norm(x, 2)
}

// TraceProduct returns trace(a·b) without forming the product matrix.
// a must be (m×n) and b (n×m).
func TraceProduct(a, b *mat.Dense) (float64, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br || ar != bc {
		return 0, fmt.Errorf("linalg: trace product undefined for (%d×%d)·(%d×%d)", ar, ac, br, bc)
	}

	var trace float64
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			trace += a.At(i, j) * b.At(j, i)
		}
	}
	return trace, nil
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
