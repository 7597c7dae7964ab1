package losses

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/internal/linalg"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// EstimateLutherMapping computes the least-squares linear map A such that
// cmfs @ A ≈ sensors, i.e. A = pinv(cmfs) @ sensors.
//
// cmfs has shape (n, 3): color matching functions sampled at n wavelengths.
// sensors has shape (n, m): sensor sensitivities for m channels. The result
// has shape (3, m).
func EstimateLutherMapping[T tensor.Float, B tensor.Backend](cmfs, sensors *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	c, s, err := densePair(cmfs, sensors)
	if err != nil {
		return nil, err
	}

	pinv, err := linalg.PseudoInverse(c)
	if err != nil {
		return nil, err
	}

	var a mat.Dense
	a.Mul(pinv, s)
	return linalg.ToTensor[T](&a, sensors.Backend())
}

// Luther computes the deviation from the Luther condition as a subspace
// distance: ||(I − P_cmfs) @ sensors||_F, where P_cmfs projects onto the
// column space of the CMFs.
//
// With normalize the value is divided by ||sensors||_F (eps-guarded), giving
// a scale-free loss in [0, +inf) where 0 means the sensor set satisfies the
// Luther condition exactly. Callers usually want normalize=true.
//
// sensors has shape (n, m) and cmfs shape (n, 3), sampled at the same n
// wavelengths.
func Luther[T tensor.Float, B tensor.Backend](sensors, cmfs *tensor.Tensor[T, B], normalize bool) (float64, error) {
	s, c, err := densePair(sensors, cmfs)
	if err != nil {
		return 0, err
	}
	return LutherDense(s, c, normalize)
}

// LutherMapping computes the mapping form of the Luther loss: ||Q·M − V||_F.
//
// It measures the fitting error when a linear mapping M transforms a basis Q
// into target responses V:
//   - Q (N×k): design/basis matrix sampled over N wavelengths or samples
//   - M (k×m): linear mapping from the basis to m target channels
//   - V (N×m): target responses to match
//
// With normalize the value is divided by ||V||_F (eps-guarded). At the
// optimal M* = pinv(Q)·V the loss equals ||(I − P_Q)·V||_F.
func LutherMapping[T tensor.Float, B tensor.Backend](q, m, v *tensor.Tensor[T, B], normalize bool) (float64, error) {
	qd, err := linalg.FromTensor(q)
	if err != nil {
		return 0, err
	}
	md, err := linalg.FromTensor(m)
	if err != nil {
		return 0, err
	}
	vd, err := linalg.FromTensor(v)
	if err != nil {
		return 0, err
	}
	return lutherMappingDense(qd, md, vd, normalize)
}

func lutherMappingDense(q, m, v *mat.Dense, normalize bool) (float64, error) {
	_, qc := q.Dims()
	mr, mc := m.Dims()
	qr, _ := q.Dims()
	vr, vc := v.Dims()

	if qc != mr {
		return 0, fmt.Errorf("losses: Q·M is not defined for Q (%d×%d) and M (%d×%d)", qr, qc, mr, mc)
	}
	if qr != vr || mc != vc {
		return 0, fmt.Errorf("losses: Q·M shape (%d×%d) does not match V shape (%d×%d)", qr, mc, vr, vc)
	}

	var diff mat.Dense
	diff.Mul(q, m)
	diff.Sub(&diff, v)

	num := linalg.FrobeniusNorm(&diff)
	if !normalize {
		return num, nil
	}
	denom := linalg.FrobeniusNorm(v)
	return num / (denom + linalg.Epsilon), nil
}

// LutherRegression computes the regression form of the Luther loss: the
// least-squares error ||Q·M* − X||_F at M* = pinv(Q)·X. This equals the
// Frobenius norm of (P_Q − I)·X where P_Q projects onto span(Q).
func LutherRegression[T tensor.Float, B tensor.Backend](q, x *tensor.Tensor[T, B], normalize bool) (float64, error) {
	qd, xd, err := densePair(q, x)
	if err != nil {
		return 0, err
	}

	pinv, err := linalg.PseudoInverse(qd)
	if err != nil {
		return 0, err
	}

	var mHat mat.Dense
	mHat.Mul(pinv, xd)
	return lutherMappingDense(qd, &mHat, xd, normalize)
}

// densePair converts two tensors that must share their first dimension
// (wavelength samples) into dense matrices.
func densePair[T tensor.Float, B tensor.Backend](a, b *tensor.Tensor[T, B]) (*mat.Dense, *mat.Dense, error) {
	ad, err := linalg.FromTensor(a)
	if err != nil {
		return nil, nil, err
	}
	bd, err := linalg.FromTensor(b)
	if err != nil {
		return nil, nil, err
	}

	ar, _ := ad.Dims()
	br, _ := bd.Dims()
	if ar != br {
		return nil, nil, fmt.Errorf("losses: inputs must share the first dimension (wavelength samples), got %d vs %d", ar, br)
	}
	return ad, bd, nil
}
