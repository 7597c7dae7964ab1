package losses

import (
	"github.com/camdesign-ml/camdesign/internal/linalg"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// voraRidgeLambda regularizes the Gram inverses in VoraValueGeneral.
const voraRidgeLambda = 1e-6

// VoraValue computes the Vora-Value: the similarity of the subspaces spanned
// by sensors and cmfs, in [0, 1].
//
// It is the average of squared cosines of the principal angles between the
// two subspaces, computed via orthogonal projectors:
//
//	VV = trace(P_sensors · P_cmfs) / m, m = min(rank(sensors), rank(cmfs))
//
// A value of 1 means the sensor set spans the CMF subspace exactly. Both
// inputs are 2D tensors sharing their first dimension (wavelength samples).
func VoraValue[T tensor.Float, B tensor.Backend](sensors, cmfs *tensor.Tensor[T, B]) (float64, error) {
	s, c, err := densePair(sensors, cmfs)
	if err != nil {
		return 0, err
	}
	return VoraValueDense(s, c)
}

// VoraValueGeneral computes the Vora-Value through ridge-regularized
// projectors P = X(XᵀX + λI)⁻¹Xᵀ applied to both inputs, instead of
// orthonormal bases. Useful when the inputs are nearly rank-deficient and a
// hard rank cut is undesirable.
func VoraValueGeneral[T tensor.Float, B tensor.Backend](q, x *tensor.Tensor[T, B]) (float64, error) {
	qd, xd, err := densePair(q, x)
	if err != nil {
		return 0, err
	}

	pq, err := linalg.RidgeProjector(qd, voraRidgeLambda)
	if err != nil {
		return 0, err
	}
	px, err := linalg.RidgeProjector(xd, voraRidgeLambda)
	if err != nil {
		return 0, err
	}

	_, qCols := qd.Dims()
	_, xCols := xd.Dims()
	m := min(qCols, xCols)

	trace, err := linalg.TraceProduct(pq, px)
	if err != nil {
		return 0, err
	}
	return linalg.Clamp(trace/float64(m), 0, 1), nil
}

// Vora is the loss counterpart of VoraValue: 1 − VV, in [0, 1].
func Vora[T tensor.Float, B tensor.Backend](sensors, cmfs *tensor.Tensor[T, B]) (float64, error) {
	vv, err := VoraValue(sensors, cmfs)
	if err != nil {
		return 0, err
	}
	return 1 - vv, nil
}
