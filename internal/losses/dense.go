package losses

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/internal/linalg"
)

// LutherDense is the dense-matrix form of Luther, used by optimization
// objectives that already hold sensitivities as a *mat.Dense.
func LutherDense(sensors, cmfs *mat.Dense, normalize bool) (float64, error) {
	if err := checkSharedRows(sensors, cmfs); err != nil {
		return 0, err
	}

	p, err := linalg.Projector(cmfs)
	if err != nil {
		return 0, err
	}

	var residual mat.Dense
	residual.Mul(p, sensors)
	residual.Sub(sensors, &residual)

	num := linalg.FrobeniusNorm(&residual)
	if !normalize {
		return num, nil
	}
	denom := linalg.FrobeniusNorm(sensors)
	return num / (denom + linalg.Epsilon), nil
}

// VoraValueDense is the dense-matrix form of VoraValue.
func VoraValueDense(sensors, cmfs *mat.Dense) (float64, error) {
	if err := checkSharedRows(sensors, cmfs); err != nil {
		return 0, err
	}

	qs, err := linalg.OrthonormalBasis(sensors)
	if err != nil {
		return 0, err
	}
	qc, err := linalg.OrthonormalBasis(cmfs)
	if err != nil {
		return 0, err
	}

	ps := linalg.SubspaceProjector(qs)
	pc := linalg.SubspaceProjector(qc)

	_, sRank := qs.Dims()
	_, cRank := qc.Dims()
	m := min(sRank, cRank)

	trace, err := linalg.TraceProduct(ps, pc)
	if err != nil {
		return 0, err
	}
	return linalg.Clamp(trace/float64(m), 0, 1), nil
}

// VoraDense is the dense-matrix form of Vora.
func VoraDense(sensors, cmfs *mat.Dense) (float64, error) {
	vv, err := VoraValueDense(sensors, cmfs)
	if err != nil {
		return 0, err
	}
	return 1 - vv, nil
}

func checkSharedRows(a, b *mat.Dense) error {
	ar, _ := a.Dims()
	br, _ := b.Dims()
	if ar != br {
		return fmt.Errorf("losses: inputs must share the first dimension (wavelength samples), got %d vs %d", ar, br)
	}
	return nil
}
