package evaluation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/internal/linalg"
	"github.com/camdesign-ml/camdesign/internal/losses"
	"github.com/camdesign-ml/camdesign/internal/spectral"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// Options controls the evaluation pipeline.
type Options struct {
	// White is the reference white for Lab conversion. The zero value
	// selects the equal-energy illuminant, matching the unweighted spectral
	// integration used for patch XYZ.
	White spectral.WhitePoint
}

// Evaluate scores a sensor design against a colorimetric reference.
//
// sensors has shape (n, m) and cmfs shape (n, 3), sampled at the same n
// wavelengths. patches is optional; when non-nil it has shape (n, p) with
// one reflectance spectrum per column, and the report gains DeltaE
// statistics computed after the least-squares Luther correction from camera
// responses to reference XYZ.
func Evaluate[T tensor.Float, B tensor.Backend](sensors, cmfs, patches *tensor.Tensor[T, B], opts Options) (*Report, error) {
	white := opts.White
	if white == (spectral.WhitePoint{}) {
		white = spectral.E
	}

	vora, err := losses.VoraValue(sensors, cmfs)
	if err != nil {
		return nil, fmt.Errorf("evaluate: vora value: %w", err)
	}
	lutherNorm, err := losses.Luther(sensors, cmfs, true)
	if err != nil {
		return nil, fmt.Errorf("evaluate: luther loss: %w", err)
	}
	lutherRaw, err := losses.Luther(sensors, cmfs, false)
	if err != nil {
		return nil, fmt.Errorf("evaluate: luther loss: %w", err)
	}

	report := &Report{
		VoraValue:     vora,
		VoraLoss:      1 - vora,
		LutherLoss:    lutherNorm,
		LutherLossRaw: lutherRaw,
		Wavelengths:   sensors.Shape()[0],
		Channels:      sensors.Shape()[1],
	}

	if patches == nil {
		return report, nil
	}

	if err := evaluatePatches(report, sensors, cmfs, patches, white); err != nil {
		return nil, err
	}
	return report, nil
}

// evaluatePatches simulates camera responses for the patch spectra, maps them
// to XYZ through the least-squares Luther correction, and fills the DeltaE
// summaries.
func evaluatePatches[T tensor.Float, B tensor.Backend](report *Report, sensors, cmfs, patches *tensor.Tensor[T, B], white spectral.WhitePoint) error {
	sd, err := linalg.FromTensor(sensors)
	if err != nil {
		return fmt.Errorf("evaluate: sensors: %w", err)
	}
	cd, err := linalg.FromTensor(cmfs)
	if err != nil {
		return fmt.Errorf("evaluate: cmfs: %w", err)
	}
	pd, err := linalg.FromTensor(patches)
	if err != nil {
		return fmt.Errorf("evaluate: patches: %w", err)
	}

	n, _ := sd.Dims()
	pr, numPatches := pd.Dims()
	if pr != n {
		return fmt.Errorf("evaluate: patches sampled at %d wavelengths, sensors at %d", pr, n)
	}

	// Reference XYZ per patch, scaled so a perfect reflector has Y = 100.
	ref, err := patchXYZDense(pd, cd)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	// Camera responses and the least-squares correction onto reference XYZ.
	var resp mat.Dense
	resp.Mul(pd.T(), sd)

	pinv, err := linalg.PseudoInverse(&resp)
	if err != nil {
		return fmt.Errorf("evaluate: response correction: %w", err)
	}
	var corr, estimated mat.Dense
	corr.Mul(pinv, ref)
	estimated.Mul(&resp, &corr)

	de76 := make([]float64, numPatches)
	de94 := make([]float64, numPatches)
	de2000 := make([]float64, numPatches)
	for i := 0; i < numPatches; i++ {
		want := XYZToLab(ref.At(i, 0), ref.At(i, 1), ref.At(i, 2), white)
		got := XYZToLab(estimated.At(i, 0), estimated.At(i, 1), estimated.At(i, 2), white)
		de76[i] = DeltaE76(want, got)
		de94[i] = DeltaE94(want, got)
		de2000[i] = DeltaE2000(want, got)
	}

	s76, err := Aggregate(de76)
	if err != nil {
		return err
	}
	s94, err := Aggregate(de94)
	if err != nil {
		return err
	}
	s2000, err := Aggregate(de2000)
	if err != nil {
		return err
	}

	report.Patches = numPatches
	report.DeltaE76 = &s76
	report.DeltaE94 = &s94
	report.DeltaE2000 = &s2000
	return nil
}
