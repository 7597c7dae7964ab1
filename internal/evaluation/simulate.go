package evaluation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/internal/linalg"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// SimulateResponses integrates patch spectra against sensor sensitivities:
// responses = spectraᵀ · sensitivities, shape (patches, channels). Both
// inputs are 2D tensors sampled at the same n wavelengths.
func SimulateResponses[T tensor.Float, B tensor.Backend](spectra, sensitivities *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	pd, sd, err := sampledPair(spectra, sensitivities)
	if err != nil {
		return nil, err
	}

	var resp mat.Dense
	resp.Mul(pd.T(), sd)
	return linalg.ToTensor[T](&resp, spectra.Backend())
}

// PatchXYZ computes reference tristimulus values for patch spectra under the
// given observer: XYZ = spectraᵀ · cmfs, scaled so a perfect reflector has
// Y = 100. Result shape is (patches, 3).
func PatchXYZ[T tensor.Float, B tensor.Backend](spectra, cmfs *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	pd, cd, err := sampledPair(spectra, cmfs)
	if err != nil {
		return nil, err
	}

	xyz, err := patchXYZDense(pd, cd)
	if err != nil {
		return nil, err
	}
	return linalg.ToTensor[T](xyz, spectra.Backend())
}

func patchXYZDense(pd, cd *mat.Dense) (*mat.Dense, error) {
	n, cols := cd.Dims()
	if cols != 3 {
		return nil, fmt.Errorf("evaluation: cmfs must have 3 channels, got %d", cols)
	}

	var ySum float64
	for i := 0; i < n; i++ {
		ySum += cd.At(i, 1)
	}
	if ySum == 0 {
		return nil, fmt.Errorf("evaluation: cmfs have zero luminance column")
	}

	var xyz mat.Dense
	xyz.Mul(pd.T(), cd)
	xyz.Scale(100/ySum, &xyz)
	return &xyz, nil
}

func sampledPair[T tensor.Float, B tensor.Backend](a, b *tensor.Tensor[T, B]) (*mat.Dense, *mat.Dense, error) {
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
		return nil, nil, fmt.Errorf("evaluation: inputs sampled at %d vs %d wavelengths", ar, br)
	}
	return ad, bd, nil
}
