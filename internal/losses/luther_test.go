package losses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/internal/backend/cpu"
	"github.com/camdesign-ml/camdesign/internal/linalg"
	"github.com/camdesign-ml/camdesign/internal/spectral"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// cmfTensor returns the built-in CIE table as a (36, 3) tensor.
func cmfTensor(t *testing.T) *tensor.Tensor[float64, *cpu.CPUBackend] {
	t.Helper()
	return spectral.CMF[float64](cpu.New())
}

// linearCombination builds sensors = cmfs · M for a known mixing matrix, so
// the sensor set satisfies the Luther condition exactly.
func linearCombination(t *testing.T, cmfs *tensor.Tensor[float64, *cpu.CPUBackend]) *tensor.Tensor[float64, *cpu.CPUBackend] {
	t.Helper()
	mix, err := tensor.FromSlice([]float64{
		0.9, 0.1, 0.0,
		0.2, 0.7, 0.1,
		0.0, 0.3, 0.8,
	}, tensor.Shape{3, 3}, cmfs.Backend())
	require.NoError(t, err)
	return cmfs.MatMul(mix)
}

func TestLutherZeroForLinearTransform(t *testing.T) {
	cmfs := cmfTensor(t)
	sensors := linearCombination(t, cmfs)

	loss, err := Luther(sensors, cmfs, true)
	require.NoError(t, err)
	assert.InDelta(t, 0, loss, 1e-10)
}

func TestLutherPositiveOutsideSpan(t *testing.T) {
	backend := cpu.New()
	cmfs := spectral.CMF[float64](backend)

	// A flat spectral response does not lie in the CMF span.
	sensors := tensor.Ones[float64](tensor.Shape{spectral.NumWavelengths, 1}, backend)

	loss, err := Luther(sensors, cmfs, true)
	require.NoError(t, err)
	assert.Greater(t, loss, 0.01)
}

func TestLutherNormalizedScaleInvariant(t *testing.T) {
	backend := cpu.New()
	cmfs := spectral.CMF[float64](backend)
	sensors := tensor.Ones[float64](tensor.Shape{spectral.NumWavelengths, 2}, backend)
	for i := 0; i < spectral.NumWavelengths; i++ {
		sensors.Set(float64(i+1), i, 1)
	}

	base, err := Luther(sensors, cmfs, true)
	require.NoError(t, err)
	scaled, err := Luther(sensors.MulScalar(10), cmfs, true)
	require.NoError(t, err)
	assert.InDelta(t, base, scaled, 1e-9)

	// The raw loss scales with the input.
	rawBase, err := Luther(sensors, cmfs, false)
	require.NoError(t, err)
	rawScaled, err := Luther(sensors.MulScalar(10), cmfs, false)
	require.NoError(t, err)
	assert.InDelta(t, rawBase*10, rawScaled, 1e-7)
}

func TestLutherDimensionMismatch(t *testing.T) {
	backend := cpu.New()
	cmfs := spectral.CMF[float64](backend)
	sensors := tensor.Ones[float64](tensor.Shape{10, 3}, backend)

	_, err := Luther(sensors, cmfs, true)
	assert.Error(t, err)
}

func TestEstimateLutherMappingRecoversMix(t *testing.T) {
	cmfs := cmfTensor(t)
	sensors := linearCombination(t, cmfs)

	mapping, err := EstimateLutherMapping(cmfs, sensors)
	require.NoError(t, err)
	require.True(t, mapping.Shape().Equal(tensor.Shape{3, 3}))

	// cmfs · mapping reproduces the sensors.
	recon := cmfs.MatMul(mapping)
	diff := recon.Sub(sensors)
	assert.InDelta(t, 0, diff.FrobeniusNorm(), 1e-9)
}

func TestLutherMappingAtOptimumEqualsRegression(t *testing.T) {
	backend := cpu.New()
	q := spectral.CMF[float64](backend)
	x := tensor.Ones[float64](tensor.Shape{spectral.NumWavelengths, 2}, backend)
	for i := 0; i < spectral.NumWavelengths; i++ {
		x.Set(float64(i%7), i, 0)
	}

	regression, err := LutherRegression(q, x, false)
	require.NoError(t, err)

	// Recompute the optimal mapping by hand and evaluate the mapping loss.
	qd, err := linalg.FromTensor(q)
	require.NoError(t, err)
	xd, err := linalg.FromTensor(x)
	require.NoError(t, err)

	pinv, err := linalg.PseudoInverse(qd)
	require.NoError(t, err)
	var mStar mat.Dense
	mStar.Mul(pinv, xd)

	mTensor, err := linalg.ToTensor[float64](&mStar, backend)
	require.NoError(t, err)

	mapping, err := LutherMapping(q, mTensor, x, false)
	require.NoError(t, err)
	assert.InDelta(t, regression, mapping, 1e-9)
}

func TestLutherMappingShapeErrors(t *testing.T) {
	backend := cpu.New()
	q := tensor.Ones[float64](tensor.Shape{10, 3}, backend)
	m := tensor.Ones[float64](tensor.Shape{4, 2}, backend)
	v := tensor.Ones[float64](tensor.Shape{10, 2}, backend)

	_, err := LutherMapping(q, m, v, false)
	assert.Error(t, err)
}
