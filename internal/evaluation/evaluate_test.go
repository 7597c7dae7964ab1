package evaluation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camdesign-ml/camdesign/internal/backend/cpu"
	"github.com/camdesign-ml/camdesign/internal/spectral"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// testPatches builds smooth synthetic reflectances in [0, 1].
func testPatches(t *testing.T, backend *cpu.CPUBackend, count int) *tensor.Tensor[float64, *cpu.CPUBackend] {
	t.Helper()
	n := spectral.NumWavelengths
	data := make([]float64, 0, n*count)
	for i := 0; i < n; i++ {
		for p := 0; p < count; p++ {
			phase := 2 * math.Pi * float64(p) / float64(count)
			data = append(data, 0.5+0.4*math.Cos(2*math.Pi*float64(i)/float64(n)+phase))
		}
	}
	patches, err := tensor.FromSlice(data, tensor.Shape{n, count}, backend)
	require.NoError(t, err)
	return patches
}

func TestEvaluatePerfectSensors(t *testing.T) {
	backend := cpu.New()
	cmfs := spectral.CMF[float64](backend)

	// Sensors identical to the observer: perfect colorimetry.
	report, err := Evaluate(cmfs, cmfs, testPatches(t, backend, 10), Options{})
	require.NoError(t, err)

	assert.InDelta(t, 1, report.VoraValue, 1e-10)
	assert.InDelta(t, 0, report.VoraLoss, 1e-10)
	assert.InDelta(t, 0, report.LutherLoss, 1e-10)
	assert.Equal(t, spectral.NumWavelengths, report.Wavelengths)
	assert.Equal(t, 3, report.Channels)
	assert.Equal(t, 10, report.Patches)

	require.NotNil(t, report.DeltaE76)
	assert.InDelta(t, 0, report.DeltaE76.Max, 1e-6)
	require.NotNil(t, report.DeltaE2000)
	assert.InDelta(t, 0, report.DeltaE2000.Max, 1e-6)
}

func TestEvaluateWithoutPatches(t *testing.T) {
	backend := cpu.New()
	cmfs := spectral.CMF[float64](backend)

	report, err := Evaluate(cmfs, cmfs, nil, Options{})
	require.NoError(t, err)

	assert.Nil(t, report.DeltaE76)
	assert.Nil(t, report.DeltaE94)
	assert.Nil(t, report.DeltaE2000)
	assert.Zero(t, report.Patches)
}

func TestEvaluateImperfectSensorsScoreWorse(t *testing.T) {
	backend := cpu.New()
	cmfs := spectral.CMF[float64](backend)

	// Narrowband Gaussians approximate but do not span the observer.
	n := spectral.NumWavelengths
	w := spectral.Wavelengths()
	data := make([]float64, 0, n*3)
	centers := []float64{450, 550, 610}
	for i := 0; i < n; i++ {
		for _, c := range centers {
			d := (w[i] - c) / 15
			data = append(data, math.Exp(-0.5*d*d))
		}
	}
	sensors, err := tensor.FromSlice(data, tensor.Shape{n, 3}, backend)
	require.NoError(t, err)

	report, err := Evaluate(sensors, cmfs, testPatches(t, backend, 12), Options{})
	require.NoError(t, err)

	assert.Less(t, report.VoraValue, 1.0)
	assert.Greater(t, report.LutherLoss, 0.0)
	require.NotNil(t, report.DeltaE2000)
	assert.Greater(t, report.DeltaE2000.Mean, 0.0)
	assert.GreaterOrEqual(t, report.DeltaE2000.Max, report.DeltaE2000.Mean)
}

func TestEvaluateGridMismatch(t *testing.T) {
	backend := cpu.New()
	cmfs := spectral.CMF[float64](backend)
	sensors := tensor.Ones[float64](tensor.Shape{10, 3}, backend)

	_, err := Evaluate(sensors, cmfs, nil, Options{})
	assert.Error(t, err)
}

func TestEvaluatePatchGridMismatch(t *testing.T) {
	backend := cpu.New()
	cmfs := spectral.CMF[float64](backend)
	patches := tensor.Ones[float64](tensor.Shape{10, 4}, backend)

	_, err := Evaluate(cmfs, cmfs, patches, Options{})
	assert.Error(t, err)
}
