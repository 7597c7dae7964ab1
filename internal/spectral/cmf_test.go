package spectral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camdesign-ml/camdesign/internal/backend/cpu"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

func TestWavelengths(t *testing.T) {
	w := Wavelengths()
	require.Len(t, w, NumWavelengths)
	assert.Equal(t, float64(WavelengthStart), w[0])
	assert.Equal(t, float64(WavelengthEnd), w[len(w)-1])
	for i := 1; i < len(w); i++ {
		assert.Equal(t, float64(WavelengthStep), w[i]-w[i-1])
	}
}

func TestCMFShape(t *testing.T) {
	cmfs := CMF[float64](cpu.New())
	require.True(t, cmfs.Shape().Equal(tensor.Shape{NumWavelengths, 3}))

	// All entries are non-negative.
	for _, v := range cmfs.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestCMFLuminancePeak(t *testing.T) {
	cmfs := CMF[float64](cpu.New())
	w := Wavelengths()

	// The photopic luminosity function peaks around 555 nm.
	peakIdx := 0
	for i := 0; i < NumWavelengths; i++ {
		if cmfs.At(i, 1) > cmfs.At(peakIdx, 1) {
			peakIdx = i
		}
	}
	assert.InDelta(t, 555, w[peakIdx], 10)
}

func TestCMFDataMatchesTensor(t *testing.T) {
	d := CMFData()
	cmfs := CMF[float64](cpu.New())

	require.Len(t, d.Values, NumWavelengths)
	assert.Equal(t, Wavelengths(), d.Wavelengths)
	for i := 0; i < NumWavelengths; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, cmfs.At(i, j), d.Values[i][j])
		}
	}
}

func TestDataTensor(t *testing.T) {
	d := &Data{
		Wavelengths: []float64{400, 410},
		Values:      [][]float64{{1, 2}, {3, 4}},
	}

	tt, err := Tensor[float64](d, cpu.New())
	require.NoError(t, err)
	require.True(t, tt.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{1, 2, 3, 4}, tt.Data())
}

func TestDataTensorEmpty(t *testing.T) {
	_, err := Tensor[float64](&Data{}, cpu.New())
	assert.Error(t, err)
}
