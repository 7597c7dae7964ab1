// Package spectral provides reference colorimetric data and spectral file
// loading: the CIE 1931 standard observer, white points, and CSV ingestion
// for sensor sensitivities and patch reflectances.
package spectral

import (
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// Wavelength grid for the built-in observer data: 380–730 nm at 10 nm steps.
const (
	WavelengthStart = 380.0
	WavelengthEnd   = 730.0
	WavelengthStep  = 10.0
	NumWavelengths  = 36
)

// cie1931XYZ holds the CIE 1931 2° standard observer color matching
// functions (x̄, ȳ, z̄) sampled on the built-in wavelength grid.
var cie1931XYZ = [NumWavelengths][3]float64{
	{0.001368, 0.000039, 0.006450}, // 380 nm
	{0.004243, 0.000120, 0.020050}, // 390 nm
	{0.014310, 0.000396, 0.067850}, // 400 nm
	{0.043510, 0.001210, 0.207400}, // 410 nm
	{0.134380, 0.004000, 0.645600}, // 420 nm
	{0.283900, 0.011600, 1.385600}, // 430 nm
	{0.348280, 0.023000, 1.747060}, // 440 nm
	{0.336200, 0.038000, 1.772110}, // 450 nm
	{0.290800, 0.060000, 1.669200}, // 460 nm
	{0.195360, 0.090980, 1.287640}, // 470 nm
	{0.095640, 0.139020, 0.812950}, // 480 nm
	{0.032010, 0.208020, 0.465180}, // 490 nm
	{0.004900, 0.323000, 0.272000}, // 500 nm
	{0.009300, 0.503000, 0.158200}, // 510 nm
	{0.063270, 0.710000, 0.078250}, // 520 nm
	{0.165500, 0.862000, 0.042160}, // 530 nm
	{0.290400, 0.954000, 0.020300}, // 540 nm
	{0.433450, 0.994950, 0.008750}, // 550 nm
	{0.594500, 0.995000, 0.003900}, // 560 nm
	{0.762100, 0.952000, 0.002100}, // 570 nm
	{0.916300, 0.870000, 0.001650}, // 580 nm
	{1.026300, 0.757000, 0.001100}, // 590 nm
	{1.062200, 0.631000, 0.000800}, // 600 nm
	{1.002600, 0.503000, 0.000340}, // 610 nm
	{0.854450, 0.381000, 0.000190}, // 620 nm
	{0.642400, 0.265000, 0.000050}, // 630 nm
	{0.447900, 0.175000, 0.000020}, // 640 nm
	{0.283500, 0.107000, 0.000000}, // 650 nm
	{0.164900, 0.061000, 0.000000}, // 660 nm
	{0.087400, 0.032000, 0.000000}, // 670 nm
	{0.046770, 0.017000, 0.000000}, // 680 nm
	{0.022700, 0.008210, 0.000000}, // 690 nm
	{0.011359, 0.004102, 0.000000}, // 700 nm
	{0.005790, 0.002091, 0.000000}, // 710 nm
	{0.002899, 0.001047, 0.000000}, // 720 nm
	{0.001440, 0.000520, 0.000000}, // 730 nm
}

// Wavelengths returns the built-in wavelength grid in nanometers.
func Wavelengths() []float64 {
	w := make([]float64, NumWavelengths)
	for i := range w {
		w[i] = WavelengthStart + float64(i)*WavelengthStep
	}
	return w
}

// CMF returns the CIE 1931 2° standard observer color matching functions as
// an (NumWavelengths, 3) tensor.
func CMF[T tensor.Float, B tensor.Backend](b B) *tensor.Tensor[T, B] {
	data := make([]T, NumWavelengths*3)
	for i, row := range cie1931XYZ {
		data[i*3+0] = T(row[0])
		data[i*3+1] = T(row[1])
		data[i*3+2] = T(row[2])
	}
	t, err := tensor.FromSlice(data, tensor.Shape{NumWavelengths, 3}, b)
	if err != nil {
		panic(err) // table and shape are compile-time constants
	}
	return t
}

// CMFData returns the CIE 1931 2° standard observer color matching
// functions as wavelength-indexed spectral data.
func CMFData() *Data {
	d := &Data{
		Wavelengths: Wavelengths(),
		Values:      make([][]float64, NumWavelengths),
	}
	for i, row := range cie1931XYZ {
		d.Values[i] = []float64{row[0], row[1], row[2]}
	}
	return d
}

// WhitePoint holds reference white tristimulus values with Y normalized
// to 100.
type WhitePoint struct {
	X, Y, Z float64
}

// D65 is the CIE standard illuminant D65 white point (2° observer).
var D65 = WhitePoint{X: 95.047, Y: 100.0, Z: 108.883}

// E is the equal-energy illuminant white point.
var E = WhitePoint{X: 100.0, Y: 100.0, Z: 100.0}
