// Copyright 2025 The camdesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package spectral provides reference colorimetric data and spectral file
// loading: the CIE 1931 2° standard observer, standard white points, and
// CSV ingestion for wavelength-indexed data (sensor sensitivities, patch
// reflectances, color matching functions).
package spectral

import (
	"io"

	"github.com/camdesign-ml/camdesign/internal/spectral"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// Built-in wavelength grid: 380–730 nm at 10 nm steps.
const (
	WavelengthStart = spectral.WavelengthStart
	WavelengthEnd   = spectral.WavelengthEnd
	WavelengthStep  = spectral.WavelengthStep
	NumWavelengths  = spectral.NumWavelengths
)

// Data holds wavelength-indexed spectral samples.
type Data = spectral.Data

// WhitePoint holds reference white tristimulus values (Y normalized to 100).
type WhitePoint = spectral.WhitePoint

// Standard white points.
var (
	D65 = spectral.D65
	E   = spectral.E
)

// Wavelengths returns the built-in wavelength grid in nanometers.
func Wavelengths() []float64 {
	return spectral.Wavelengths()
}

// CMF returns the CIE 1931 2° standard observer color matching functions as
// an (NumWavelengths, 3) tensor.
func CMF[T tensor.Float, B tensor.Backend](b B) *tensor.Tensor[T, B] {
	return spectral.CMF[T, B](b)
}

// CMFData returns the CIE 1931 2° standard observer color matching
// functions as wavelength-indexed spectral data.
func CMFData() *Data {
	return spectral.CMFData()
}

// LoadCSV reads wavelength-indexed spectral data from a CSV file. The first
// column is the wavelength in nanometers; remaining columns are channel
// values. A non-numeric first row is treated as a header.
func LoadCSV(path string) (*Data, error) {
	return spectral.LoadCSV(path)
}

// ReadCSV parses wavelength-indexed spectral data from r.
func ReadCSV(r io.Reader) (*Data, error) {
	return spectral.ReadCSV(r)
}

// Tensor converts spectral values into an (n, channels) tensor.
func Tensor[T tensor.Float, B tensor.Backend](d *Data, b B) (*tensor.Tensor[T, B], error) {
	return spectral.Tensor[T, B](d, b)
}

// WriteCSV writes wavelength-indexed spectral data to w in the format
// ReadCSV accepts.
func WriteCSV(w io.Writer, d *Data) error {
	return spectral.WriteCSV(w, d)
}

// SaveCSV writes wavelength-indexed spectral data to a CSV file.
func SaveCSV(path string, d *Data) error {
	return spectral.SaveCSV(path, d)
}

// ValidateGrid checks that two spectral data sets share a wavelength grid.
func ValidateGrid(a, b *Data) error {
	return spectral.ValidateGrid(a, b)
}
