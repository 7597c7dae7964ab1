// Copyright 2025 The camdesign Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package evaluation provides color-fidelity metrics and reporting for
// camera sensor designs.
//
// The package computes CIE Lab color differences (DeltaE variants),
// aggregate scores over patch sets, and assembles the results into
// renderable reports.
//
// Example:
//
//	report, err := evaluation.Evaluate(sensors, cmfs, patches, evaluation.Options{})
//	if err != nil {
//	    return err
//	}
//	out, _ := report.Render("text")
//	fmt.Print(string(out))
package evaluation

import (
	"github.com/camdesign-ml/camdesign/internal/evaluation"
	"github.com/camdesign-ml/camdesign/internal/spectral"
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// Lab is a CIE 1976 L*a*b* color.
type Lab = evaluation.Lab

// Summary holds aggregate scores over a set of per-patch metric values.
type Summary = evaluation.Summary

// Report assembles the computed metrics for one sensor design.
type Report = evaluation.Report

// Options controls the evaluation pipeline.
type Options = evaluation.Options

// ErrNoValues is returned when aggregating an empty slice.
var ErrNoValues = evaluation.ErrNoValues

// XYZToLab converts tristimulus values to CIE Lab under the given reference
// white (see the spectral package for standard white points).
func XYZToLab(x, y, z float64, white spectral.WhitePoint) Lab {
	return evaluation.XYZToLab(x, y, z, white)
}

// DeltaE76 computes the CIE 1976 color difference (Euclidean Lab distance).
func DeltaE76(a, b Lab) float64 {
	return evaluation.DeltaE76(a, b)
}

// DeltaE94 computes the CIE 1994 color difference with graphic-arts
// weighting. The reference color is the first argument.
func DeltaE94(ref, sample Lab) float64 {
	return evaluation.DeltaE94(ref, sample)
}

// DeltaE2000 computes the CIEDE2000 color difference.
func DeltaE2000(a, b Lab) float64 {
	return evaluation.DeltaE2000(a, b)
}

// Aggregate computes summary statistics (mean, max, median, p95) over values.
func Aggregate(values []float64) (Summary, error) {
	return evaluation.Aggregate(values)
}

// DeltaE76Batch computes CIE76 differences row-by-row over two (n, 3) Lab
// tensors.
func DeltaE76Batch[T tensor.Float, B tensor.Backend](ref, sample *tensor.Tensor[T, B]) ([]float64, error) {
	return evaluation.DeltaE76Batch(ref, sample)
}

// DeltaE94Batch computes CIE94 differences row-by-row over two (n, 3) Lab
// tensors.
func DeltaE94Batch[T tensor.Float, B tensor.Backend](ref, sample *tensor.Tensor[T, B]) ([]float64, error) {
	return evaluation.DeltaE94Batch(ref, sample)
}

// DeltaE2000Batch computes CIEDE2000 differences row-by-row over two (n, 3)
// Lab tensors.
func DeltaE2000Batch[T tensor.Float, B tensor.Backend](ref, sample *tensor.Tensor[T, B]) ([]float64, error) {
	return evaluation.DeltaE2000Batch(ref, sample)
}

// SimulateResponses integrates patch spectra against sensor sensitivities,
// producing one response row per patch. Both inputs share the wavelength
// dimension first.
func SimulateResponses[T tensor.Float, B tensor.Backend](spectra, sensitivities *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return evaluation.SimulateResponses(spectra, sensitivities)
}

// PatchXYZ computes reference XYZ tristimulus values for patch spectra under
// the given color matching functions, scaled so a perfect reflector has
// Y = 100.
func PatchXYZ[T tensor.Float, B tensor.Backend](spectra, cmfs *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return evaluation.PatchXYZ(spectra, cmfs)
}

// Evaluate scores a sensor design against a colorimetric reference,
// optionally with a patch reflectance set for DeltaE statistics. See the
// internal pipeline documentation for shapes.
func Evaluate[T tensor.Float, B tensor.Backend](sensors, cmfs, patches *tensor.Tensor[T, B], opts Options) (*Report, error) {
	return evaluation.Evaluate(sensors, cmfs, patches, opts)
}
