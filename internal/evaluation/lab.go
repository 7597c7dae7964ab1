// Package evaluation computes color-fidelity metrics for camera sensor
// designs: CIE Lab conversion, color difference (DeltaE variants), aggregate
// scores, and report assembly.
package evaluation

import (
	"math"

	"github.com/camdesign-ml/camdesign/internal/spectral"
)

// Lab is a CIE 1976 L*a*b* color.
type Lab struct {
	L float64 `json:"l" yaml:"l"`
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
}

// delta is 6/29, the knee of the Lab companding function.
const labDelta = 6.0 / 29.0

// labF is the CIE Lab companding function: cube root above (6/29)³, linear
// below to keep the slope finite at zero.
func labF(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

// XYZToLab converts tristimulus values to CIE Lab under the given reference
// white.
func XYZToLab(x, y, z float64, white spectral.WhitePoint) Lab {
	fx := labF(x / white.X)
	fy := labF(y / white.Y)
	fz := labF(z / white.Z)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}
