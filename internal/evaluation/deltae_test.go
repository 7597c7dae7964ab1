package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camdesign-ml/camdesign/internal/spectral"
)

func TestXYZToLabWhite(t *testing.T) {
	// The reference white maps to L=100, a=b=0.
	lab := XYZToLab(spectral.D65.X, spectral.D65.Y, spectral.D65.Z, spectral.D65)
	assert.InDelta(t, 100, lab.L, 1e-10)
	assert.InDelta(t, 0, lab.A, 1e-10)
	assert.InDelta(t, 0, lab.B, 1e-10)
}

func TestXYZToLabBlack(t *testing.T) {
	lab := XYZToLab(0, 0, 0, spectral.D65)
	assert.InDelta(t, 0, lab.L, 1e-10)
	assert.InDelta(t, 0, lab.A, 1e-10)
	assert.InDelta(t, 0, lab.B, 1e-10)
}

func TestDeltaE76(t *testing.T) {
	a := Lab{L: 50, A: 10, B: -10}
	assert.InDelta(t, 0, DeltaE76(a, a), 1e-12)

	b := Lab{L: 53, A: 14, B: -10}
	assert.InDelta(t, 5, DeltaE76(a, b), 1e-12)
}

func TestDeltaE94Identical(t *testing.T) {
	a := Lab{L: 42, A: 7, B: -3}
	assert.InDelta(t, 0, DeltaE94(a, a), 1e-12)
}

func TestDeltaE94LessThan76ForChromatic(t *testing.T) {
	// The chroma weighting shrinks chromatic differences.
	ref := Lab{L: 50, A: 60, B: 30}
	sample := Lab{L: 50, A: 65, B: 35}
	assert.Less(t, DeltaE94(ref, sample), DeltaE76(ref, sample))
}

func TestDeltaE2000Identical(t *testing.T) {
	a := Lab{L: 30, A: -20, B: 40}
	assert.InDelta(t, 0, DeltaE2000(a, a), 1e-12)
}

func TestDeltaE2000ReferencePairs(t *testing.T) {
	// Pairs and expected values from Sharma, Wu & Dalal (2005).
	tests := []struct {
		lab1, lab2 Lab
		want       float64
	}{
		{Lab{50, 2.6772, -79.7751}, Lab{50, 0, -82.7485}, 2.0425},
		{Lab{50, 3.1571, -77.2803}, Lab{50, 0, -82.7485}, 2.8615},
		{Lab{50, 2.8361, -74.0200}, Lab{50, 0, -82.7485}, 3.4412},
		{Lab{50, 2.5, 0}, Lab{50, 0, -2.5}, 4.3065},
		{Lab{50, 2.5, 0}, Lab{73, 25, -18}, 27.1492},
		{Lab{50, 2.5, 0}, Lab{50, 3.2592, 0.335}, 1.0000},
	}

	for _, tt := range tests {
		got := DeltaE2000(tt.lab1, tt.lab2)
		assert.InDelta(t, tt.want, got, 1e-4, "DeltaE2000(%v, %v)", tt.lab1, tt.lab2)
	}
}

func TestDeltaE2000Symmetric(t *testing.T) {
	a := Lab{L: 50, A: 2.5, B: 0}
	b := Lab{L: 61, A: -5, B: 29}
	assert.InDelta(t, DeltaE2000(a, b), DeltaE2000(b, a), 1e-12)
}
