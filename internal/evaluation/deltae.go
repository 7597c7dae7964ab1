package evaluation

import "math"

// DeltaE76 computes the CIE 1976 color difference: Euclidean distance
// in Lab space.
func DeltaE76(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE94 computes the CIE 1994 color difference with graphic-arts
// weighting (kL = kC = kH = 1, K1 = 0.045, K2 = 0.015). The reference color
// is the first argument.
func DeltaE94(ref, sample Lab) float64 {
	c1 := math.Hypot(ref.A, ref.B)
	c2 := math.Hypot(sample.A, sample.B)

	dl := ref.L - sample.L
	dc := c1 - c2
	da := ref.A - sample.A
	db := ref.B - sample.B

	// ΔH² = Δa² + Δb² − ΔC², clamped against rounding.
	dh2 := da*da + db*db - dc*dc
	if dh2 < 0 {
		dh2 = 0
	}

	sc := 1 + 0.045*c1
	sh := 1 + 0.015*c1

	return math.Sqrt(dl*dl + (dc/sc)*(dc/sc) + dh2/(sh*sh))
}

// DeltaE2000 computes the CIEDE2000 color difference between two Lab colors,
// with the standard kL = kC = kH = 1 weights. The formula follows
// Sharma, Wu & Dalal (2005).
func DeltaE2000(lab1, lab2 Lab) float64 {
	const pow25to7 = 6103515625.0 // 25^7

	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cBar := (c1 + c2) / 2

	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25to7)))

	a1p := (1 + g) * lab1.A
	a2p := (1 + g) * lab2.A
	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)

	h1p := hueAngle(lab1.B, a1p)
	h2p := hueAngle(lab2.B, a2p)

	dLp := lab2.L - lab1.L
	dCp := c2p - c1p

	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	default:
		dhp = h2p - h1p + 360
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp)/2)

	lBar := (lab1.L + lab2.L) / 2
	cBarP := (c1p + c2p) / 2

	var hBar float64
	switch {
	case c1p*c2p == 0:
		hBar = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBar = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBar = (h1p + h2p + 360) / 2
	default:
		hBar = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(hBar-30)) +
		0.24*math.Cos(radians(2*hBar)) +
		0.32*math.Cos(radians(3*hBar+6)) -
		0.20*math.Cos(radians(4*hBar-63))

	dTheta := 30 * math.Exp(-((hBar-275)/25)*((hBar-275)/25))
	cBarP7 := math.Pow(cBarP, 7)
	rc := 2 * math.Sqrt(cBarP7/(cBarP7+pow25to7))
	rt := -math.Sin(radians(2*dTheta)) * rc

	lm50sq := (lBar - 50) * (lBar - 50)
	sl := 1 + 0.015*lm50sq/math.Sqrt(20+lm50sq)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t

	lTerm := dLp / sl
	cTerm := dCp / sc
	hTerm := dHp / sh

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm)
}

// hueAngle returns atan2(b, a) in degrees within [0, 360).
func hueAngle(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	deg := math.Atan2(b, a) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
