package angle

import "math"

// FromGradians returns an angle measured in gradians. A value of exactly 0
// yields the canonical zero angle.
func FromGradians(g float64) Angle {
	if g == 0 {
		return Zero()
	}

	return Angle{grad: some(g)}
}

// EnsureGradians returns an angle that carries a gradian value, deriving and
// caching it from a populated representation if needed. A DMS-only angle is
// first resolved to degrees.
func (a Angle) EnsureGradians() Angle {
	if a.grad.ok {
		return a
	}

	switch {
	case a.rad.ok:
		a.grad = some(a.rad.value * 200 / math.Pi)
	case a.deg.ok:
		a.grad = some(a.deg.value / 360 * 400)
	case a.dms.ok:
		a = a.EnsureDegrees()
		a.grad = some(a.deg.value / 360 * 400)
	default:
		panic("angle: EnsureGradians on an Angle with no populated representation")
	}

	return a
}

// Gradians returns the angle together with its value in gradians. The
// returned angle carries the gradian value from here on; keep using it
// instead of the receiver to get the cached conversion.
//
// Note that gradians have no fold of their own: Abs on a gradian-only angle
// pivots through degrees, see Abs.
func (a Angle) Gradians() (Angle, float64) {
	a = a.EnsureGradians()
	return a, a.grad.value
}
