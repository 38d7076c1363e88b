package angle

import "math"

// FromRadians returns an angle measured in radians. A value of exactly 0
// yields the canonical zero angle.
func FromRadians(r float64) Angle {
	if r == 0 {
		return Zero()
	}

	return Angle{rad: some(r)}
}

// EnsureRadians returns an angle that carries a radian value, deriving and
// caching it from a populated representation if needed. A DMS-only angle is
// first resolved to degrees; degrees and radians are the two pivot
// representations everything else converts through.
func (a Angle) EnsureRadians() Angle {
	if a.rad.ok {
		return a
	}

	switch {
	case a.deg.ok:
		a.rad = some(a.deg.value * math.Pi / 180)
	case a.grad.ok:
		a.rad = some(a.grad.value * math.Pi / 200)
	case a.dms.ok:
		a = a.EnsureDegrees()
		a.rad = some(a.deg.value * math.Pi / 180)
	default:
		panic("angle: EnsureRadians on an Angle with no populated representation")
	}

	return a
}

// Radians returns the angle together with its value in radians. The
// returned angle carries the radian value from here on; keep using it
// instead of the receiver to get the cached conversion.
func (a Angle) Radians() (Angle, float64) {
	a = a.EnsureRadians()
	return a, a.rad.value
}

// absRadians folds the radian value into [0, 2π] one full turn at a time.
func (a Angle) absRadians() Angle {
	a, r := a.Radians()

	for r > 2*math.Pi {
		r -= 2 * math.Pi
	}
	for r < 0 {
		r += 2 * math.Pi
	}

	return FromRadians(r)
}
