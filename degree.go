package angle

import "math"

// FromDegrees returns an angle measured in decimal degrees. A value of
// exactly 0 yields the canonical zero angle.
func FromDegrees(d float64) Angle {
	if d == 0 {
		return Zero()
	}

	return Angle{deg: some(d)}
}

// EnsureDegrees returns an angle that carries a decimal degree value,
// deriving and caching it from a populated representation if needed.
func (a Angle) EnsureDegrees() Angle {
	if a.deg.ok {
		return a
	}

	switch {
	case a.rad.ok:
		a.deg = some(a.rad.value * 180 / math.Pi)
	case a.grad.ok:
		a.deg = some(a.grad.value / 400 * 360)
	case a.dms.ok:
		v := a.dms.value
		a.deg = some(float64(v.Deg) + float64(v.Min)/60 + v.Sec/3600)
	default:
		panic("angle: EnsureDegrees on an Angle with no populated representation")
	}

	return a
}

// Degrees returns the angle together with its value in decimal degrees.
// The returned angle carries the degree value from here on; keep using it
// instead of the receiver to get the cached conversion.
func (a Angle) Degrees() (Angle, float64) {
	a = a.EnsureDegrees()
	return a, a.deg.value
}

// absDegrees folds the degree value into [0, 360] one full turn at a time.
func (a Angle) absDegrees() Angle {
	a, d := a.Degrees()

	for d > 360 {
		d -= 360
	}
	for d < 0 {
		d += 360
	}

	return FromDegrees(d)
}
