package angle

import "math"

// FromDMS returns an angle measured as a sexagesimal triple. Composite
// literals give the shorter forms: DMS{Deg: 77} and DMS{Deg: 77, Min: 50}
// zero-pad the omitted components.
//
// Unlike the scalar constructors, FromDMS never collapses an all-zero triple
// into the canonical zero angle: the triple stays the authoritative
// representation.
func FromDMS(v DMS) Angle {
	return Angle{dms: some(v)}
}

// EnsureDMS returns an angle that carries a sexagesimal triple, deriving
// and caching it from a populated representation if needed. Radian and
// gradian values are first resolved to degrees.
//
// The decimal degree value is split by truncation toward zero at each step,
// never by rounding: a negative degree value therefore yields a triple with
// negative components, whose sign convention is the caller's to handle.
func (a Angle) EnsureDMS() Angle {
	if a.dms.ok {
		return a
	}

	if !a.deg.ok {
		a = a.EnsureDegrees()
	}

	d := a.deg.value
	deg := math.Trunc(d)
	minutes := (d - deg) * 60
	m := math.Trunc(minutes)
	s := (minutes - m) * 60

	a.dms = some(DMS{Deg: int(deg), Min: int(m), Sec: s})
	return a
}

// Sexagesimal returns the angle together with its degrees, minutes, seconds
// triple. The returned angle carries the triple from here on; keep using it
// instead of the receiver to get the cached conversion.
func (a Angle) Sexagesimal() (Angle, DMS) {
	a = a.EnsureDMS()
	return a, a.dms.value
}

// absDMS folds the degree component into [0, 360] one full turn at a time.
// On the first step taken with a negative degree component the minute and
// second components are replaced by their complement (60−M, 60−S); the
// complement is applied once, no matter how many steps run.
func (a Angle) absDMS() Angle {
	v, _ := a.dms.Get()

	for v.Deg > 360 {
		v.Deg -= 360
	}

	complemented := false
	for v.Deg < 0 {
		v.Deg += 360
		if !complemented {
			v.Min = 60 - v.Min
			v.Sec = 60 - v.Sec
			complemented = true
		}
	}

	return FromDMS(v)
}
