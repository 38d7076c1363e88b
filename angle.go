// Package angle provides a unit-agnostic angle value.
//
// An Angle is constructed from degrees, radians, gradians or a sexagesimal
// degrees/minutes/seconds triple and can be read back in any of those units.
// A conversion runs at most once per unit: the first read derives the value
// from an already populated representation and caches it on the returned
// Angle. Angles are small copy-by-value structs and every operation is a
// functional update returning a new value, so independent Angles are safe to
// use from multiple goroutines without locking.
package angle

// opt is a value that may be absent.
type opt[T any] struct {
	value T
	ok    bool
}

func some[T any](value T) opt[T] {
	return opt[T]{value: value, ok: true}
}

func (o opt[T]) Get() (T, bool) {
	return o.value, o.ok
}

// DMS is a sexagesimal degrees, minutes, seconds triple.
//
// Raw triples are not required to keep Min and Sec inside [0, 60); a parser
// or caller may hand over irregular or negative components. Only Abs folds a
// triple into its principal range.
type DMS struct {
	Deg, Min int
	Sec      float64
}

// Angle is an angle value holding one authoritative representation plus a
// cache of conversions derived from it.
//
// The zero value of Angle carries no representation at all and is not a
// valid angle; use Zero or one of the From* constructors.
type Angle struct {
	rad  opt[float64]
	deg  opt[float64]
	grad opt[float64]
	dms  opt[DMS]
}

// Zero returns the canonical zero angle. It is unit independent and carries
// a zero degree, radian and gradian value at once.
func Zero() Angle {
	return Angle{
		rad:  some(0.0),
		deg:  some(0.0),
		grad: some(0.0),
	}
}

// IsZero reports whether the angle is the zero angle, no matter which
// representation is populated. A DMS triple counts as zero when all three
// components are zero.
func (a Angle) IsZero() bool {
	if r, ok := a.rad.Get(); ok {
		return r == 0
	}
	if d, ok := a.deg.Get(); ok {
		return d == 0
	}
	if g, ok := a.grad.Get(); ok {
		return g == 0
	}
	if v, ok := a.dms.Get(); ok {
		return v == DMS{}
	}
	return false
}

// Abs returns a new angle with the value folded into its unit's principal
// range. The representation to fold is the first populated one, checked in
// the order radians, degrees, gradians, DMS.
//
// Gradians have no fold of their own: a gradian-only angle is converted to
// degrees, folded there, and the result carries a re-derived gradian value.
//
// Abs panics on an Angle with no populated representation. The package
// constructors make that state unreachable.
func (a Angle) Abs() Angle {
	switch {
	case a.rad.ok:
		return a.absRadians()
	case a.deg.ok:
		return a.absDegrees()
	case a.grad.ok:
		return a.EnsureDegrees().absDegrees().EnsureGradians()
	case a.dms.ok:
		return a.absDMS()
	}

	panic("angle: Abs on an Angle with no populated representation")
}
