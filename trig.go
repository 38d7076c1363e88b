package angle

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain reports an inverse trigonometric input outside the function's
// mathematical domain.
var ErrDomain = errors.New("input outside function domain")

// Cos returns the angle, now carrying a radian value, together with the
// cosine of that value.
func Cos(a Angle) (Angle, float64) {
	a, r := a.Radians()
	return a, math.Cos(r)
}

// Cosh returns the angle, now carrying a radian value, together with the
// hyperbolic cosine of that value.
func Cosh(a Angle) (Angle, float64) {
	a, r := a.Radians()
	return a, math.Cosh(r)
}

// Sin returns the angle, now carrying a radian value, together with the
// sine of that value.
func Sin(a Angle) (Angle, float64) {
	a, r := a.Radians()
	return a, math.Sin(r)
}

// Sinh returns the angle, now carrying a radian value, together with the
// hyperbolic sine of that value.
func Sinh(a Angle) (Angle, float64) {
	a, r := a.Radians()
	return a, math.Sinh(r)
}

// Tan returns the angle, now carrying a radian value, together with the
// tangent of that value.
func Tan(a Angle) (Angle, float64) {
	a, r := a.Radians()
	return a, math.Tan(r)
}

// Tanh returns the angle, now carrying a radian value, together with the
// hyperbolic tangent of that value.
func Tanh(a Angle) (Angle, float64) {
	a, r := a.Radians()
	return a, math.Tanh(r)
}

// Acos returns the angle whose cosine is x. x must be in [-1, 1].
func Acos(x float64) (Angle, error) {
	if x < -1 || x > 1 {
		return Angle{}, fmt.Errorf("acos(%v): %w", x, ErrDomain)
	}

	return FromRadians(math.Acos(x)), nil
}

// Acosh returns the angle whose hyperbolic cosine is x. x must be at
// least 1.
func Acosh(x float64) (Angle, error) {
	if x < 1 {
		return Angle{}, fmt.Errorf("acosh(%v): %w", x, ErrDomain)
	}

	return FromRadians(math.Acosh(x)), nil
}

// Asin returns the angle whose sine is x. x must be in [-1, 1].
func Asin(x float64) (Angle, error) {
	if x < -1 || x > 1 {
		return Angle{}, fmt.Errorf("asin(%v): %w", x, ErrDomain)
	}

	return FromRadians(math.Asin(x)), nil
}

// Asinh returns the angle whose hyperbolic sine is x.
func Asinh(x float64) Angle {
	return FromRadians(math.Asinh(x))
}

// Atan returns the angle whose tangent is x.
func Atan(x float64) Angle {
	return FromRadians(math.Atan(x))
}

// Atan2 returns the angle of the point (x, y) measured from the positive x
// axis, in (-π, π].
func Atan2(y, x float64) Angle {
	return FromRadians(math.Atan2(y, x))
}
