package angle

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/oliverbestmann/angle/internal/numeric"
)

// Unit tags the representation an angle literal is written in.
type Unit uint8

const (
	Degrees Unit = iota
	Radians
	Gradians
	// Sexa is the degrees/minutes/seconds triple form.
	Sexa
)

func (u Unit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	case Gradians:
		return "gradians"
	case Sexa:
		return "dms"
	}

	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// ErrParse reports malformed angle literal text.
var ErrParse = errors.New("malformed angle literal")

var (
	// a leading optionally signed decimal or integer numeral
	scalarPattern = regexp.MustCompile(`^\s*([+-]?\d+(?:\.\d+)?)`)

	// integer degrees, integer minutes and real seconds, separated by
	// commas, spaces or the degree/prime/double-prime symbol family
	dmsPattern = regexp.MustCompile(`^\s*([+-]?\d+)\s*[°,\s]\s*([+-]?\d+)\s*[′',\s]\s*([+-]?\d+(?:\.\d+)?)\s*(?:[″"]|'')?`)
)

// Parse extracts a leading numeral from text, or a degrees/minutes/seconds
// triple for Sexa, and constructs the angle in the requested unit. Malformed
// text yields an error wrapping ErrParse; the conversion engine itself never
// sees malformed input.
func Parse(u Unit, text string) (Angle, error) {
	switch u {
	case Degrees, Radians, Gradians:
		m := scalarPattern.FindStringSubmatch(text)
		if m == nil {
			return Angle{}, fmt.Errorf("%w: %q has no leading %s value", ErrParse, text, u)
		}

		v, ok := numeric.Float(m[1])
		if !ok {
			return Angle{}, fmt.Errorf("%w: %q is not a number", ErrParse, m[1])
		}

		switch u {
		case Radians:
			return FromRadians(v), nil
		case Gradians:
			return FromGradians(v), nil
		default:
			return FromDegrees(v), nil
		}

	case Sexa:
		m := dmsPattern.FindStringSubmatch(text)
		if m == nil {
			return Angle{}, fmt.Errorf("%w: %q is not a degrees/minutes/seconds triple", ErrParse, text)
		}

		deg, okD := numeric.Int(m[1])
		min, okM := numeric.Int(m[2])
		sec, okS := numeric.Float(m[3])
		if !okD || !okM || !okS {
			return Angle{}, fmt.Errorf("%w: %q", ErrParse, text)
		}

		return FromDMS(DMS{Deg: deg, Min: min, Sec: sec}), nil
	}

	return Angle{}, fmt.Errorf("%w: unknown unit %s", ErrParse, u)
}

// MustParse is like Parse but panics on malformed text. It is the literal
// shorthand for angles known at compile time:
//
//	up := angle.MustParse(angle.Degrees, "90")
func MustParse(u Unit, text string) Angle {
	a, err := Parse(u, text)
	if err != nil {
		panic(err)
	}

	return a
}
