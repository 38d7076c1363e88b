package angle

import "fmt"

// String renders the first populated representation with its unit symbol,
// checked in the same order Abs uses: radians, degrees, gradians, DMS. The
// zero angle renders as a bare 0 regardless of representation. String never
// triggers a conversion.
func (a Angle) String() string {
	if a.IsZero() {
		return "0"
	}

	if r, ok := a.rad.Get(); ok {
		return fmt.Sprintf("%v rad", r)
	}
	if d, ok := a.deg.Get(); ok {
		return fmt.Sprintf("%v°", d)
	}
	if g, ok := a.grad.Get(); ok {
		return fmt.Sprintf("%vᵍ", g)
	}
	if v, ok := a.dms.Get(); ok {
		return fmt.Sprintf("%d° %d′ %v″", v.Deg, v.Min, v.Sec)
	}

	return "<no angle>"
}
