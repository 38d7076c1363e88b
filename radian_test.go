package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRadiansToDegrees(t *testing.T) {
	_, d := FromRadians(math.Pi).Degrees()
	require.InDelta(t, 180, d, 1e-12)
}

func TestRadiansEnsureIsIdentityWhenPopulated(t *testing.T) {
	a := FromRadians(1.25)
	require.Equal(t, a, a.EnsureRadians())
	require.Equal(t, a.EnsureRadians(), a.EnsureRadians().EnsureRadians())
}

func TestRadiansFromDMSPivotsThroughDegrees(t *testing.T) {
	a := FromDMS(DMS{Deg: 77, Min: 50, Sec: 56}).EnsureRadians()

	// the degree pivot is cached alongside the radian value
	require.True(t, a.deg.ok)

	_, r := a.Radians()
	require.InDelta(t, 77.84888888888888*math.Pi/180, r, 1e-12)
}

func TestRadiansAbs(t *testing.T) {
	_, r := FromRadians(-math.Pi).Abs().Radians()
	require.InDelta(t, math.Pi, r, 1e-12)

	_, r = FromRadians(5 * math.Pi).Abs().Radians()
	require.InDelta(t, math.Pi, r, 1e-9)

	for _, in := range []float64{-100, -2 * math.Pi, 0.5, 6.2, 100} {
		_, r := FromRadians(in).Abs().Radians()
		require.GreaterOrEqual(t, r, 0.0)
		require.LessOrEqual(t, r, 2*math.Pi)
	}
}
