package angle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDMSToDegrees(t *testing.T) {
	_, d := FromDMS(DMS{Deg: 77, Min: 50, Sec: 56}).Degrees()
	require.InDelta(t, 77.84888888888888, d, 1e-12)
}

func TestDMSShortForms(t *testing.T) {
	_, d := FromDMS(DMS{Deg: 30}).Degrees()
	require.InDelta(t, 30, d, 1e-12)

	_, d = FromDMS(DMS{Deg: 30, Min: 30}).Degrees()
	require.InDelta(t, 30.5, d, 1e-12)
}

func TestDegreesToDMSTruncates(t *testing.T) {
	_, v := FromDegrees(77.84888888888888).Sexagesimal()
	require.Equal(t, 77, v.Deg)
	require.Equal(t, 50, v.Min)
	require.InDelta(t, 56, v.Sec, 1e-6)

	// truncation toward zero keeps the sign on every component
	_, v = FromDegrees(-45.5).Sexagesimal()
	require.Equal(t, -45, v.Deg)
	require.Equal(t, -30, v.Min)
	require.InDelta(t, 0, v.Sec, 1e-9)
}

func TestDMSRoundTrip(t *testing.T) {
	for _, in := range []DMS{
		{Deg: 77, Min: 50, Sec: 56},
		{Deg: 1, Min: 2, Sec: 3},
		{Deg: 359, Min: 59, Sec: 59},
	} {
		_, d := FromDMS(in).Degrees()
		_, out := FromDegrees(d).Sexagesimal()

		require.Equal(t, in.Deg, out.Deg)
		require.Equal(t, in.Min, out.Min)
		require.InDelta(t, in.Sec, out.Sec, 1e-6)
	}
}

func TestDMSAbs(t *testing.T) {
	t.Run("positive fold has no complement", func(t *testing.T) {
		_, v := FromDMS(DMS{Deg: 800, Min: 10, Sec: 20}).Abs().Sexagesimal()
		require.Equal(t, DMS{Deg: 80, Min: 10, Sec: 20}, v)
	})

	t.Run("negative fold complements minutes and seconds", func(t *testing.T) {
		_, v := FromDMS(DMS{Deg: -270, Min: 15, Sec: 45}).Abs().Sexagesimal()
		require.Equal(t, DMS{Deg: 90, Min: 45, Sec: 15}, v)
	})

	t.Run("complement is applied once across steps", func(t *testing.T) {
		_, v := FromDMS(DMS{Deg: -700, Min: 10, Sec: 20}).Abs().Sexagesimal()
		require.Equal(t, DMS{Deg: 20, Min: 50, Sec: 40}, v)
	})
}
