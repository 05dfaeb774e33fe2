package muskingum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c-h-david/rapidgo/internal/muskingum"
)

func TestNewCoeffs_SumsToOne(t *testing.T) {
	k := []float64{9000, 3600, 7200}
	x := []float64{0.25, 0.2, 0.1}
	c, err := muskingum.NewCoeffs(k, x, 900)
	require.NoError(t, err)

	for i := range k {
		sum := c.C1[i] + c.C2[i] + c.C3[i]
		require.InDelta(t, 1.0, sum, 1e-12)
	}
}

func TestNewCoeffs_ScenarioS1Coefficients(t *testing.T) {
	// K=9000 s, X=0.25, dt=900 s; expected c1=-0.25, c2=0.375, c3=0.875.
	c, err := muskingum.NewCoeffs([]float64{9000}, []float64{0.25}, 900)
	require.NoError(t, err)

	require.InDelta(t, -0.25, c.C1[0], 1e-9)
	require.InDelta(t, 0.375, c.C2[0], 1e-9)
	require.InDelta(t, 0.875, c.C3[0], 1e-9)
}

func TestNewCoeffs_NonPositiveDenominator(t *testing.T) {
	// dt/2 + K(1-X) <= 0 when K is very negative.
	_, err := muskingum.NewCoeffs([]float64{-10000}, []float64{0.0}, 900)
	require.Error(t, err)
}

func TestNewCoeffs_ZeroKZeroX(t *testing.T) {
	// K=0 leaves denom = dt/2, so c1 = 1, c2 = 1, c3 = -1.
	c, err := muskingum.NewCoeffs([]float64{0}, []float64{0}, 900)
	require.NoError(t, err)
	require.True(t, math.Abs(c.C1[0]-1) < 1e-12)
	require.True(t, math.Abs(c.C2[0]-1) < 1e-12)
	require.True(t, math.Abs(c.C3[0]+1) < 1e-12)
}
