package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c-h-david/rapidgo/internal/driver"
)

func TestParseForcingUnits_Default(t *testing.T) {
	u, err := driver.ParseForcingUnits("")
	require.NoError(t, err)
	require.Equal(t, driver.RatePerSecond, u)
}

func TestParseForcingUnits_Unrecognized(t *testing.T) {
	_, err := driver.ParseForcingUnits("liters")
	require.Error(t, err)
}

func TestForcingUnits_ConvertVolumeToRate(t *testing.T) {
	u, err := driver.ParseForcingUnits("volume")
	require.NoError(t, err)

	row := []float64{900.0, 1800.0}
	u.Convert(row, 900)
	require.Equal(t, []float64{1.0, 2.0}, row)
}

func TestForcingUnits_ConvertRateUnchanged(t *testing.T) {
	u, err := driver.ParseForcingUnits("rate")
	require.NoError(t, err)

	row := []float64{1.5, 2.5}
	u.Convert(row, 900)
	require.Equal(t, []float64{1.5, 2.5}, row)
}
