package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c-h-david/rapidgo/internal/driver"
)

func TestStepCorrespondence_ExactDivision(t *testing.T) {
	s, err := driver.StepCorrespondence(10800, 900)
	require.NoError(t, err)
	require.Equal(t, 12, s)
}

func TestStepCorrespondence_DtEqualsT(t *testing.T) {
	s, err := driver.StepCorrespondence(3600, 3600)
	require.NoError(t, err)
	require.Equal(t, 1, s)
}

func TestStepCorrespondence_NonDivisibleStepIsConfigError(t *testing.T) {
	// dt=800, T=10800, does not divide evenly.
	_, err := driver.StepCorrespondence(10800, 800)
	require.Error(t, err)
}

func TestStepCorrespondence_ZeroInputs(t *testing.T) {
	_, err := driver.StepCorrespondence(0, 900)
	require.Error(t, err)

	_, err = driver.StepCorrespondence(10800, 0)
	require.Error(t, err)
}
