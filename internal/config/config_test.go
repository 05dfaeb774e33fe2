package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c-h-david/rapidgo/internal/config"
)

func writeNamelist(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "namelist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalNamelist = `
Q00_ncf: q00.nc
Qex_ncf: qex.nc
con_csv: con.csv
kpr_csv: kpr.csv
xpr_csv: xpr.csv
bas_csv: bas.csv
IS_dtR: 900
Qou_ncf: qou.nc
Qfi_ncf: qfi.nc
`

func TestLoad_MinimalValidNamelist(t *testing.T) {
	path := writeNamelist(t, minimalNamelist)
	nl, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 900, nl.IsDtR)
	require.Equal(t, "rate", nl.QexUnits)
	require.NotNil(t, nl.WriteQfi)
	require.True(t, *nl.WriteQfi)
	require.Equal(t, "info", nl.LogLevel)
}

func TestLoad_MissingRequiredKey(t *testing.T) {
	path := writeNamelist(t, `
Q00_ncf: q00.nc
Qex_ncf: qex.nc
con_csv: con.csv
`)
	_, err := config.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required keys")
}

func TestLoad_NonPositiveDtR(t *testing.T) {
	path := writeNamelist(t, `
Q00_ncf: q00.nc
Qex_ncf: qex.nc
con_csv: con.csv
kpr_csv: kpr.csv
xpr_csv: xpr.csv
bas_csv: bas.csv
IS_dtR: 0
Qou_ncf: qou.nc
Qfi_ncf: qfi.nc
`)
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_InvalidQexUnits(t *testing.T) {
	path := writeNamelist(t, minimalNamelist+"\nQex_units: liters\n")
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_ExplicitWriteQfiFalse(t *testing.T) {
	path := writeNamelist(t, minimalNamelist+"\nwrite_Qfi: false\n")
	nl, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, nl.WriteQfi)
	require.False(t, *nl.WriteQfi)
}
