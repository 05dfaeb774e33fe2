package muskingum_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c-h-david/rapidgo/internal/muskingum"
)

func writeColumn(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParams_GathersIntoSubBasinOrder(t *testing.T) {
	dir := t.TempDir()
	kPath := writeColumn(t, dir, "kpr.csv", []string{"9000", "9000", "9000", "9000", "9000"})
	xPath := writeColumn(t, dir, "xpr.csv", []string{"0.25", "0.25", "0.25", "0.25", "0.25"})

	// domain order [10,20,30,40,50], sub-basin selects positions [2,0,4]
	params, err := muskingum.LoadParams(kPath, xPath, 5, []int{2, 0, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{9000, 9000, 9000}, params.K)
	require.Equal(t, []float64{0.25, 0.25, 0.25}, params.X)
}

func TestLoadParams_LengthMismatch(t *testing.T) {
	dir := t.TempDir()
	kPath := writeColumn(t, dir, "kpr.csv", []string{"9000"})
	xPath := writeColumn(t, dir, "xpr.csv", []string{"0.25"})

	_, err := muskingum.LoadParams(kPath, xPath, 5, []int{0})
	require.Error(t, err)
}
