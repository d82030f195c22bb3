package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "RDInstallmentReport04-01-2024.xls"))
	touch(t, filepath.Join(dir, "b.xlsx"))
	touch(t, filepath.Join(dir, "a.XLSX"))
	touch(t, filepath.Join(dir, "readme.txt"))
	touch(t, filepath.Join(dir, "report.xlsm"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.xlsx"), 0755))
	touch(t, filepath.Join(dir, "nested.xlsx", "RDInstallmentReport05-01-2024.xlsx"))

	files, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.XLSX"),
		filepath.Join(dir, "b.xlsx"),
		filepath.Join(dir, "RDInstallmentReport04-01-2024.xls"),
	}, files)
}

func TestDiscoverMissingDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDiscoverThenGroupScenario(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"RDInstallmentReport03-09-2024_A.xlsx",
		"RDInstallmentReport03-09-2024_B.xlsx",
		"RDInstallmentReport04-01-2024.xls",
		"notes.xlsx",
	} {
		touch(t, filepath.Join(dir, name))
	}

	files, err := Discover(dir)
	require.NoError(t, err)
	batches := Group(files)

	assert.Equal(t, []string{"03-09-2024", "04-01-2024"}, batches.Dates())
	var names []string
	for _, f := range batches.Files("03-09-2024") {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"RDInstallmentReport03-09-2024_A.xlsx", "RDInstallmentReport03-09-2024_B.xlsx"}, names)
	assert.Len(t, batches.Files("04-01-2024"), 1)
}

func TestDiscoverReturnsAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "RDInstallmentReport03-09-2024.xlsx"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	files, err := Discover(".")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, filepath.IsAbs(files[0]))
	assert.Equal(t, "RDInstallmentReport03-09-2024.xlsx", filepath.Base(files[0]))
}
