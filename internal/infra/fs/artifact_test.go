package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist", "nested", "out.svg")

	require.NoError(t, WriteFileAtomic(path, []byte("<svg/>")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(got))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file must not be left behind")
}

func TestWriteFileAtomic_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")

	require.NoError(t, WriteFileAtomic(path, []byte("first")))
	require.NoError(t, WriteFileAtomic(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestWriteFileAtomic_EmptyPath(t *testing.T) {
	assert.Error(t, WriteFileAtomic("", []byte("x")))
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "days.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"date":"2024-01-01","count":2}]`), 0644))

	var out []struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	}
	require.NoError(t, LoadJSON(path, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "2024-01-01", out[0].Date)
	assert.Equal(t, 2, out[0].Count)

	assert.Error(t, LoadJSON(filepath.Join(t.TempDir(), "missing.json"), &out))
}
