package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	assert.NoError(t, EnsureDir(dir))
}

func TestGenerateOutputFileName_UUID(t *testing.T) {
	name := GenerateOutputFileName("mismatches_{uuid}.csv")

	pattern := regexp.MustCompile(`^mismatches_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.csv$`)
	assert.Regexp(t, pattern, name)
}

func TestGenerateOutputFileName_UniquePerCall(t *testing.T) {
	a := GenerateOutputFileName("out_{uuid}.csv")
	b := GenerateOutputFileName("out_{uuid}.csv")

	assert.NotEqual(t, a, b)
}

func TestGenerateOutputFileName_DateAndTime(t *testing.T) {
	name := GenerateOutputFileName("export_{date}_{time}.csv")

	assert.Regexp(t, regexp.MustCompile(`^export_\d{8}_\d{6}\.csv$`), name)
}

func TestGenerateOutputFileName_NoPlaceholders(t *testing.T) {
	assert.Equal(t, "plain.csv", GenerateOutputFileName("plain.csv"))
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.True(t, FileExists(path))
}
