package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := WriteFiles(t, map[string]string{
		"openapi.yaml":     "openapi: 3.1.0\n",
		"schemas/pet.yaml": "type: object\n",
	})

	data, err := os.ReadFile(filepath.Join(dir, "schemas", "pet.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "type: object\n", string(data))

	info, err := os.Stat(filepath.Join(dir, "openapi.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "a/b.json", "{}")
	assert.Equal(t, "b.json", filepath.Base(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
