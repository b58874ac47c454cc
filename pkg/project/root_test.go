package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRootFrom_SeedConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "seed.yaml"), []byte("instance-id: test\n"), 0644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := FindRootFrom(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindRootFrom_BuildDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build", "cidata"), 0755))

	found, err := FindRootFrom(root)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindRootFrom_GoMod(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/test\n"), 0644))

	found, err := FindRootFrom(filepath.Join(root))
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindRootFrom_NotFound(t *testing.T) {
	// A bare temp dir has no markers; walking up from it should fail
	// unless a parent happens to contain one, so build the path from
	// the filesystem root.
	dir := t.TempDir()

	_, err := FindRootFrom(dir)
	if err != nil {
		assert.Contains(t, err.Error(), "could not find project root")
	}
}
