package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMetaData = "instance-id: test\n"
	testUserData = "#cloud-config\n"
)

// testOptions returns Options rooted in a fresh temp dir with both
// inputs written.
func testOptions(t *testing.T) *Options {
	t.Helper()
	root := t.TempDir()
	opts := DefaultOptions(root)
	require.NoError(t, os.MkdirAll(opts.InputDir, 0755))
	require.NoError(t, os.WriteFile(opts.MetaDataPath(), []byte(testMetaData), 0644))
	require.NoError(t, os.WriteFile(opts.UserDataPath(), []byte(testUserData), 0644))
	return opts
}

func TestBuild_Success(t *testing.T) {
	opts := testOptions(t)

	result, err := NewBuilder(opts).Build()
	require.NoError(t, err)

	assert.Equal(t, opts.OutputPath, result.Path)
	assert.Greater(t, result.Size, int64(0))

	info, err := os.Stat(opts.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, result.Size, info.Size())
}

func TestBuild_RoundTrip(t *testing.T) {
	opts := testOptions(t)

	_, err := NewBuilder(opts).Build()
	require.NoError(t, err)

	// Verify reads back both files and compares them to the inputs.
	result, err := Verify(opts)
	require.NoError(t, err)

	assert.Equal(t, DefaultVolumeID, result.VolumeID)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, MetaDataName, result.Entries[0].Name)
	assert.Equal(t, int64(len(testMetaData)), result.Entries[0].Size)
	assert.Equal(t, UserDataName, result.Entries[1].Name)
	assert.Equal(t, int64(len(testUserData)), result.Entries[1].Size)
}

func TestVerify_VolumeIDHasNoPadding(t *testing.T) {
	opts := testOptions(t)

	_, err := NewBuilder(opts).Build()
	require.NoError(t, err)

	// The on-disk identifier field is 32 bytes wide and NUL padded;
	// the reported VolumeID must be the bare identifier.
	result, err := Verify(opts)
	require.NoError(t, err)
	assert.Equal(t, DefaultVolumeID, result.VolumeID)
	assert.NotContains(t, result.VolumeID, "\x00")
	assert.Len(t, result.VolumeID, len(DefaultVolumeID))
}

func TestBuild_MissingUserData(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.Remove(opts.UserDataPath()))

	_, err := NewBuilder(opts).Build()
	require.Error(t, err)

	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{opts.UserDataPath()}, missing.Paths)
	assert.Contains(t, err.Error(), UserDataName)

	// no output may be written
	_, statErr := os.Stat(opts.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuild_MissingBothInputs(t *testing.T) {
	root := t.TempDir()
	opts := DefaultOptions(root)

	_, err := NewBuilder(opts).Build()
	require.Error(t, err)

	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{opts.MetaDataPath(), opts.UserDataPath()}, missing.Paths)
}

func TestBuild_MissingInputKeepsPriorImage(t *testing.T) {
	opts := testOptions(t)

	_, err := NewBuilder(opts).Build()
	require.NoError(t, err)
	prior, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	// with an input gone, the existing image must not be touched
	require.NoError(t, os.Remove(opts.MetaDataPath()))
	_, err = NewBuilder(opts).Build()
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*MissingInputError)))

	after, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, prior, after)
}

func TestBuild_OverwriteIdempotence(t *testing.T) {
	opts := testOptions(t)
	builder := NewBuilder(opts)

	first, err := builder.Build()
	require.NoError(t, err)

	second, err := builder.Build()
	require.NoError(t, err)
	assert.Greater(t, second.Size, int64(0))

	result, err := Verify(opts)
	require.NoError(t, err)
	assert.Equal(t, DefaultVolumeID, result.VolumeID)
	assert.Equal(t, first.Path, second.Path)
}

func TestBuild_EmptyInputs(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.WriteFile(opts.MetaDataPath(), nil, 0644))
	require.NoError(t, os.WriteFile(opts.UserDataPath(), nil, 0644))

	result, err := NewBuilder(opts).Build()
	require.NoError(t, err)
	assert.Greater(t, result.Size, int64(0))
}

func TestBuild_CustomVolumeID(t *testing.T) {
	opts := testOptions(t)
	opts.VolumeID = "testdata"

	_, err := NewBuilder(opts).Build()
	require.NoError(t, err)

	result, err := Verify(opts)
	require.NoError(t, err)
	assert.Equal(t, "testdata", result.VolumeID)
}

func TestBuild_CreatesOutputDirectory(t *testing.T) {
	opts := testOptions(t)
	opts.OutputPath = filepath.Join(t.TempDir(), "nested", "images", "seed.iso")

	result, err := NewBuilder(opts).Build()
	require.NoError(t, err)
	assert.FileExists(t, result.Path)
}

func TestVerify_MissingImage(t *testing.T) {
	root := t.TempDir()
	opts := DefaultOptions(root)

	_, err := Verify(opts)
	assert.Error(t, err)
}

func TestVerify_NotAnISO(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(opts.OutputPath), 0755))
	require.NoError(t, os.WriteFile(opts.OutputPath, []byte("not an iso"), 0644))

	_, err := Verify(opts)
	assert.Error(t, err)
}

func TestImageSizeFor(t *testing.T) {
	// empty inputs still reserve one block each
	assert.Equal(t, int64(imageOverhead+2*blockSize), imageSizeFor([]int64{0, 0}))
	// small inputs round up to one block
	assert.Equal(t, int64(imageOverhead+2*blockSize), imageSizeFor([]int64{18, 14}))
	// block-spanning inputs round up
	assert.Equal(t, int64(imageOverhead+3*blockSize), imageSizeFor([]int64{blockSize + 1, 10}))
}
