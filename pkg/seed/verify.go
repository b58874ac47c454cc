package seed

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/diskfs/go-diskfs/filesystem/iso9660"
)

// Entry describes one root-level file inside the seed image.
type Entry struct {
	Name string
	Size int64
}

// VerifyResult describes a seed image that passed verification.
type VerifyResult struct {
	Path     string
	VolumeID string
	Entries  []Entry
}

// Verify opens the image at opts.OutputPath and checks that it is a
// readable ISO-9660 volume with the expected volume identifier and that
// it contains meta-data and user-data. When the input files still exist
// their contents are compared byte-for-byte against the image.
func Verify(opts *Options) (*VerifyResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	img, err := os.Open(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("could not open image: %w", err)
	}
	defer img.Close()

	info, err := img.Stat()
	if err != nil {
		return nil, fmt.Errorf("could not stat image: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("image %s is empty", opts.OutputPath)
	}

	fs, err := iso9660.Read(img, info.Size(), 0, blockSize)
	if err != nil {
		return nil, fmt.Errorf("could not read iso9660 filesystem: %w", err)
	}

	result := &VerifyResult{Path: opts.OutputPath}

	// The primary volume descriptor stores the identifier in a fixed
	// 32-byte field, so the label reads back NUL padded to that width.
	result.VolumeID = strings.TrimRight(fs.Label(), " \x00")
	if result.VolumeID != opts.VolumeID {
		return nil, fmt.Errorf("volume identifier is %q, expected %q", result.VolumeID, opts.VolumeID)
	}

	for _, name := range []string{MetaDataName, UserDataName} {
		content, err := readImageFile(fs, name)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, Entry{Name: name, Size: int64(len(content))})

		// compare against the input when it is still around
		inputPath := filepath.Join(opts.InputDir, name)
		want, err := os.ReadFile(inputPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("could not read input %s: %w", inputPath, err)
		}
		if !bytes.Equal(content, want) {
			return nil, fmt.Errorf("%s in image differs from %s", name, inputPath)
		}
	}

	return result, nil
}

// readImageFile reads a root-level file from the volume by its Rock
// Ridge name.
func readImageFile(fs *iso9660.FileSystem, name string) ([]byte, error) {
	f, err := fs.OpenFile("/"+name, os.O_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("image does not contain %s: %w", name, err)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("could not read %s from image: %w", name, err)
	}
	return content, nil
}
