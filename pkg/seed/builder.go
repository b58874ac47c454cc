// Package seed builds cloud-init NoCloud seed ISO images from meta-data
// and user-data files.
package seed

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/diskfs/go-diskfs/filesystem/iso9660"
	log "github.com/sirupsen/logrus"
)

const (
	// ISO-9660 logical block size
	blockSize = 2048

	// space reserved for the system area, volume descriptors, path
	// tables, the root directory and Rock Ridge continuation areas
	imageOverhead = 128 * 1024
)

// Result describes a successfully built seed image.
type Result struct {
	Path string
	Size int64
}

// Builder assembles a NoCloud seed ISO from a pair of input files.
type Builder struct {
	opts *Options
}

// NewBuilder creates a new Builder for the given options.
func NewBuilder(opts *Options) *Builder {
	return &Builder{opts: opts}
}

// Build creates the seed image. Both input files must exist before any
// ISO construction begins; a prior image at the output path is replaced
// only once the inputs have been verified. On any write failure the
// partial image is removed, so the output exists exactly when Build
// succeeds.
func (b *Builder) Build() (*Result, error) {
	opts := b.opts
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Step 1: Ensure the output directory exists
	if err := os.MkdirAll(filepath.Dir(opts.OutputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Step 2: Check both inputs independently so the report is unambiguous
	inputs := []string{opts.MetaDataPath(), opts.UserDataPath()}
	sizes := make([]int64, len(inputs))
	var missing []string
	for i, p := range inputs {
		info, err := os.Stat(p)
		if err != nil {
			missing = append(missing, p)
			continue
		}
		sizes[i] = info.Size()
	}
	if len(missing) > 0 {
		return nil, &MissingInputError{Paths: missing}
	}

	log.Debugf("building %s from %s (%d bytes) and %s (%d bytes)",
		opts.OutputPath, inputs[0], sizes[0], inputs[1], sizes[1])

	// Step 3: Replace any prior image, but only after the precondition
	// gate has passed
	if err := os.Remove(opts.OutputPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove previous image: %w", err)
	}

	result, err := b.write(inputs, sizes)
	if err != nil {
		// a partial image is not usable
		_ = os.Remove(opts.OutputPath)
		return nil, &ImageWriteError{Path: opts.OutputPath, Err: err}
	}

	return result, nil
}

// write creates the ISO-9660 volume and copies both inputs into it.
func (b *Builder) write(inputs []string, sizes []int64) (*Result, error) {
	opts := b.opts

	out, err := os.OpenFile(opts.OutputPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not create output file: %w", err)
	}
	defer out.Close()

	fs, err := iso9660.Create(out, imageSizeFor(sizes), 0, blockSize, "")
	if err != nil {
		return nil, fmt.Errorf("could not create iso9660 filesystem: %w", err)
	}

	for _, p := range inputs {
		if err := addFile(fs, p); err != nil {
			return nil, err
		}
	}

	err = fs.Finalize(iso9660.FinalizeOptions{
		RockRidge:        true,
		VolumeIdentifier: opts.VolumeID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not finalize image: %w", err)
	}

	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("could not close output file: %w", err)
	}

	info, err := os.Stat(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("could not stat output file: %w", err)
	}

	return &Result{Path: opts.OutputPath, Size: info.Size()}, nil
}

// addFile copies one input file into the root of the volume under its
// own base name. With Rock Ridge enabled the long name is preserved as
// an alias over the derived 8.3 short name.
func addFile(fs *iso9660.FileSystem, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open input %s: %w", path, err)
	}
	defer src.Close()

	dst, err := fs.OpenFile("/"+filepath.Base(path), os.O_CREATE|os.O_RDWR)
	if err != nil {
		return fmt.Errorf("could not create %s in image: %w", filepath.Base(path), err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("could not copy %s into image: %w", path, err)
	}

	return nil
}

// imageSizeFor returns the image capacity for the given input sizes:
// each input rounded up to whole blocks, plus the fixed overhead.
func imageSizeFor(sizes []int64) int64 {
	total := int64(imageOverhead)
	for _, size := range sizes {
		blocks := size / blockSize
		if size%blockSize > 0 || size == 0 {
			blocks++
		}
		total += blocks * blockSize
	}
	return total
}
