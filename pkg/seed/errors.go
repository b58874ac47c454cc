package seed

import (
	"fmt"
	"strings"
)

// MissingInputError reports required input files that do not exist.
// No image is written when this error is returned.
type MissingInputError struct {
	Paths []string
}

// Error returns the error message listing every missing path.
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input file(s): %s", strings.Join(e.Paths, ", "))
}

// ImageWriteError wraps a failure from the ISO-writing layer. The output
// image is removed before this error is returned, so callers never see a
// partial image.
type ImageWriteError struct {
	Path string
	Err  error
}

// Error returns the error message including the output path.
func (e *ImageWriteError) Error() string {
	return fmt.Sprintf("failed to write image %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying ISO library error.
func (e *ImageWriteError) Unwrap() error {
	return e.Err
}
