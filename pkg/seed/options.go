package seed

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// DefaultVolumeID is the volume identifier the cloud-init NoCloud
	// datasource probes for. Case-sensitive.
	DefaultVolumeID = "cidata"

	// MetaDataName is the filename of the instance metadata input.
	MetaDataName = "meta-data"

	// UserDataName is the filename of the user data input.
	UserDataName = "user-data"
)

// Options configures the seed image build.
type Options struct {
	// InputDir is the directory containing meta-data and user-data.
	InputDir string

	// OutputPath is the path of the ISO image to write. Any existing
	// image at this path is replaced.
	OutputPath string

	// VolumeID is the ISO-9660 volume identifier. Defaults to "cidata";
	// any other value breaks NoCloud detection and is only useful for
	// testing.
	VolumeID string
}

// DefaultOptions returns Options with the standard project layout:
// inputs under build/cidata/, output at build/seed.iso.
func DefaultOptions(projectRoot string) *Options {
	return &Options{
		InputDir:   filepath.Join(projectRoot, "build", "cidata"),
		OutputPath: filepath.Join(projectRoot, "build", "seed.iso"),
		VolumeID:   DefaultVolumeID,
	}
}

// ApplyEnv overrides options from seed.env style key-value pairs.
func (o *Options) ApplyEnv(vars map[string]string) {
	if v := vars["SEED_INPUT_DIR"]; v != "" {
		o.InputDir = v
	}
	if v := vars["SEED_OUTPUT"]; v != "" {
		o.OutputPath = v
	}
	if v := vars["SEED_VOLUME_ID"]; v != "" {
		o.VolumeID = v
	}
}

// Validate checks that all required options are set and valid, filling
// in the default volume identifier if empty.
func (o *Options) Validate() error {
	if o.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}

	if o.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}

	if !strings.HasSuffix(strings.ToLower(o.OutputPath), ".iso") {
		return fmt.Errorf("output path does not have .iso extension: %s", o.OutputPath)
	}

	if o.VolumeID == "" {
		o.VolumeID = DefaultVolumeID
	}

	// ISO-9660 volume identifiers are at most 32 characters
	if len(o.VolumeID) > 32 {
		return fmt.Errorf("volume identifier too long (%d chars, max 32): %s", len(o.VolumeID), o.VolumeID)
	}

	return nil
}

// MetaDataPath returns the path of the meta-data input file.
func (o *Options) MetaDataPath() string {
	return filepath.Join(o.InputDir, MetaDataName)
}

// UserDataPath returns the path of the user-data input file.
func (o *Options) UserDataPath() string {
	return filepath.Join(o.InputDir, UserDataName)
}
