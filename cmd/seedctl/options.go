package main

import (
	"fmt"
	"path/filepath"

	"github.com/carapace-os/seedctl/pkg/envfile"
	"github.com/carapace-os/seedctl/pkg/project"
	"github.com/carapace-os/seedctl/pkg/seed"
)

// pathFlags holds the persistent flags shared by every command that
// touches the seed paths.
type pathFlags struct {
	inputDir string
	output   string
	volumeID string
	verbose  bool
}

// resolveOptions builds the effective seed options: project-root
// defaults, then seed.env overrides, then explicit flags.
func resolveOptions(flags *pathFlags) (*seed.Options, string, error) {
	projectRoot, err := project.FindRoot()
	if err != nil {
		return nil, "", fmt.Errorf("could not find project root: %w", err)
	}

	opts := seed.DefaultOptions(projectRoot)

	vars, err := envfile.ParseOptional(filepath.Join(projectRoot, "seed.env"))
	if err != nil {
		return nil, "", fmt.Errorf("could not read seed.env: %w", err)
	}
	opts.ApplyEnv(vars)

	if flags.inputDir != "" {
		opts.InputDir = flags.inputDir
	}
	if flags.output != "" {
		opts.OutputPath = flags.output
	}
	if flags.volumeID != "" {
		opts.VolumeID = flags.volumeID
	}

	return opts, projectRoot, nil
}
