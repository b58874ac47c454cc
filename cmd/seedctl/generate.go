package main

import (
	"fmt"

	"github.com/carapace-os/seedctl/pkg/config"
	"github.com/carapace-os/seedctl/pkg/generator"
	"github.com/carapace-os/seedctl/pkg/style"
)

// runGenerate renders the input files from seed.yaml.
func runGenerate(flags *pathFlags, configPath string) error {
	opts, projectRoot, err := resolveOptions(flags)
	if err != nil {
		return err
	}

	if configPath == "" {
		configPath = config.DefaultPath(projectRoot)
	}

	cfg, err := config.Read(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	paths, err := generator.WriteFiles(cfg, opts.InputDir)
	if err != nil {
		return fmt.Errorf("failed to generate input files: %w", err)
	}

	for _, path := range paths {
		fmt.Println(style.Success("wrote " + path))
	}

	return nil
}
