// Package project provides utilities for working with the project structure.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot finds the project root by looking for seed.yaml, a build/
// directory, or go.mod, starting from the current working directory.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom finds the project root starting from a given directory.
func FindRootFrom(start string) (string, error) {
	dir := start
	for {
		// Check for seed.yaml
		seedConfig := filepath.Join(dir, "seed.yaml")
		if _, err := os.Stat(seedConfig); err == nil {
			return dir, nil
		}

		// Check for build/ directory
		buildDir := filepath.Join(dir, "build")
		if info, err := os.Stat(buildDir); err == nil && info.IsDir() {
			return dir, nil
		}

		// Check for go.mod
		goMod := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goMod); err == nil {
			return dir, nil
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (looked for seed.yaml, build/ or go.mod)")
}
