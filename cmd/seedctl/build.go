package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/carapace-os/seedctl/pkg/seed"
	"github.com/carapace-os/seedctl/pkg/style"
)

// runBuild builds the seed image from the input files.
func runBuild(flags *pathFlags) error {
	opts, _, err := resolveOptions(flags)
	if err != nil {
		return err
	}

	result, err := seed.NewBuilder(opts).Build()
	if err != nil {
		var missing *seed.MissingInputError
		if errors.As(err, &missing) {
			for _, path := range missing.Paths {
				fmt.Println(style.Error("Missing: " + path))
			}
			return fmt.Errorf("required input file(s) missing")
		}
		fmt.Println(style.Error(err.Error()))
		return err
	}

	fmt.Println(style.Success(fmt.Sprintf("%s created: %s (%d bytes)",
		filepath.Base(result.Path), result.Path, result.Size)))

	return nil
}
