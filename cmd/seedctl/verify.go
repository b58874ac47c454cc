package main

import (
	"fmt"

	"github.com/carapace-os/seedctl/pkg/seed"
	"github.com/carapace-os/seedctl/pkg/style"
)

// runVerify checks a built seed image.
func runVerify(flags *pathFlags) error {
	opts, _, err := resolveOptions(flags)
	if err != nil {
		return err
	}

	result, err := seed.Verify(opts)
	if err != nil {
		fmt.Println(style.Error(err.Error()))
		return fmt.Errorf("verification failed")
	}

	fmt.Printf("volume identifier: %s\n", result.VolumeID)
	for _, entry := range result.Entries {
		fmt.Printf("  %-10s %d bytes\n", entry.Name, entry.Size)
	}
	fmt.Println(style.Success(result.Path + " is a valid seed image"))

	return nil
}
