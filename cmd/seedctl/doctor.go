package main

import (
	"fmt"

	"github.com/carapace-os/seedctl/pkg/doctor"
	"github.com/carapace-os/seedctl/pkg/style"
)

// runDoctor runs the environment checks and prints a report.
func runDoctor(flags *pathFlags) error {
	opts, _, err := resolveOptions(flags)
	if err != nil {
		return err
	}

	groups := doctor.NewChecker(opts).CheckAll()

	for _, group := range groups {
		fmt.Println(style.Info(group.Name))
		for _, check := range group.Checks {
			switch check.Status {
			case doctor.StatusOK:
				fmt.Println("  " + style.Success(fmt.Sprintf("%s: %s", check.Name, check.Message)))
			case doctor.StatusWarning:
				fmt.Println("  " + style.Warning(fmt.Sprintf("%s: %s", check.Name, check.Message)))
			default:
				fmt.Println("  " + style.Error(fmt.Sprintf("%s: %s", check.Name, check.Message)))
			}
			if check.FixHint != "" {
				fmt.Printf("     fix: %s\n", check.FixHint)
			}
		}
	}

	if doctor.HasFailures(groups) {
		return fmt.Errorf("environment is not ready")
	}

	return nil
}
