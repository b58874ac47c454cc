package main

import (
	"fmt"

	"github.com/carapace-os/seedctl/pkg/style"
	"github.com/carapace-os/seedctl/pkg/validation"
)

// runValidate validates the seed input files.
func runValidate(flags *pathFlags) error {
	opts, _, err := resolveOptions(flags)
	if err != nil {
		return err
	}

	validator := validation.NewValidator(opts)
	result := validator.ValidateAll()

	// Print issues
	for _, issue := range result.Issues {
		if issue.Severity == validation.SeverityError {
			fmt.Println(style.Error(fmt.Sprintf("%s: %s", issue.File, issue.Message)))
		} else {
			fmt.Println(style.Warning(fmt.Sprintf("%s: %s", issue.File, issue.Message)))
		}
	}

	if result.HasErrors() {
		return fmt.Errorf("validation failed with %d error(s)", result.ErrorCount())
	}

	if len(result.Issues) == 0 {
		fmt.Println(style.Success("input files are valid"))
	} else {
		fmt.Println(style.Success(fmt.Sprintf("validation passed with %d warning(s)", result.WarningCount())))
	}

	return nil
}
