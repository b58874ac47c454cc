// Package validation provides validation of the seed input files.
package validation

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/carapace-os/seedctl/pkg/seed"
)

// Severity represents the severity of a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue represents a validation issue found in an input file.
type Issue struct {
	File     string   `json:"file"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Result holds all validation results.
type Result struct {
	Issues []Issue `json:"issues"`
}

// HasErrors returns true if there are any error-level issues.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			count++
		}
	}
	return count
}

// Validator validates the seed input files.
type Validator struct {
	Options *seed.Options
}

// NewValidator creates a new Validator for the given build options.
func NewValidator(opts *seed.Options) *Validator {
	return &Validator{Options: opts}
}

// ValidateAll validates both input files and returns the result.
func (v *Validator) ValidateAll() *Result {
	result := &Result{Issues: []Issue{}}

	result.Issues = append(result.Issues, v.ValidateMetaData(v.Options.MetaDataPath())...)
	result.Issues = append(result.Issues, v.ValidateUserData(v.Options.UserDataPath())...)

	return result
}

// ValidateMetaData validates the meta-data file: it must exist, be
// non-empty, parse as YAML, and carry an instance-id.
func (v *Validator) ValidateMetaData(path string) []Issue {
	issues := []Issue{}

	data, ok := readInput(path, &issues)
	if !ok {
		return issues
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		issues = append(issues, Issue{
			File:     path,
			Message:  fmt.Sprintf("not valid YAML: %v", err),
			Severity: SeverityError,
		})
		return issues
	}

	if _, found := doc["instance-id"]; !found {
		issues = append(issues, Issue{
			File:     path,
			Message:  "instance-id not set; cloud-init will not detect configuration changes",
			Severity: SeverityWarning,
		})
	}

	return issues
}

// ValidateUserData validates the user-data file: it must exist and be
// non-empty; when it carries the #cloud-config header the body must
// parse as YAML.
func (v *Validator) ValidateUserData(path string) []Issue {
	issues := []Issue{}

	data, ok := readInput(path, &issues)
	if !ok {
		return issues
	}

	if !strings.HasPrefix(string(data), "#cloud-config") {
		// shell scripts and other formats are accepted by cloud-init,
		// but this tool normally packages cloud-config documents
		issues = append(issues, Issue{
			File:     path,
			Message:  "does not start with #cloud-config",
			Severity: SeverityWarning,
		})
		return issues
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		issues = append(issues, Issue{
			File:     path,
			Message:  fmt.Sprintf("not valid YAML: %v", err),
			Severity: SeverityError,
		})
	}

	return issues
}

// readInput reads one input file, recording existence and emptiness
// issues. Returns false when validation cannot continue.
func readInput(path string, issues *[]Issue) ([]byte, bool) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		*issues = append(*issues, Issue{
			File:     path,
			Message:  "file not found",
			Severity: SeverityError,
		})
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		*issues = append(*issues, Issue{
			File:     path,
			Message:  fmt.Sprintf("failed to read file: %v", err),
			Severity: SeverityError,
		})
		return nil, false
	}

	if len(data) == 0 {
		*issues = append(*issues, Issue{
			File:     path,
			Message:  "file is empty",
			Severity: SeverityWarning,
		})
		return nil, false
	}

	return data, true
}
