// Package doctor provides environment checks for seed image builds.
package doctor

// CheckStatus represents the status of an environment check.
type CheckStatus int

const (
	// StatusOK indicates the check passed.
	StatusOK CheckStatus = iota
	// StatusMissing indicates something required is not present.
	StatusMissing
	// StatusError indicates an error occurred during the check.
	StatusError
	// StatusWarning indicates the build may work but something is off.
	StatusWarning
)

// String returns the string representation of the status.
func (s CheckStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusError:
		return "error"
	case StatusWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Check represents a single environment check result.
type Check struct {
	ID      string      // Unique identifier, e.g. "meta-data"
	Name    string      // Display name
	Status  CheckStatus // Current status
	Message string      // Status message (path, error, etc.)
	FixHint string      // How to fix (empty if nothing to do)
}

// CheckGroup represents a group of related checks.
type CheckGroup struct {
	ID     string  // Unique identifier, e.g. "inputs"
	Name   string  // Display name
	Checks []Check // Individual checks in this group
}

// GroupID constants for check groups.
const (
	GroupInputs = "inputs"
	GroupOutput = "output"
)

// CheckID constants for individual checks.
const (
	IDInputDir  = "input-dir"
	IDMetaData  = "meta-data"
	IDUserData  = "user-data"
	IDOutputDir = "output-dir"
	IDImage     = "image"
)
