package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/carapace-os/seedctl/pkg/seed"
)

// Checker runs environment checks for a seed build.
type Checker struct {
	opts *seed.Options
}

// NewChecker creates a new Checker for the given build options.
func NewChecker(opts *seed.Options) *Checker {
	return &Checker{opts: opts}
}

// CheckAll runs all checks and returns groups with results.
func (c *Checker) CheckAll() []CheckGroup {
	return []CheckGroup{
		{
			ID:   GroupInputs,
			Name: "Seed inputs",
			Checks: []Check{
				c.checkInputDir(),
				c.checkInputFile(IDMetaData, seed.MetaDataName, c.opts.MetaDataPath()),
				c.checkInputFile(IDUserData, seed.UserDataName, c.opts.UserDataPath()),
			},
		},
		{
			ID:   GroupOutput,
			Name: "Output location",
			Checks: []Check{
				c.checkOutputDir(),
				c.checkImage(),
			},
		},
	}
}

// HasFailures returns true if any check in the groups is missing or
// errored.
func HasFailures(groups []CheckGroup) bool {
	for _, g := range groups {
		for _, check := range g.Checks {
			if check.Status == StatusMissing || check.Status == StatusError {
				return true
			}
		}
	}
	return false
}

func (c *Checker) checkInputDir() Check {
	check := Check{ID: IDInputDir, Name: "Input directory"}

	info, err := os.Stat(c.opts.InputDir)
	switch {
	case os.IsNotExist(err):
		check.Status = StatusMissing
		check.Message = fmt.Sprintf("%s does not exist", c.opts.InputDir)
		check.FixHint = "run 'seedctl generate' or create the directory and add meta-data and user-data"
	case err != nil:
		check.Status = StatusError
		check.Message = err.Error()
	case !info.IsDir():
		check.Status = StatusError
		check.Message = fmt.Sprintf("%s is not a directory", c.opts.InputDir)
	default:
		check.Status = StatusOK
		check.Message = c.opts.InputDir
	}
	return check
}

func (c *Checker) checkInputFile(id, name, path string) Check {
	check := Check{ID: id, Name: name}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		check.Status = StatusMissing
		check.Message = fmt.Sprintf("%s does not exist", path)
		check.FixHint = "run 'seedctl generate' to render it from seed.yaml"
	case err != nil:
		check.Status = StatusError
		check.Message = err.Error()
	case info.Size() == 0:
		check.Status = StatusWarning
		check.Message = fmt.Sprintf("%s is empty", path)
	default:
		check.Status = StatusOK
		check.Message = fmt.Sprintf("%s (%d bytes)", path, info.Size())
	}
	return check
}

// checkOutputDir probes that the output directory exists (or can be
// created) and is writable.
func (c *Checker) checkOutputDir() Check {
	check := Check{ID: IDOutputDir, Name: "Output directory"}
	dir := filepath.Dir(c.opts.OutputPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		check.Status = StatusError
		check.Message = fmt.Sprintf("cannot create %s: %v", dir, err)
		return check
	}

	probe, err := os.CreateTemp(dir, ".seedctl-probe-*")
	if err != nil {
		check.Status = StatusError
		check.Message = fmt.Sprintf("%s is not writable: %v", dir, err)
		check.FixHint = fmt.Sprintf("check permissions on %s", dir)
		return check
	}
	probe.Close()
	os.Remove(probe.Name())

	check.Status = StatusOK
	check.Message = dir
	return check
}

// checkImage reports whether a previously built image is present and
// whether it is older than the inputs.
func (c *Checker) checkImage() Check {
	check := Check{ID: IDImage, Name: "Seed image"}

	info, err := os.Stat(c.opts.OutputPath)
	if os.IsNotExist(err) {
		check.Status = StatusOK
		check.Message = "not built yet"
		return check
	}
	if err != nil {
		check.Status = StatusError
		check.Message = err.Error()
		return check
	}

	for _, input := range []string{c.opts.MetaDataPath(), c.opts.UserDataPath()} {
		if inputInfo, err := os.Stat(input); err == nil && inputInfo.ModTime().After(info.ModTime()) {
			check.Status = StatusWarning
			check.Message = fmt.Sprintf("%s is older than %s", c.opts.OutputPath, input)
			check.FixHint = "run 'seedctl build' to rebuild the image"
			return check
		}
	}

	check.Status = StatusOK
	check.Message = fmt.Sprintf("%s (%d bytes)", c.opts.OutputPath, info.Size())
	return check
}
