// Package generator renders meta-data and user-data files from a
// SeedConfig.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/carapace-os/seedctl/pkg/config"
)

// metaData is the NoCloud meta-data document.
type metaData struct {
	InstanceID    string `yaml:"instance-id"`
	LocalHostname string `yaml:"local-hostname,omitempty"`
}

// userData is the #cloud-config document body.
type userData struct {
	Users        []config.User `yaml:"users,omitempty"`
	Packages     []string      `yaml:"packages,omitempty"`
	RunCmd       []string      `yaml:"runcmd,omitempty"`
	FinalMessage string        `yaml:"final_message,omitempty"`
}

// MetaData renders the meta-data file. A fresh instance-id is generated
// when the config leaves it empty, so every regenerated seed triggers a
// new cloud-init run.
func MetaData(cfg *config.SeedConfig) ([]byte, error) {
	id := cfg.InstanceID
	if id == "" {
		id = "iid-" + uuid.New().String()
	}

	doc := metaData{
		InstanceID:    id,
		LocalHostname: cfg.LocalHostname,
	}
	return yaml.Marshal(doc)
}

// UserData renders the user-data file with the #cloud-config header
// cloud-init requires.
func UserData(cfg *config.SeedConfig) ([]byte, error) {
	doc := userData{
		Users:        cfg.Users,
		Packages:     cfg.Packages,
		RunCmd:       cfg.RunCommands,
		FinalMessage: cfg.FinalMessage,
	}

	body, err := yaml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append([]byte("#cloud-config\n"), body...), nil
}

// WriteFiles renders both files into the input directory, creating it
// if needed, and returns the written paths.
func WriteFiles(cfg *config.SeedConfig, inputDir string) ([]string, error) {
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create input directory: %w", err)
	}

	meta, err := MetaData(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render meta-data: %w", err)
	}

	user, err := UserData(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render user-data: %w", err)
	}

	files := map[string][]byte{
		"meta-data": meta,
		"user-data": user,
	}

	paths := make([]string, 0, len(files))
	for _, name := range []string{"meta-data", "user-data"} {
		path := filepath.Join(inputDir, name)
		if err := os.WriteFile(path, files[name], 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
