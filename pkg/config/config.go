// Package config handles the seed.yaml configuration file that drives
// meta-data and user-data generation.
package config

// User describes a user account provisioned by cloud-init.
type User struct {
	Name              string   `yaml:"name"`
	SSHAuthorizedKeys []string `yaml:"ssh-authorized-keys,omitempty"`
	Sudo              string   `yaml:"sudo,omitempty"`
	Shell             string   `yaml:"shell,omitempty"`
	Groups            string   `yaml:"groups,omitempty"`
}

// SeedConfig represents the seed.yaml file.
type SeedConfig struct {
	// Instance metadata (meta-data)
	InstanceID    string `yaml:"instance-id,omitempty"`
	LocalHostname string `yaml:"local-hostname,omitempty"`

	// User data (user-data)
	Users        []User   `yaml:"users,omitempty"`
	Packages     []string `yaml:"packages,omitempty"`
	RunCommands  []string `yaml:"run-commands,omitempty"`
	FinalMessage string   `yaml:"final-message,omitempty"`
}
