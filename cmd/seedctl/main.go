// Package main provides the seedctl CLI for building cloud-init NoCloud
// seed images.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for seedctl
func newRootCmd() *cobra.Command {
	flags := &pathFlags{}

	rootCmd := &cobra.Command{
		Use:   "seedctl",
		Short: "Cloud-init NoCloud seed image tool",
		Long: `seedctl builds a cloud-init NoCloud seed ISO (build/seed.iso) from the
meta-data and user-data files in build/cidata/.

The image carries the volume identifier 'cidata' with Rock Ridge
extensions, which is what the NoCloud datasource probes for when a VM
boots with the image attached.

Running seedctl with no subcommand builds the seed image.`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBuild(flags)
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.inputDir, "input-dir", "", "Directory containing meta-data and user-data (defaults to <root>/build/cidata)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Output image path (defaults to <root>/build/seed.iso)")
	rootCmd.PersistentFlags().StringVar(&flags.volumeID, "volume-id", "", "ISO volume identifier (defaults to cidata)")
	rootCmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Enable verbose output")

	rootCmd.AddCommand(
		newBuildCmd(flags),
		newGenerateCmd(flags),
		newValidateCmd(flags),
		newVerifyCmd(flags),
		newDoctorCmd(flags),
	)

	return rootCmd
}
