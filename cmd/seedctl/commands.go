package main

import "github.com/spf13/cobra"

// newBuildCmd creates the build subcommand (same as running seedctl
// with no arguments).
func newBuildCmd(flags *pathFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the seed ISO from meta-data and user-data",
		Long: `Build the NoCloud seed ISO from the meta-data and user-data files in
the input directory. Both files must exist; any previous image at the
output path is replaced.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBuild(flags)
		},
	}
}

// newGenerateCmd creates the generate subcommand
func newGenerateCmd(flags *pathFlags) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render meta-data and user-data from seed.yaml",
		Long: `Render the meta-data and user-data input files from the project's
seed.yaml configuration. When seed.yaml leaves instance-id empty a fresh
one is generated, so the next boot re-runs cloud-init.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(flags, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to seed.yaml (defaults to <root>/seed.yaml)")

	return cmd
}

// newValidateCmd creates the validate subcommand
func newValidateCmd(flags *pathFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the seed input files",
		Long:  `Validate the meta-data and user-data files without building an image.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidate(flags)
		},
	}
}

// newVerifyCmd creates the verify subcommand
func newVerifyCmd(flags *pathFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify a built seed ISO",
		Long: `Open the built seed ISO and check the volume identifier and contents
against the input files.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVerify(flags)
		},
	}
}

// newDoctorCmd creates the doctor subcommand
func newDoctorCmd(flags *pathFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment for seed image builds",
		Long:  `Run environment checks (input files, output location) and report problems.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDoctor(flags)
		},
	}
}
