// Package commands implements the brp-extras CLI commands.
package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "brp-extras",
		Short: "Format discovery tooling for BRP component types",
		Long: color.CyanString(`brp-extras - BRP format discovery

Discovers the wire formats of registered component types: spawn examples for
constructing new instances and mutation paths for partial updates.

Point it at a registry snapshot exported by your application and it tells you
exactly what JSON each component expects.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&registryFile, "registry", "", "Path to the registry snapshot JSON (default from brp.yml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format: json or table (default from brp.yml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewDiscoverCommand())
	rootCmd.AddCommand(NewTypesCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("brp-extras %s\n", Version)
			cmd.Printf("  commit:     %s\n", GitCommit)
			cmd.Printf("  built:      %s\n", BuildDate)
			cmd.Printf("  go version: %s\n", runtime.Version())
		},
	}
}
