package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "styled",
	Short: "Render styled components declared in YAML definitions files",
	Long: `Styled components with content-derived class names.
Each component pairs a host element with style tokens; its class name
is a hash of both, so the same declaration always yields the same class.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error (default: warn)")
	rootCmd.PersistentFlags().String("config", ".styled.yaml", "Config file path")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
