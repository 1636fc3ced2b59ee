package main

import (
	"github.com/spf13/cobra"
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "veilbreak",
	Short: "Veilbreak - Unicode-robust word matching for content moderation",
	Long: `Veilbreak detects disallowed words and phrases even when authors disguise
them with stylized Unicode look-alikes, diacritics, zero-width insertions, or
alternate scripts, and reports match locations against the original text for
accurate redaction and auditing.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(termsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
