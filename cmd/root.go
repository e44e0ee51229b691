package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "azfclass <marker-file>",
	Short: "Classify Y-chromosomal AZF microdeletions",
	Long: `azfclass — Y-chromosomal microdeletion classification per the
EAA/EMQN 2023 best practice guidelines.

Input is a two-column tab-separated file, one STS marker per row:

  sY14	present
  sY84	absent
  ...

Status values are case-insensitive 'present' or 'absent'. An optional
header row (marker/status) is skipped.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runClassify,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "Emit the full clinical report")
	rootCmd.Flags().Bool("validate-only", false, "Only check that all guideline markers were tested")
	rootCmd.Flags().String("guideline", "", "Path to a YAML guideline rule override")
	rootCmd.Flags().Bool("debug", false, "Enable rule-trace logging")

	rootCmd.AddCommand(versionCmd)
}
