// Package app contains the Cobra command tree for repogauge.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repogauge/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagToken   string
)

var rootCmd = &cobra.Command{
	Use:   "repogauge",
	Short: "Score a public repository's engineering quality from its metadata",
	Long: `repogauge evaluates a public GitHub repository from metadata alone —
description, license, activity timestamps, commit history, and README text —
and produces a scored report across six quality dimensions, an overall tier
and skill classification, a narrative summary, and an improvement roadmap.

It never clones or inspects source files; everything is inferred from what
the hosting API reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			output.SetNoColor(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("repogauge", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze   Fetch a repository and print the full quality report")
		fmt.Println("  roadmap   Print only the prioritized improvement roadmap")
		fmt.Println("  cache     Inspect or clear the fetch cache")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/repogauge/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "GitHub API token (default: $GITHUB_TOKEN)")
}
