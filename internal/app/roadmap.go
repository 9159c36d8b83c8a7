package app

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <repository>",
	Short: "Print only the prioritized improvement roadmap",
	Long: `Roadmap runs the same analysis as analyze but prints only the
prioritized improvement items, at most five, highest-leverage first.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoadmap,
}

func init() {
	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	result, err := analyzeRepo(cmd, args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Roadmap)
	}

	renderRoadmap(result)
	return nil
}
