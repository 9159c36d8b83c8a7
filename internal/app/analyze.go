package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repogauge/internal/config"
	"github.com/blackwell-systems/repogauge/internal/engine"
	"github.com/blackwell-systems/repogauge/internal/github"
	"github.com/blackwell-systems/repogauge/internal/store"
)

var analyzeFlagNoCache bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <repository>",
	Short: "Fetch a repository and print the full quality report",
	Long: `Analyze fetches metadata, README text, language byte-counts, and recent
commit history for a repository, scores it across six quality dimensions,
and prints the full report: scores, feedback, classification, narrative
summary, and improvement roadmap.

The repository may be given as owner/repo or as a github.com URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeFlagNoCache, "no-cache", false, "Bypass the fetch cache")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	result, err := analyzeRepo(cmd, args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	renderReport(result)
	return nil
}

// analyzeRepo runs the shared parse → fetch → score pipeline used by the
// analyze and roadmap commands.
func analyzeRepo(cmd *cobra.Command, spec string) (*engine.AnalysisResult, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	owner, repo, err := github.ParseRepoSpec(spec)
	if err != nil {
		return nil, err
	}

	token := flagToken
	if token == "" {
		token = cfg.API.ResolveToken()
	}
	client := github.NewClient(cfg.API.BaseURL, token, cfg.API.Timeout())

	if cfg.Cache.Enabled && !analyzeFlagNoCache {
		db, err := store.Open(config.DBPath())
		if err != nil {
			if flagVerbose {
				fmt.Fprintln(os.Stderr, "warning: fetch cache unavailable:", err)
			}
		} else {
			defer db.Close()
			client.SetCache(store.NewFetchCache(db, cfg.Cache.TTL()))
		}
	}

	meta, history, err := client.Fetch(cmd.Context(), owner, repo)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", owner, repo, err)
	}

	result, err := engine.Analyze(meta, history, owner+"/"+repo)
	if err != nil {
		return nil, err
	}
	return result, nil
}
