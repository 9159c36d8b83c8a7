package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repogauge/internal/config"
	"github.com/blackwell-systems/repogauge/internal/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the fetch cache",
	Long: `The fetch cache stores raw upstream API responses so repeated analyses
of the same repository stay within rate limits. Analysis results themselves
are never persisted.`,
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show fetch cache entry count and age",
	RunE:  runCacheStatus,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached fetch entries",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStatus(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	stats, err := db.Stats()
	if err != nil {
		return fmt.Errorf("reading cache stats: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("entries: %d\n", stats.Entries)
	if stats.Entries > 0 {
		fmt.Printf("oldest:  %s\n", stats.Oldest)
		fmt.Printf("newest:  %s\n", stats.Newest)
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	removed, err := db.Purge()
	if err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}

	fmt.Printf("removed %d cached entries\n", removed)
	return nil
}
