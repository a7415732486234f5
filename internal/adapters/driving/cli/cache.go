package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RachelGal/pharmacy-scraper/internal/adapters/driven/storage/sqlite"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the search result cache",
	Long: `Inspect or empty the local cache of register search results.

Cached results keep repeated runs from re-searching the register for
the same names. Entries expire after the configured maximum age.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache size and age",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached search result",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore(cacheDataDir())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer store.Close()

	count, oldest, err := store.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading cache stats: %w", err)
	}

	cmd.Printf("Cache: %s\n", store.Path())
	if count == 0 {
		cmd.Println("The cache is empty.")
		return nil
	}
	cmd.Printf("Entries: %d\n", count)
	cmd.Printf("Oldest entry: %s\n", oldest.Format("2006-01-02 15:04:05"))
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore(cacheDataDir())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer store.Close()

	if err := store.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}

	cmd.Println("Cache cleared.")
	return nil
}
