package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/RachelGal/pharmacy-scraper/internal/adapters/driven/config/file"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driving"
	"github.com/RachelGal/pharmacy-scraper/internal/core/services"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

// version is the build version, set at release time via
// -ldflags "-X .../internal/adapters/driving/cli.version=...".
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
)

// settingsService is built over the TOML config store on first use so
// the --config flag is honoured. Tests swap in a memory-backed service.
var settingsService driving.SettingsService

// configPath is the file behind settingsService, kept for display.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "pharmacy-scraper",
	Short: "Enrich pharmacy records with contact details from the public register",
	Long: `pharmacy-scraper reads a list of pharmacy trading names, looks each one
up on the public PSI register and writes an enriched CSV dataset with
registration numbers, phone numbers, addresses and pharmacist details.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "",
		"config and cache directory (default ~/.pharmacy-scraper)")
}

// Execute runs the root command. ctx cancellation aborts a running
// enrichment between records.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// getSettingsService returns the settings service, creating it over the
// file config store on first call.
func getSettingsService() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config store: %w", err)
	}
	configPath = store.Path()
	settingsService = services.NewSettingsService(store)
	return settingsService, nil
}

// cacheDataDir resolves the search cache directory, honouring --config.
// Empty means the store's own default under the home directory.
func cacheDataDir() string {
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "data")
}
