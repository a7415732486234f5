package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View or create the configuration file.

Settings are resolved in order: built-in defaults, then the config
file, then PHARMACY_SCRAPER_* environment variables, then flags.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Long: `Writes every setting at its default value to the config file,
creating the file if needed. Settings already in the file are reset;
keys the tool does not know are left alone.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	applyEnvOverrides(&settings)

	cmd.Println("Effective Configuration")
	cmd.Println("=======================")
	cmd.Println()

	cmd.Println("[Register]")
	cmd.Printf("  URL: %s\n", settings.Register.BaseURL)
	cmd.Printf("  Headless: %s\n", yesNo(settings.Register.Headless))
	cmd.Printf("  Request delay: %s\n", settings.Register.RequestDelay)
	cmd.Printf("  Search timeout: %s\n", settings.Register.SearchTimeout)
	cmd.Println()

	cmd.Println("[Matcher]")
	cmd.Printf("  Threshold: %.2f\n", settings.Matcher.Threshold)
	cmd.Printf("  Tie margin: %.2f\n", settings.Matcher.TieMargin)
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.Cache.Enabled))
	if settings.Cache.MaxAge > 0 {
		cmd.Printf("  Max age: %s\n", settings.Cache.MaxAge)
	} else {
		cmd.Printf("  Max age: never expires\n")
	}
	cmd.Println()

	cmd.Println("[Log]")
	if settings.Log.File != "" {
		cmd.Printf("  File: %s\n", settings.Log.File)
	} else {
		cmd.Printf("  File: (disabled)\n")
	}
	cmd.Println()

	if configPath != "" {
		cmd.Printf("Config file: %s\n", configPath)
	}
	if err := svc.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}

	if err := svc.Save(svc.Defaults()); err != nil {
		return fmt.Errorf("writing defaults: %w", err)
	}

	if configPath != "" {
		cmd.Printf("Default configuration written to %s\n", configPath)
	} else {
		cmd.Println("Default configuration written.")
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
