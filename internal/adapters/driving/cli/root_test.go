package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/RachelGal/pharmacy-scraper/internal/adapters/driven/storage/memory"
	"github.com/RachelGal/pharmacy-scraper/internal/core/services"
)

// executeCommand runs the root command with args, capturing stdout and
// stderr together.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// setupTestSettings points the CLI at a fresh in-memory settings
// service and returns its store plus a cleanup restoring the previous
// wiring. The run log file is disabled so tests do not write
// scraper.log into the working directory.
func setupTestSettings() (*memory.ConfigStore, func()) {
	oldService := settingsService
	oldPath := configPath
	store := memory.NewConfigStore()
	_ = store.Set("log.file", "")
	settingsService = services.NewSettingsService(store)
	configPath = ""
	return store, func() {
		settingsService = oldService
		configPath = oldPath
	}
}

// resetFlags returns every flag in the given sets to its default so one
// test's arguments do not leak into the next.
func resetFlags(sets ...*pflag.FlagSet) {
	for _, fs := range sets {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "pharmacy-scraper", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "enrich")
	assert.Contains(t, commandNames, "cache")
	assert.Contains(t, commandNames, "config")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := executeCommand("defragment")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestExecute_RunsWithContext(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	err := Execute(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "pharmacy-scraper version")
}
