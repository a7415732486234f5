package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RachelGal/pharmacy-scraper/internal/adapters/driven/storage/sqlite"
	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
)

func TestCacheCmd_HasSubcommands(t *testing.T) {
	commands := cacheCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "stats")
	assert.Contains(t, commandNames, "clear")
}

func TestCacheStats_Empty(t *testing.T) {
	defer resetFlags(rootCmd.PersistentFlags())
	dir := t.TempDir()

	out, err := executeCommand("cache", "--config", dir, "stats")

	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "data", "cache.db"))
	assert.Contains(t, out, "The cache is empty.")
}

func TestCacheStatsAndClear(t *testing.T) {
	defer resetFlags(rootCmd.PersistentFlags())
	dir := t.TempDir()

	store, err := sqlite.NewStore(filepath.Join(dir, "data"))
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), "ace pharmacy",
		[]domain.RegisterEntry{{TradingName: "Ace Pharmacy", RegistrationNumber: "1055"}}))
	require.NoError(t, store.Close())

	out, err := executeCommand("cache", "--config", dir, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Entries: 1")
	assert.Contains(t, out, "Oldest entry:")

	out, err = executeCommand("cache", "--config", dir, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache cleared.")

	out, err = executeCommand("cache", "--config", dir, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "The cache is empty.")
}
