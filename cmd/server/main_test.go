package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "seed"} {
		assert.True(t, names[want], want)
	}
	assert.NotNil(t, seedCmd.Flags().Lookup("file"))
	assert.NotNil(t, serveCmd.Flags().Lookup("migrate"))
}

func TestLoadFixturesDefault(t *testing.T) {
	f, err := loadFixtures("")
	require.NoError(t, err)
	assert.NotEmpty(t, f.Venues)
	assert.NotEmpty(t, f.Artists)
}

func TestLoadFixturesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("venues: []\nartists: []\nshows: []\n"), 0o600))

	f, err := loadFixtures(path)
	require.NoError(t, err)
	assert.Empty(t, f.Venues)

	_, err = loadFixtures(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
