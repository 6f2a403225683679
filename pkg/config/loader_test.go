package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "stations:\n  file: testdata/stations.csv\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "http://localhost:8000/systems/us-ny-subway", cfg.Upstream.Endpoint)
	assert.Equal(t, "testdata/stations.csv", cfg.Stations.File)
	assert.Equal(t, 20*time.Second, cfg.Board.ArrivalsTTL())
	assert.Equal(t, 5*time.Minute, cfg.Board.RoutesTTL())
	assert.Equal(t, 30, cfg.Board.DefaultCount)
	assert.Equal(t, 100, cfg.Board.MaxCount)
}

func TestLoadExplicitValues(t *testing.T) {
	path := writeConfig(t, `server:
  listen: ":9090"
upstream:
  endpoint: "http://transiter.internal:8000/systems/us-ny-subway"
stations:
  file: /etc/subwaydisplayhub/stations.csv
board:
  arrivalsTTLMS: 5000
  routesTTLMS: 60000
  defaultCount: 14
  maxCount: 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, "http://transiter.internal:8000/systems/us-ny-subway", cfg.Upstream.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Board.ArrivalsTTL())
	assert.Equal(t, time.Minute, cfg.Board.RoutesTTL())
	assert.Equal(t, 14, cfg.Board.DefaultCount)
	assert.Equal(t, 50, cfg.Board.MaxCount)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SUBWAYDISPLAYHUB_LISTEN", ":3000")
	t.Setenv("SUBWAYDISPLAYHUB_UPSTREAM_ENDPOINT", "http://upstream.test/systems/us-ny-subway")

	path := writeConfig(t, "server:\n  listen: \":9090\"\nstations:\n  file: stations.csv\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Listen)
	assert.Equal(t, "http://upstream.test/systems/us-ny-subway", cfg.Upstream.Endpoint)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.yml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "stations: [[[")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadEndpoint(t *testing.T) {
	path := writeConfig(t, "upstream:\n  endpoint: \"not a url\"\nstations:\n  file: stations.csv\n")

	_, err := Load(path)
	assert.Error(t, err)
}
