package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greedyroute/internal/config"
	"github.com/katalvlaran/greedyroute/routing"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Routing.MaxAlternatives)
	assert.Equal(t, 0.3, cfg.Routing.AlternativeSimilarity)
	assert.Equal(t, 0.7, cfg.Routing.GreedyAcceptance)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "greedyroute.yaml", `
routing:
  max_alternatives: 5
loader:
  projection: mercator
  largest_component: true
server:
  addr: "127.0.0.1:9000"
  read_timeout: 3s
log:
  level: debug
  format: json
areas:
  downtown: data/downtown.json
  harbor: data/harbor.osm.pbf
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Routing.MaxAlternatives)
	assert.Equal(t, 0.3, cfg.Routing.AlternativeSimilarity, "unset keys keep defaults")
	assert.Equal(t, "mercator", cfg.Loader.Projection)
	assert.True(t, cfg.Loader.LargestComponent)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout.Duration)
	assert.Equal(t, []string{"downtown", "harbor"}, cfg.AreaNames())
	assert.Len(t, cfg.LoaderOptions(), 2)
	assert.Len(t, cfg.RoutingOptions(), 3)
}

func TestLoad_TOML(t *testing.T) {
	path := write(t, "greedyroute.toml", `
[routing]
max_alternatives = 2
greedy_acceptance = 0.5

[server]
read_timeout = "1m"

[areas]
old_town = "old_town.json"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Routing.MaxAlternatives)
	assert.Equal(t, 0.5, cfg.Routing.GreedyAcceptance)
	assert.Equal(t, time.Minute, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, "old_town.json", cfg.Areas["old_town"])
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"max":        "routing:\n  max_alternatives: 0\n",
		"similarity": "routing:\n  alternative_similarity: 1.5\n",
		"projection": "loader:\n  projection: utm\n",
		"level":      "log:\n  level: loud\n",
		"format":     "log:\n  format: xml\n",
		"area":       "areas:\n  x: x.csv\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, "c.yaml", body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(write(t, "c.yaml", "routing: [\n"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = config.LogConfig{Level: "nope"}.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRoutingOptions_Apply(t *testing.T) {
	cfg := config.Default()
	cfg.Routing.MaxAlternatives = 7
	o := routing.DefaultOptions()
	for _, opt := range cfg.RoutingOptions() {
		opt(&o)
	}
	assert.Equal(t, 7, o.MaxAlternatives)
}
