// Package config reads the greedyroute configuration file.
//
// A file ending in .toml is decoded with BurntSushi/toml, anything else as
// YAML. Keys missing from the file keep the values of Default().
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/greedyroute/alternatives"
	"github.com/katalvlaran/greedyroute/assembler"
	"github.com/katalvlaran/greedyroute/roadnet"
	"github.com/katalvlaran/greedyroute/routing"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the application configuration.
type Config struct {
	Routing RoutingConfig     `yaml:"routing" toml:"routing"`
	Loader  LoaderConfig      `yaml:"loader" toml:"loader"`
	Server  ServerConfig      `yaml:"server" toml:"server"`
	Log     LogConfig         `yaml:"log" toml:"log"`
	Areas   map[string]string `yaml:"areas" toml:"areas"` // area name -> graph file
}

// RoutingConfig holds the per-request search knobs.
type RoutingConfig struct {
	MaxAlternatives       int     `yaml:"max_alternatives" toml:"max_alternatives"`
	AlternativeSimilarity float64 `yaml:"alternative_similarity" toml:"alternative_similarity"`
	GreedyAcceptance      float64 `yaml:"greedy_acceptance" toml:"greedy_acceptance"`
}

// LoaderConfig controls how area files are read.
type LoaderConfig struct {
	Projection       string `yaml:"projection" toml:"projection"` // "none", "mercator"
	LargestComponent bool   `yaml:"largest_component" toml:"largest_component"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr         string   `yaml:"addr" toml:"addr"`
	ReadTimeout  Duration `yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout" toml:"write_timeout"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // text, json
}

// Duration is a time.Duration written as "5s", "1m30s", ...
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Routing: RoutingConfig{
			MaxAlternatives:       alternatives.DefaultMaxCount,
			AlternativeSimilarity: alternatives.DefaultSimilarityThreshold,
			GreedyAcceptance:      assembler.DefaultAcceptanceThreshold,
		},
		Loader: LoaderConfig{Projection: string(roadnet.ProjectionNone)},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
		},
		Log:   LogConfig{Level: "info", Format: "text"},
		Areas: map[string]string{},
	}
}

// Load reads path over Default() and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	r := c.Routing
	if r.MaxAlternatives < 1 {
		return fmt.Errorf("%w: routing.max_alternatives=%d must be ≥ 1", ErrInvalid, r.MaxAlternatives)
	}
	if r.AlternativeSimilarity < 0 || r.AlternativeSimilarity > 1 {
		return fmt.Errorf("%w: routing.alternative_similarity=%g must be in [0,1]", ErrInvalid, r.AlternativeSimilarity)
	}
	if r.GreedyAcceptance < 0 || r.GreedyAcceptance > 1 {
		return fmt.Errorf("%w: routing.greedy_acceptance=%g must be in [0,1]", ErrInvalid, r.GreedyAcceptance)
	}
	if _, err := roadnet.ParseProjection(c.Loader.Projection); err != nil {
		return fmt.Errorf("%w: loader.projection: %v", ErrInvalid, err)
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 {
		return fmt.Errorf("%w: server timeouts must not be negative", ErrInvalid)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format=%q", ErrInvalid, c.Log.Format)
	}
	for name, file := range c.Areas {
		if name == "" || file == "" {
			return fmt.Errorf("%w: area %q has no file", ErrInvalid, name)
		}
		if _, err := roadnet.FormatOf(file); err != nil {
			return fmt.Errorf("%w: area %q: %v", ErrInvalid, name, err)
		}
	}

	return nil
}

// AreaNames returns the configured areas sorted by name.
func (c *Config) AreaNames() []string {
	names := make([]string, 0, len(c.Areas))
	for name := range c.Areas {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// RoutingOptions converts the routing section for routing.ComputeRoutes.
func (c *Config) RoutingOptions() []routing.Option {
	return []routing.Option{
		routing.WithMaxAlternatives(c.Routing.MaxAlternatives),
		routing.WithAlternativeSimilarity(c.Routing.AlternativeSimilarity),
		routing.WithGreedyAcceptance(c.Routing.GreedyAcceptance),
	}
}

// LoaderOptions converts the loader section for roadnet. Validate has
// already accepted the projection name.
func (c *Config) LoaderOptions() []roadnet.Option {
	proj, _ := roadnet.ParseProjection(c.Loader.Projection)
	opts := []roadnet.Option{roadnet.WithProjection(proj)}
	if c.Loader.LargestComponent {
		opts = append(opts, roadnet.WithLargestComponent())
	}

	return opts
}

// NewLogger builds the logger described by the log section.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log.level=%q", ErrInvalid, s)
	}
}
