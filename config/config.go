// Package config loads scoring and sidecar settings from YAML layered
// over embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nstehr/vimy/vimy-fuzzy/ai"
	"github.com/nstehr/vimy/vimy-fuzzy/objectvalue"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// MemoryStore selects the in-process object value store.
const MemoryStore = "memory"

type Config struct {
	SafeAttackRatio  float64             `yaml:"safeAttackRatio"`
	UnguardedRatio   float64             `yaml:"unguardedRatio"`
	SettlementReward float64             `yaml:"settlementReward"`
	Resolution       int                 `yaml:"resolution"`
	SocketPath       string              `yaml:"socketPath"`
	LogLevel         string              `yaml:"logLevel"`
	ObjectStore      string              `yaml:"objectStore"`
	ObjectValues     []objectvalue.Entry `yaml:"objectValues"`
}

// Default returns the embedded defaults.
func Default() *Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(fmt.Sprintf("load defaults.yaml: %v", err))
	}
	return &c
}

// Load reads path over the defaults. An empty path yields the defaults.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		c.Validate()
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Validate()
	return c, nil
}

// Validate clamps every numeric field to a usable range.
func (c *Config) Validate() {
	c.SafeAttackRatio = clamp(c.SafeAttackRatio, 1, 10)
	c.UnguardedRatio = clamp(c.UnguardedRatio, c.SafeAttackRatio, 100)
	c.SettlementReward = clamp(c.SettlementReward, 0, 5)
	c.Resolution = clampInt(c.Resolution, 10, 10000)
	if c.ObjectStore == "" {
		c.ObjectStore = MemoryStore
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		c.LogLevel = "info"
	}
}

// Params converts the scoring settings for the ai package.
func (c *Config) Params() ai.Params {
	return ai.Params{
		SafeAttackRatio:  c.SafeAttackRatio,
		UnguardedRatio:   c.UnguardedRatio,
		SettlementReward: c.SettlementReward,
		Resolution:       c.Resolution,
	}
}

// OpenStore opens the configured object value store and seeds it with
// ObjectValues. Values already in a persistent store are kept.
func (c *Config) OpenStore() (objectvalue.Store, func() error, error) {
	if c.ObjectStore == MemoryStore {
		s := objectvalue.NewMemStore()
		if err := objectvalue.Seed(s, c.ObjectValues); err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	}

	s, err := objectvalue.OpenSQLite(c.ObjectStore)
	if err != nil {
		return nil, nil, fmt.Errorf("object store: %w", err)
	}
	for _, e := range c.ObjectValues {
		if _, ok, err := s.Lookup(e.Kind, e.Subkind); err != nil {
			s.Close()
			return nil, nil, err
		} else if !ok {
			if err := s.Insert(e.Kind, e.Subkind, e.Value); err != nil {
				s.Close()
				return nil, nil, err
			}
		}
	}
	return s, s.Close, nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
