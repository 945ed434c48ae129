// Package config loads layered application configuration: hardcoded
// defaults, an optional YAML file, BASEPLATE_-prefixed environment
// variables, and command-line flags, in that precedence order.
package config

import (
	"fmt"
	"sync"

	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

// DefaultConfig returns the baseline configuration used when no other source
// overrides it.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "error",
		},
		Background: BackgroundConfig{
			Workers:       4,
			QueueCapacity: 0,
		},
	}
}

// DefaultConfigAsMap returns the defaults flattened for the confmap provider.
func DefaultConfigAsMap() map[string]interface{} {
	def := DefaultConfig()
	return map[string]interface{}{
		"log.level":                 def.Log.Level,
		"background.workers":        def.Background.Workers,
		"background.queue_capacity": def.Background.QueueCapacity,
	}
}

// Manager loads and holds the effective configuration. It remembers the
// sources it was loaded from so the file watcher can re-apply them.
type Manager struct {
	mu      sync.RWMutex
	sources []Source
	current Config
}

// NewManager creates an empty Manager; call Load before Get.
func NewManager() *Manager {
	return &Manager{}
}

// Load runs the given sources in order, unmarshals the merged result, and
// validates it. On success the result becomes the Manager's current config.
func (m *Manager) Load(sources ...Source) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := loadSources(sources)
	if err != nil {
		return err
	}
	m.sources = sources
	m.current = cfg
	return nil
}

// Reload re-runs the sources from the last successful Load. The previous
// configuration is kept when reloading fails.
func (m *Manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sources == nil {
		return fmt.Errorf("reload before initial load")
	}
	cfg, err := loadSources(m.sources)
	if err != nil {
		return err
	}
	m.current = cfg
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func loadSources(sources []Source) (Config, error) {
	k := koanf.New(".")
	for _, source := range sources {
		if err := source.Load(k); err != nil {
			return Config{}, fmt.Errorf("config source %s: %w", source.Name(), err)
		}
		log.Debug().Str("source", source.Name()).Msg("Loaded config source")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
