package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is the full application configuration.
type Config struct {
	Log        LogConfig        `koanf:"log" yaml:"log"`
	Background BackgroundConfig `koanf:"background" yaml:"background"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of the zerolog level names.
	Level string `koanf:"level" yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// BackgroundConfig holds background-executor settings. Workers is read once
// at executor construction; changing it later has no effect on a running
// pool.
type BackgroundConfig struct {
	Workers       int `koanf:"workers" yaml:"workers" validate:"gte=1"`
	QueueCapacity int `koanf:"queue_capacity" yaml:"queue_capacity" validate:"gte=0"`
}

var validate = validator.New()

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
