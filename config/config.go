package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type SimulatorConfig struct {
	Port                  int
	LogLevel              string
	LogFile               string
	RoundRobinTimeQuantum int
	MemoryFrames          int
	PageSize              int
}

// LoadSimulatorConfig reads the given yaml file, or config.yaml from the
// working directory when path is empty. A missing default file falls back
// to defaults; OSSIM_* environment variables override both.
func LoadSimulatorConfig(path string) (*SimulatorConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ossim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SimulatorConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              strings.ToUpper(v.GetString("log.level")),
		LogFile:               v.GetString("log.file"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MemoryFrames:          v.GetInt("memory.frames"),
		PageSize:              v.GetInt("memory.page_size"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.file", "")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("memory.frames", 10)
	v.SetDefault("memory.page_size", 10)
}

func (c *SimulatorConfig) validate() error {
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("%w: round robin time quantum must be positive, got %d", ErrInvalidConfig, c.RoundRobinTimeQuantum)
	}
	if c.MemoryFrames <= 0 {
		return fmt.Errorf("%w: memory frames must be positive, got %d", ErrInvalidConfig, c.MemoryFrames)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidConfig, c.PageSize)
	}
	return nil
}
