// Package config provides the typed application configuration layered from
// file, environment, and flags.
package config

import (
	"fmt"
	"runtime"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/common"
	"github.com/spf13/viper"
)

// maxDefaultWorkers caps the default clean-stage pool; the work is I/O
// light and more workers just contend on the output directory.
const maxDefaultWorkers = 8

// Logging holds the log output settings.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the full application configuration.
type Config struct {
	InputDir     string  `mapstructure:"input_dir"`
	InterimDir   string  `mapstructure:"interim_dir"`
	ResultsDir   string  `mapstructure:"results_dir"`
	LogDir       string  `mapstructure:"log_dir"`
	DatabasePath string  `mapstructure:"database_path"`
	DPDCodesFile string  `mapstructure:"dpd_codes_file"`
	Logging      Logging `mapstructure:"logging"`
	Workers      int     `mapstructure:"workers"`
}

// SetDefaults registers the default configuration values with viper.
func SetDefaults() {
	viper.SetDefault("input_dir", "data/raw_files/xml")
	viper.SetDefault("interim_dir", "data/interim")
	viper.SetDefault("results_dir", "data/results")
	viper.SetDefault("log_dir", "logs")
	viper.SetDefault("database_path", "data/bureau.db")
	viper.SetDefault("workers", defaultWorkers())
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// Load builds the configuration from viper's current state.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.InputDir = ExpandPath(cfg.InputDir)
	cfg.InterimDir = ExpandPath(cfg.InterimDir)
	cfg.ResultsDir = ExpandPath(cfg.ResultsDir)
	cfg.LogDir = ExpandPath(cfg.LogDir)
	cfg.DatabasePath = ExpandPath(cfg.DatabasePath)
	cfg.DPDCodesFile = ExpandPath(cfg.DPDCodesFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required: %w", common.ErrInvalidConfig)
	}
	if c.InterimDir == "" {
		return fmt.Errorf("interim_dir is required: %w", common.ErrInvalidConfig)
	}
	if c.ResultsDir == "" {
		return fmt.Errorf("results_dir is required: %w", common.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1: %w", common.ErrInvalidConfig)
	}
	return nil
}

func defaultWorkers() int {
	workers := runtime.GOMAXPROCS(0)
	if workers > maxDefaultWorkers {
		workers = maxDefaultWorkers
	}
	return workers
}
