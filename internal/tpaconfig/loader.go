package tpaconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Load loads configuration from multiple sources in priority order:
//  1. Default values (100ms simplify budget, 100-digit max_dp)
//  2. Configuration file at path, if non-empty and present
//  3. Environment variables (TPA_ prefix)
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("TPA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.configPath = path

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault loads configuration with no file, only defaults and
// environment variables.
func LoadDefault() (*Config, error) {
	return Load("")
}

// Watch installs a callback invoked whenever the config file backing
// cfg changes on disk. It is a no-op if cfg was loaded without a file
// path (e.g. via LoadDefault).
func Watch(cfg *Config, onChange func(*Config)) error {
	if cfg.configPath == "" {
		return nil
	}
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(cfg.configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", cfg.configPath, err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		var next Config
		if err := v.Unmarshal(&next); err != nil {
			return
		}
		next.configPath = cfg.configPath
		if err := validate(&next); err != nil {
			return
		}
		onChange(&next)
	})
	v.WatchConfig()
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("default_simplify_budget_ms", int64(100))
	v.SetDefault("default_max_dp", 100)
}

func validate(cfg *Config) error {
	if cfg.DefaultSimplifyBudgetMS < 0 {
		return fmt.Errorf("default_simplify_budget_ms must not be negative, got %d", cfg.DefaultSimplifyBudgetMS)
	}
	if cfg.DefaultMaxDP < 0 {
		return fmt.Errorf("default_max_dp must not be negative, got %d", cfg.DefaultMaxDP)
	}
	return nil
}
