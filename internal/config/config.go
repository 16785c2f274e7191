package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"tzpick/internal/domain"
	"tzpick/internal/timezones"
)

// DefaultFileName is looked up in the working directory when no path is given
const DefaultFileName = ".tzpick.toml"

// Config represents the application configuration
type Config struct {
	Source SourceConfig `mapstructure:"source" toml:"source"`
	UI     UISettings   `mapstructure:"ui" toml:"ui"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

// SourceConfig controls where options come from
type SourceConfig struct {
	URL            string `mapstructure:"url" toml:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
	// OnFailure is "fallback" (built-in list) or "error" (show the failure)
	OnFailure string `mapstructure:"on_failure" toml:"on_failure"`
	// Offline skips the request and serves the built-in list
	Offline bool `mapstructure:"offline" toml:"offline"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title          string `mapstructure:"title" toml:"title"`
	Placeholder    string `mapstructure:"placeholder" toml:"placeholder"`
	DropdownHeight int    `mapstructure:"dropdown_height" toml:"dropdown_height"`
	Output         string `mapstructure:"output" toml:"output"`
}

// LogConfig controls the rotating log file. An empty File disables logging.
type LogConfig struct {
	File       string `mapstructure:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" toml:"compress"`
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct {
	envPrefix string
}

// NewConfigService creates a config service that also honours TZPICK_* variables
func NewConfigService() ConfigService {
	return &configService{envPrefix: "TZPICK"}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:            timezones.DefaultURL,
			TimeoutSeconds: 10,
			OnFailure:      string(domain.PolicyFallback),
		},
		UI: UISettings{
			Title:          "Timezone Selector",
			Placeholder:    "Select timezones...",
			DropdownHeight: 10,
			Output:         "lines",
		},
		Log: LogConfig{
			File:       "tzpick.log",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("source.url", d.Source.URL)
	v.SetDefault("source.timeout_seconds", d.Source.TimeoutSeconds)
	v.SetDefault("source.on_failure", d.Source.OnFailure)
	v.SetDefault("source.offline", d.Source.Offline)

	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.placeholder", d.UI.Placeholder)
	v.SetDefault("ui.dropdown_height", d.UI.DropdownHeight)
	v.SetDefault("ui.output", d.UI.Output)

	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)
}

// LoadFromPath loads configuration from path. A missing file yields the defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(cs.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("toml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that cannot be fixed up silently
func (c *Config) Validate() error {
	if !domain.FailurePolicy(c.Source.OnFailure).Valid() {
		return fmt.Errorf("invalid source.on_failure %q: must be %q or %q",
			c.Source.OnFailure, domain.PolicyFallback, domain.PolicyError)
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid source.timeout_seconds %d: must be positive", c.Source.TimeoutSeconds)
	}
	if c.UI.DropdownHeight < 1 {
		return fmt.Errorf("invalid ui.dropdown_height %d: must be at least 1", c.UI.DropdownHeight)
	}
	switch c.UI.Output {
	case "lines", "json":
	default:
		return fmt.Errorf("invalid ui.output %q: must be \"lines\" or \"json\"", c.UI.Output)
	}
	return nil
}

// Policy returns the configured failure policy
func (c *Config) Policy() domain.FailurePolicy {
	return domain.FailurePolicy(c.Source.OnFailure)
}
