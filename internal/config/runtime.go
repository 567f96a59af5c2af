// Package config provides centralized configuration for Countdown runtime values.
package config

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config directories and env prefixes.
	AppName = "countdown"

	// InMemoryPath selects a throwaway in-memory store.
	InMemoryPath = ":memory:"
)

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	Storage StorageConfig
	Timer   TimerConfig
	Admin   AdminConfig
	UI      UIConfig
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// Path is the database directory. Empty uses the XDG data directory.
	// Env: COUNTDOWN_DATABASE (":memory:" selects InMemory).
	Path string

	// InMemory keeps all data in memory for the lifetime of the process.
	InMemory bool
}

// TimerConfig holds scheduling configuration.
type TimerConfig struct {
	// TickInterval is how often each timer is recomputed.
	// Values under one second are raised to one second.
	// Default: 1s
	TickInterval time.Duration
}

// AdminConfig holds the static admin credential pair.
type AdminConfig struct {
	// Default: admin / admin
	User     string
	Password string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// ProgressWidth is the number of cells in a progress bar.
	// Default: 30
	ProgressWidth int
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Timer: TimerConfig{
			TickInterval: time.Second,
		},
		Admin: AdminConfig{
			User:     "admin",
			Password: "admin",
		},
		UI: UIConfig{
			ProgressWidth: 30,
		},
	}
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Load builds the runtime configuration from defaults, an optional
// config.yaml in configDir, and COUNTDOWN_* environment variables.
func Load(configDir string) (*RuntimeConfig, error) {
	defaults := DefaultRuntimeConfig()

	v := viper.New()
	v.SetDefault("storage.path", defaults.Storage.Path)
	v.SetDefault("timer.tick_interval", defaults.Timer.TickInterval)
	v.SetDefault("admin.user", defaults.Admin.User)
	v.SetDefault("admin.password", defaults.Admin.Password)
	v.SetDefault("ui.progress_width", defaults.UI.ProgressWidth)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("storage.path", "COUNTDOWN_DATABASE"); err != nil {
		return nil, err
	}

	if configDir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cfg := &RuntimeConfig{
		Storage: StorageConfig{
			Path: v.GetString("storage.path"),
		},
		Timer: TimerConfig{
			TickInterval: v.GetDuration("timer.tick_interval"),
		},
		Admin: AdminConfig{
			User:     v.GetString("admin.user"),
			Password: v.GetString("admin.password"),
		},
		UI: UIConfig{
			ProgressWidth: v.GetInt("ui.progress_width"),
		},
	}
	cfg.normalize()

	return cfg, nil
}

func (c *RuntimeConfig) normalize() {
	if c.Storage.Path == InMemoryPath {
		c.Storage.Path = ""
		c.Storage.InMemory = true
	}
	if c.Timer.TickInterval < time.Second {
		c.Timer.TickInterval = time.Second
	}
	if c.UI.ProgressWidth <= 0 {
		c.UI.ProgressWidth = DefaultRuntimeConfig().UI.ProgressWidth
	}
}
