package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/rfilter/internal/filter"
	"github.com/kk-code-lab/rfilter/internal/state"
	"github.com/spf13/viper"
)

const (
	appName = "rfilter"
	// EnvPrefix prefixes environment overrides, e.g. RFILTER_FILTER_IGNORE_CASE.
	EnvPrefix = "RFILTER"
)

// Config represents the complete rfilter configuration
type Config struct {
	Filter  FilterConfig  `mapstructure:"filter"`
	View    ViewConfig    `mapstructure:"view"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FilterConfig controls name filter behaviour
type FilterConfig struct {
	// InvertedByDefault makes the manual filter hide what it matches unless
	// the prompt starts with "!"
	InvertedByDefault bool `mapstructure:"inverted_by_default"`
	IgnoreCase        bool `mapstructure:"ignore_case"`
	// SmartCase turns IgnoreCase off for patterns with upper-case letters
	SmartCase bool `mapstructure:"smart_case"`
	// HistorySize bounds the persisted filter history (0 disables it)
	HistorySize int `mapstructure:"history_size"`
	// MaxPositionHistory bounds the keystrokes a local filter session tracks
	MaxPositionHistory int `mapstructure:"max_position_history"`
}

// ViewConfig controls the directory listing
type ViewConfig struct {
	ParentDir    ParentDirConfig `mapstructure:"parent_dir"`
	HideDotFiles bool            `mapstructure:"hide_dot_files"`
	// Watch reloads the listing when the directory changes on disk
	Watch bool `mapstructure:"watch"`
}

// ParentDirConfig selects where ".." is listed
type ParentDirConfig struct {
	Root    bool `mapstructure:"root"`
	NonRoot bool `mapstructure:"non_root"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// File receives JSON log records; empty disables logging
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Filter: FilterConfig{
			InvertedByDefault:  true,
			IgnoreCase:         false,
			SmartCase:          false,
			HistorySize:        50,
			MaxPositionHistory: 1024,
		},
		View: ViewConfig{
			ParentDir: ParentDirConfig{
				Root:    false,
				NonRoot: true,
			},
			HideDotFiles: true,
			Watch:        true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// SetDefaults registers the built-in values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("filter.inverted_by_default", defaults.Filter.InvertedByDefault)
	v.SetDefault("filter.ignore_case", defaults.Filter.IgnoreCase)
	v.SetDefault("filter.smart_case", defaults.Filter.SmartCase)
	v.SetDefault("filter.history_size", defaults.Filter.HistorySize)
	v.SetDefault("filter.max_position_history", defaults.Filter.MaxPositionHistory)

	v.SetDefault("view.parent_dir.root", defaults.View.ParentDir.Root)
	v.SetDefault("view.parent_dir.non_root", defaults.View.ParentDir.NonRoot)
	v.SetDefault("view.hide_dot_files", defaults.View.HideDotFiles)
	v.SetDefault("view.watch", defaults.View.Watch)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
}

// New returns a viper instance with defaults, environment overrides and the
// config file search path set up. An explicit file must exist; the default
// file is optional.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	// RFILTER_VIEW_PARENT_DIR_ROOT for view.parent_dir.root
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}
	return v, nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Settings converts the configuration into the values the view engine uses.
func (c *Config) Settings() state.Settings {
	return state.Settings{
		FilterInvertedByDefault: c.Filter.InvertedByDefault,
		ShowRootParent:          c.View.ParentDir.Root,
		ShowNonRootParent:       c.View.ParentDir.NonRoot,
		HideDotFiles:            c.View.HideDotFiles,
		Case: filter.CaseOptions{
			IgnoreCase: c.Filter.IgnoreCase,
			SmartCase:  c.Filter.SmartCase,
		},
		MaxPositionHistory: c.Filter.MaxPositionHistory,
	}
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".config", appName)
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// HistoryFile returns the path of the persisted filter history
func HistoryFile() string {
	return filepath.Join(ConfigDir(), "history.yaml")
}
