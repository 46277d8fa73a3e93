package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Store    StoreConfig    `mapstructure:"store"`
	Autosave AutosaveConfig `mapstructure:"autosave"`
	Editor   EditorConfig   `mapstructure:"editor"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Log      LogConfig      `mapstructure:"log"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // sqlite, file or memory
	Path   string `mapstructure:"path"`   // empty uses the data directory
	Key    string `mapstructure:"key"`
}

type AutosaveConfig struct {
	Interval time.Duration `mapstructure:"interval"` // 0 disables autosave
}

type EditorConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`
}

// ThemeConfig holds lipgloss color strings (ANSI numbers or hex).
type ThemeConfig struct {
	Marker   string `mapstructure:"marker"`
	Heading1 string `mapstructure:"heading1"`
	Heading2 string `mapstructure:"heading2"`
	Heading3 string `mapstructure:"heading3"`
	List     string `mapstructure:"list"`
	Cursor   string `mapstructure:"cursor"`
}

type LogConfig struct {
	File  string `mapstructure:"file"` // empty discards logs
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "")
	v.SetDefault("store.key", "markdown-content")
	v.SetDefault("autosave.interval", time.Second)
	v.SetDefault("editor.show_line_numbers", false)
	v.SetDefault("theme.marker", "8")
	v.SetDefault("theme.heading1", "13")
	v.SetDefault("theme.heading2", "12")
	v.SetDefault("theme.heading3", "14")
	v.SetDefault("theme.list", "11")
	v.SetDefault("theme.cursor", "7")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load reads config.yaml from path when given, otherwise from the config
// directory or the working directory. A missing file is not an error.
// BLAND_* environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BLAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Store.Key == "" {
		cfg.Store.Key = "markdown-content"
	}
	return &cfg, nil
}

// GetConfigDir returns the XDG config directory for bland.
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "bland"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "bland"), nil
}
