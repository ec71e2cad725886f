package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const appName = "quizcard"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env          string `mapstructure:"env"`           // "production" switches the logger to JSON output
	DBPath       string `mapstructure:"db_path"`       // SQLite file for attempt history
	LogPath      string `mapstructure:"log_path"`      // log file; the TUI owns stdout
	HistoryLimit int    `mapstructure:"history_limit"` // attempts shown on the history screen
}

// Load reads configuration from an optional .env file, an optional
// config.yaml, and QUIZCARD_* environment variables.
func Load() (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	dataDir, err := dataDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(dataDir, appName))

	v.SetDefault("env", "local")
	v.SetDefault("db_path", filepath.Join(dataDir, appName, appName+".db"))
	v.SetDefault("log_path", filepath.Join(dataDir, appName, appName+".log"))
	v.SetDefault("history_limit", 50)

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("history_limit must be positive, got %d", cfg.HistoryLimit)
	}

	return &cfg, nil
}

// dataDir resolves $XDG_DATA_HOME, falling back to ~/.local/share.
func dataDir() (string, error) {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}
