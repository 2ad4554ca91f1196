// Package config loads etapa's settings from YAML, .env and ETAPA_* environment variables
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/etapa/internal/config/colors"
	"github.com/thenoetrevino/etapa/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig       `yaml:"server"`
	Database DatabaseConfig     `yaml:"database"`
	Pipeline PipelineConfig     `yaml:"pipeline"`
	Log      LogConfig          `yaml:"log"`
	Events   EventsConfig       `yaml:"events"`
	Theme    colors.ColorScheme `yaml:"theme"`
}

// ServerConfig controls the HTTP API
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// PipelineConfig is the stage list new pipelines are created with
type PipelineConfig struct {
	DefaultStages []string `yaml:"default_stages"`
	PositionBase  int      `yaml:"position_base"`
}

// LogConfig controls slog output
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // empty logs to stderr
}

// EventsConfig sizes the live-update broker queues
type EventsConfig struct {
	BroadcastBuffer int `yaml:"broadcast_buffer"`
	ClientBuffer    int `yaml:"client_buffer"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{Path: defaultDBPath()},
		Pipeline: PipelineConfig{
			DefaultStages: slices.Clone(models.DefaultStages),
			PositionBase:  0,
		},
		Log:    LogConfig{Level: "info", Format: "text"},
		Events: EventsConfig{BroadcastBuffer: 100, ClientBuffer: 10},
		Theme:  DefaultColorScheme(),
	}
}

// Load reads the config file (if any), then .env, then ETAPA_* overrides.
// A missing config file is not an error.
func Load() (*Config, error) {
	config := Default()
	// Colors are filled from the chosen preset after the file is read
	config.Theme = colors.ColorScheme{}

	if configPath, err := getConfigPath(); err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}

	// .env is optional; real environment variables take precedence over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the service cannot run with
func (c *Config) Validate() error {
	if err := models.ValidateStages(c.Pipeline.DefaultStages, c.Pipeline.PositionBase); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database: path is required")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log: unknown format %q", c.Log.Format)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// ParseLevel converts a level name to slog.Level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if level == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", level)
	}
	return l, nil
}

// applyEnv overrides values from ETAPA_* environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv("ETAPA_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("ETAPA_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("ETAPA_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ETAPA_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("ETAPA_DEFAULT_STAGES"); v != "" {
		var stages []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				stages = append(stages, s)
			}
		}
		c.Pipeline.DefaultStages = stages
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"ETAPA_POSITION_BASE", &c.Pipeline.PositionBase},
		{"ETAPA_EVENTS_BROADCAST_BUFFER", &c.Events.BroadcastBuffer},
		{"ETAPA_EVENTS_CLIENT_BUFFER", &c.Events.ClientBuffer},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if path := os.Getenv("ETAPA_CONFIG"); path != "" {
		return path, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "etapa", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "etapa", "config.yaml"), nil
}

// defaultDBPath returns ~/.etapa/etapa.db, or a relative file when there is no home directory
func defaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "etapa.db"
	}
	return filepath.Join(homeDir, ".etapa", "etapa.db")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	d := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Database.Path == "" {
		c.Database.Path = d.Database.Path
	}
	if c.Pipeline.DefaultStages == nil {
		c.Pipeline.DefaultStages = d.Pipeline.DefaultStages
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Events.BroadcastBuffer <= 0 {
		c.Events.BroadcastBuffer = d.Events.BroadcastBuffer
	}
	if c.Events.ClientBuffer <= 0 {
		c.Events.ClientBuffer = d.Events.ClientBuffer
	}
	c.Theme.ApplyDefaults()
}
