// Package config loads server configuration from a YAML file, a .env file
// and the environment, in that order of increasing precedence.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvListenAddr = "PAYROLL_LISTEN_ADDR"
	EnvDBPath     = "PAYROLL_DB_PATH"
	EnvLogLevel   = "PAYROLL_LOG_LEVEL"
	EnvOrigins    = "PAYROLL_ALLOWED_ORIGINS"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	ListenAddr     string   `yaml:"listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig points at the SQLite file. ":memory:" keeps everything in
// memory for the life of the process.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig selects the zap logger flavor and level.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:     ":8080",
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		},
		Database: DatabaseConfig{Path: "payroll.db"},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads path (optional), then .env (optional), then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}
	cfg.applyEnv()

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.ListenAddr = getEnvOrDefault(EnvListenAddr, c.Server.ListenAddr)
	c.Database.Path = getEnvOrDefault(EnvDBPath, c.Database.Path)
	c.Log.Level = getEnvOrDefault(EnvLogLevel, c.Log.Level)
	if v := os.Getenv(EnvOrigins); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("config: database.path must be set")
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "":
		c.Log.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q must be debug, info, warn or error", c.Log.Level)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
