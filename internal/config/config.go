package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the service configuration.
// Precedence, lowest first: Defaults, the optional YAML file, environment variables.
type Config struct {
	// DataPath is the api-response.json book file. Relative paths in a YAML file
	// are resolved against the file's directory.
	DataPath string        `yaml:"data_path" env:"BOOK_JSON_PATH"`
	Server   ServerConfig  `yaml:"server"`
	Logging  LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port               string        `yaml:"port" env:"API_PORT"`
	Env                string        `yaml:"env" env:"API_ENV"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	ReadTimeout        time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout       time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

func Defaults() Config {
	return Config{
		DataPath: "./api-response.json",
		Server: ServerConfig{
			Port:               "8080",
			Env:                "development",
			CORSAllowedOrigins: []string{"*"},
			ReadTimeout:        10 * time.Second,
			WriteTimeout:       10 * time.Second,
			ShutdownTimeout:    10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration. path may be empty, in which case CONFIG_FILE
// is consulted and, failing that, only defaults and the environment apply.
// A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked merges defaults, file and environment, but does not validate.
func LoadUnchecked(path string) (*Config, error) {
	c := Defaults()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := mergeFile(&c, path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &c, nil
}

func mergeFile(c *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	// Only a data_path written in the file is relative to the file.
	var set struct {
		DataPath *string `yaml:"data_path"`
	}
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if set.DataPath != nil && !filepath.IsAbs(c.DataPath) {
		// Prefer the config file's directory, but fall back to the path as given
		// (relative to cwd) if nothing exists there.
		cand := filepath.Join(filepath.Dir(path), c.DataPath)
		if _, err := os.Stat(cand); err == nil {
			c.DataPath = cand
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.DataPath) == "" {
		return errors.New("data_path is required")
	}
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server.port is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be > 0")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New("server read/write timeouts must be >= 0")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}

// IsProduction reports whether the service runs with API_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}
