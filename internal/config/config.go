// Package config loads the server configuration from .env, an optional YAML
// file and the environment.
package config

import (
	"strconv"
	"time"
)

// Dataset source kinds.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Words    WordsConfig    `yaml:"words"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"HTTP_HOST"`
	Port            int           `yaml:"port"             env:"PORT"                  env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HTTP_READ_TIMEOUT"     env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HTTP_WRITE_TIMEOUT"    env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"HTTP_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// WordsConfig selects where the practice dataset is read from.
type WordsConfig struct {
	Source   string `yaml:"source"    env:"WORDS_SOURCE"    env-default:"file"`
	DataPath string `yaml:"data_path" env:"WORDS_DATA_PATH" env-default:"data/words.json"`
}

// DatabaseConfig holds PostgreSQL settings, used only by the postgres source.
type DatabaseConfig struct {
	URL         string        `yaml:"url"          env:"DATABASE_URL"`
	LoadTimeout time.Duration `yaml:"load_timeout" env:"DATABASE_LOAD_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"300"`
}
