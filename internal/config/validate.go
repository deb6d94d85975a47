package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values the server cannot start with.
// Dataset problems are not configuration errors; the loader degrades instead.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port))
	}

	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout))
	}
	if c.Database.LoadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("database.load_timeout must be positive, got %s", c.Database.LoadTimeout))
	}

	switch c.Words.Source {
	case SourceFile:
		if strings.TrimSpace(c.Words.DataPath) == "" {
			errs = append(errs, errors.New("words.data_path is required for the file source"))
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			errs = append(errs, errors.New("database.url (DATABASE_URL) is required for the postgres source"))
		}
	default:
		errs = append(errs, fmt.Errorf("words.source must be %q or %q, got %q", SourceFile, SourcePostgres, c.Words.Source))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}

	if c.CORS.MaxAge < 0 {
		errs = append(errs, errors.New("cors.max_age must not be negative"))
	}

	return errors.Join(errs...)
}

// Origins splits the comma-separated origin list.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
