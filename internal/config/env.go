// Package config loads shiptrack settings from .env, SHIPTRACK_* variables
// and a YAML route file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvConfig          = "SHIPTRACK_CONFIG"
	EnvRefreshInterval = "SHIPTRACK_REFRESH_INTERVAL"
	EnvMetricsAddr     = "SHIPTRACK_METRICS_ADDR"
	EnvLogFile         = "SHIPTRACK_LOG_FILE"
	EnvTZ              = "SHIPTRACK_TZ"
	EnvColor           = "SHIPTRACK_COLOR"
)

// DefaultRefreshInterval is how often a tracked shipment is re-resolved.
const DefaultRefreshInterval = 5 * time.Second

// Env holds settings taken from the environment. Command-line flags take
// precedence over these.
type Env struct {
	ConfigPath      string
	RefreshInterval time.Duration
	MetricsAddr     string // empty disables the metrics server
	LogFile         string
	Color           string
	Location        *time.Location
}

// LoadEnv reads .env files (missing files are ignored) and SHIPTRACK_*
// variables.
func LoadEnv(files ...string) (*Env, error) {
	_ = godotenv.Load(files...)

	env := &Env{
		ConfigPath:      os.Getenv(EnvConfig),
		RefreshInterval: DefaultRefreshInterval,
		MetricsAddr:     os.Getenv(EnvMetricsAddr),
		LogFile:         os.Getenv(EnvLogFile),
		Color:           getenvDefault(EnvColor, "auto"),
		Location:        time.Local,
	}

	if v := os.Getenv(EnvRefreshInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d <= 0 {
			err = errNonPositive
		}
		if err != nil {
			return nil, &EnvError{Key: EnvRefreshInterval, Value: v, Err: err}
		}
		env.RefreshInterval = d
	}

	if v := strings.TrimSpace(os.Getenv(EnvTZ)); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, &EnvError{Key: EnvTZ, Value: v, Err: err}
		}
		env.Location = loc
	}

	return env, nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
