// Package config resolves process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// EnvAppName names the application shown in the greeting.
	EnvAppName = "APP_NAME"
	// EnvPort overrides the listen port.
	EnvPort = "PORT"

	// DefaultPort is used when PORT is not set.
	DefaultPort = "8000"
)

// ErrInvalidPort is returned when PORT is not a number in 1..65535.
var ErrInvalidPort = errors.New("invalid port")

// Config is resolved once at startup and injected into handlers.
type Config struct {
	// AppName is nil when APP_NAME is unset. A set but empty variable yields a
	// non-nil pointer to "".
	AppName *string
	Port    string
}

// Addr returns the listen address bound on all interfaces.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads an optional .env file from the working directory, then resolves
// the configuration from the process environment. Variables already present in
// the environment take precedence over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup resolves the configuration using lookup, which has the signature
// of os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{Port: DefaultPort}

	if name, ok := lookup(EnvAppName); ok {
		cfg.AppName = &name
	}

	if port, ok := lookup(EnvPort); ok && port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvPort, port, ErrInvalidPort)
		}
		cfg.Port = strconv.Itoa(n)
	}

	return cfg, nil
}
