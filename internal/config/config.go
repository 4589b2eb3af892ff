// Package config reads the process environment into Config.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const (
	BaseURLEnvKey  = "SWAPI_BASE_URL"
	PersonIDEnvKey = "SWAPI_PERSON_ID"
	StyleEnvKey    = "TRYFETCH_STYLE"
	LevelEnvKey    = "LOG_LEVEL"
)

type Config struct {
	BaseURL  string `mapstructure:"SWAPI_BASE_URL"`
	PersonID int    `mapstructure:"SWAPI_PERSON_ID"`
	Style    string `mapstructure:"TRYFETCH_STYLE"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

func Default() Config {
	return Config{
		BaseURL:  "https://www.swapi.tech/api",
		PersonID: 1,
		Style:    "pipeline",
		LogLevel: "warn",
	}
}

// Load reads the current environment. A .env file is picked up by the
// caller importing godotenv/autoload.
func Load() (Config, error) {
	return FromEnviron(os.Environ())
}

// FromEnviron decodes KEY=VALUE pairs over Default. Empty values are ignored.
func FromEnviron(environ []string) (Config, error) {
	values := make(map[string]any, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok && v != "" {
			values[k] = v
		}
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(values); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var err error
	if c.PersonID <= 0 {
		err = errors.Join(err, fmt.Errorf("%s must be positive, got %d", PersonIDEnvKey, c.PersonID))
	}
	if u, perr := url.Parse(c.BaseURL); perr != nil || u.Scheme == "" || u.Host == "" {
		err = errors.Join(err, fmt.Errorf("%s must be an absolute URL, got %q", BaseURLEnvKey, c.BaseURL))
	}
	return err
}
