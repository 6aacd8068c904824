package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LEDGER_"

// Config is the full process configuration. Precedence, lowest to highest:
// built-in defaults, optional YAML file, LEDGER_-prefixed environment
// variables (LEDGER_POSTGRES_PASSWORD -> postgres.password).
type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	Log      LogConfig      `koanf:"log"`
	Postgres PostgresConfig `koanf:"postgres"`
	Operator OperatorConfig `koanf:"operator"`
	Display  DisplayConfig  `koanf:"display"`
	Rates    []RateConfig   `koanf:"rates"`
}

type HTTPConfig struct {
	Port string `koanf:"port"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type PostgresConfig struct {
	Address  string `koanf:"address"`
	Port     string `koanf:"port"`
	DB       string `koanf:"db"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

type OperatorConfig struct {
	Workers int `koanf:"workers"`
}

type DisplayConfig struct {
	// Currency is the fallback display currency for users who have not
	// set a preference.
	Currency string `koanf:"currency"`
}

// RateConfig seeds one exchange-rate pair into the in-memory rate table.
type RateConfig struct {
	From string `koanf:"from"`
	To   string `koanf:"to"`
	Rate string `koanf:"rate"`
}

// defaults match the docker compose development setup.
var defaults = map[string]interface{}{
	"http.port":         "9446",
	"log.level":         "info",
	"postgres.address":  "localhost",
	"postgres.port":     "5433",
	"postgres.db":       "postgres",
	"postgres.username": "postgres",
	"postgres.password": "testpassword",
	"operator.workers":  1,
	"display.currency":  "USD",
}

// Load reads configuration. filePath may be empty; a missing file is an
// error only when one was explicitly requested.
func Load(filePath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if filePath != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config file %s: %w", filePath, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	return &cfg, nil
}

// ConnectionString builds the postgres DSN used by both the server and the
// migration runner.
func (c *PostgresConfig) ConnectionString() string {
	return "postgres://" + c.Username + ":" + c.Password + "@" +
		c.Address + ":" + c.Port + "/" + c.DB + "?sslmode=disable"
}
