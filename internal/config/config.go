package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string `koanf:"postgres.address"`
	PostgresPort     string `koanf:"postgres.port"`
	PostgresDB       string `koanf:"postgres.db"`
	PostgresUsername string `koanf:"postgres.username"`
	PostgresPassword string `koanf:"postgres.password"`

	HTTPPort        string `koanf:"http.port"`
	LogLevel        string `koanf:"log.level"`
	OperatorWorkers int    `koanf:"operator.workers"`
	ImportMaxBytes  int64  `koanf:"import.maxbytes"`
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"postgres.address":  "localhost",
	"postgres.port":     "5433",
	"postgres.db":       "postgres",
	"postgres.username": "postgres",
	"postgres.password": "testpassword",
	"http.port":         "9446",
	"log.level":         "info",
	"operator.workers":  1,
	"import.maxbytes":   10 << 20,
}

var envKeys = map[string]string{
	"POSTGRES_ADDRESS":  "postgres.address",
	"POSTGRES_PORT":     "postgres.port",
	"POSTGRES_DB":       "postgres.db",
	"POSTGRES_USERNAME": "postgres.username",
	"POSTGRES_PASSWORD": "postgres.password",
	"HTTP_PORT":         "http.port",
	"LOG_LEVEL":         "log.level",
	"OPERATOR_WORKERS":  "operator.workers",
	"IMPORT_MAXBYTES":   "import.maxbytes",
}

// ProcessEnvironmentVariables loads configuration from defaults, an optional
// YAML file named by CONFIG_FILE, and the environment, in that order. A .env
// file in the working directory is loaded into the environment first.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return Load(os.Getenv("CONFIG_FILE"))
}

// Load builds a Config without touching .env files. An empty path skips the
// YAML layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		key, ok := envKeys[s]
		if !ok {
			return ""
		}
		if os.Getenv(s) == "" {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{FlatPaths: true}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.OperatorWorkers < 1 {
		cfg.OperatorWorkers = 1
	}
	return &cfg, nil
}
