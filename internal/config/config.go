// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/cslb/ldtoolbox-mcp/internal/legal"
)

// Config is the root server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Patterns PatternsConfig `yaml:"patterns"`
	Parser   ParserConfig   `yaml:"parser"`
	Batch    BatchConfig    `yaml:"batch"`
	PLSS     PLSSConfig     `yaml:"plss"`
}

// ServerConfig holds the MCP implementation identity.
type ServerConfig struct {
	Name    string `yaml:"name"    env:"SERVER_NAME"    env-default:"ldtoolbox-mcp"`
	Version string `yaml:"version" env:"SERVER_VERSION" env-default:"0.1.0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// PatternsConfig points at the keyword table. An empty path selects the
// embedded default table.
type PatternsConfig struct {
	Path string `yaml:"path" env:"PATTERNS_PATH"`
}

// ParserConfig holds legal description parser settings.
type ParserConfig struct {
	MaxLotSpan int `yaml:"max_lot_span" env:"PARSER_MAX_LOT_SPAN" env-default:"200"`
}

// BatchConfig holds batch runner settings.
type BatchConfig struct {
	Workers int `yaml:"workers" env:"BATCH_WORKERS" env-default:"4"`
	// ConsistencyFields overrides the lease attributes compared across
	// records of one transaction.
	ConsistencyFields []string `yaml:"consistency_fields" env:"BATCH_CONSISTENCY_FIELDS" env-separator:","`
}

// PLSSConfig holds first-division settings.
type PLSSConfig struct {
	State string `yaml:"state" env:"PLSS_STATE" env-default:"CO"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. The file path is path if non-empty,
// else CONFIG_PATH, else "./config.yaml". A missing file is only an error
// when the path was given explicitly.
func Load(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv("CONFIG_PATH")
		explicitPath = path != ""
	}
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks business rules on a loaded configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	if c.Parser.MaxLotSpan < 1 || c.Parser.MaxLotSpan > legal.MaxLotSpanLimit {
		return fmt.Errorf("parser.max_lot_span must be between 1 and %d (got %d)", legal.MaxLotSpanLimit, c.Parser.MaxLotSpan)
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("batch.workers must be > 0 (got %d)", c.Batch.Workers)
	}
	if len(c.PLSS.State) != 2 {
		return fmt.Errorf("plss.state must be a two-letter code (got %q)", c.PLSS.State)
	}
	return nil
}
