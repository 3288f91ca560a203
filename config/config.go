// Package config provides YAML configuration of the ledger tooling.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/core/storage/dbconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultLogLevel    = "info"
	DefaultLogEncoding = "console"
	DefaultMaxSizeMB   = 100
	DefaultMaxBackups  = 3
	DefaultMaxAgeDays  = 28
)

// Logger configures logging.
type Logger struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"Level"`
	// Encoding is either console or json.
	Encoding string `yaml:"Encoding"`
	// File enables rotated file output when non-empty.
	File       string `yaml:"File"`
	MaxSizeMB  int    `yaml:"MaxSizeMB"`
	MaxBackups int    `yaml:"MaxBackups"`
	MaxAgeDays int    `yaml:"MaxAgeDays"`
}

// Config is a root configuration structure.
type Config struct {
	Ledger dbconfig.DBConfiguration `yaml:"Ledger"`
	Logger Logger                   `yaml:"Logger"`
	// DefaultContract resolves method names without contract prefix.
	DefaultContract string `yaml:"DefaultContract"`
}

// Default returns configuration with in-memory world state and console
// logging at info level.
func Default() Config {
	var c Config
	c.setDefaults()
	return c
}

// Load reads configuration from the YAML file. Empty path means Default.
// Fields missing in the file keep their default values.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	return Decode(data)
}

// Decode parses YAML configuration. Unknown fields are rejected.
func Decode(data []byte) (Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// empty document leaves all defaults
	err := dec.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode YAML config: %w", err)
	}

	c.setDefaults()

	return c, c.validate()
}

func (c *Config) setDefaults() {
	if c.Ledger.Type == "" {
		c.Ledger.Type = dbconfig.InMemoryDB
	}
	if c.Logger.Level == "" {
		c.Logger.Level = DefaultLogLevel
	}
	if c.Logger.Encoding == "" {
		c.Logger.Encoding = DefaultLogEncoding
	}
	if c.Logger.MaxSizeMB == 0 {
		c.Logger.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Logger.MaxBackups == 0 {
		c.Logger.MaxBackups = DefaultMaxBackups
	}
	if c.Logger.MaxAgeDays == 0 {
		c.Logger.MaxAgeDays = DefaultMaxAgeDays
	}
}

func (c Config) validate() error {
	switch c.Ledger.Type {
	case dbconfig.InMemoryDB:
	case dbconfig.BoltDB:
		if c.Ledger.BoltDBOptions.FilePath == "" {
			return fmt.Errorf("missing BoltDB file path")
		}
	case dbconfig.LevelDB:
		if c.Ledger.LevelDBOptions.DataDirectoryPath == "" {
			return fmt.Errorf("missing LevelDB data directory path")
		}
	default:
		return fmt.Errorf("unsupported ledger type '%s'", c.Ledger.Type)
	}

	if _, err := zapcore.ParseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	switch c.Logger.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log encoding '%s'", c.Logger.Encoding)
	}

	if c.Logger.MaxSizeMB < 0 || c.Logger.MaxBackups < 0 || c.Logger.MaxAgeDays < 0 {
		return fmt.Errorf("negative log rotation limits")
	}

	return nil
}
