package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/GustavoCaso/expense-tracker/internal/logger"
)

type Config struct {
	Store  string        `toml:"store"`
	Logger logger.Config `toml:"logger"`
}

const (
	DefaultFile = "expense-tracker.toml"

	defaultStore     = "expenses.json"
	defaultLogLevel  = logger.LevelWarn
	defaultLogFormat = logger.FormatText
	defaultLogOutput = "stderr"
)

// LoadEnv loads environment variables from the given dotenv files, or
// ".env" when none is provided. Missing files are ignored.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load env file: %w", err)
	}

	return nil
}

// Parse reads the TOML file when it exists, then applies the
// EXPENSE_TRACKER_* environment variables and the defaults.
func Parse(file string) (*Config, error) {
	conf := &Config{}

	content, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err = toml.Unmarshal(content, conf); err != nil {
			return nil, fmt.Errorf("invalid configuration file %s: %w", file, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	conf.parseEnv()
	conf.setDefaults()

	return conf, nil
}

func (c *Config) parseEnv() {
	if store := os.Getenv("EXPENSE_TRACKER_STORE"); store != "" {
		c.Store = store
	}

	if level := os.Getenv("EXPENSE_TRACKER_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("EXPENSE_TRACKER_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("EXPENSE_TRACKER_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}

func (c *Config) setDefaults() {
	if c.Store == "" {
		c.Store = defaultStore
	}

	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}

	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}

	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}
}
