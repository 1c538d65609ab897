package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/legacykeeper/internal/logging"
)

// Config holds runtime settings for the legacykeeper CLI.
type Config struct {
	DSN        string
	ImagesDir  string
	LogLevel   string
	LogBackend string
	OCRDelay   time.Duration
	Timezone   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DSN = "legacy.db"
	c.ImagesDir = "images"
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
	c.OCRDelay = 500 * time.Millisecond
	c.Timezone = "Local"
}

// Location resolves Timezone. An empty value or "Local" is the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LoadConfig constructs a Config from defaults, then the config file (if
// any), then command-line flags read from os.Args.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
