package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/legacykeeper/internal/flagx"
	"github.com/dmitrijs2005/legacykeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of Config. Empty fields leave the
// corresponding Config value untouched. OCRDelay is a pointer so that an
// explicit zero disables the delay.
type FileConfig struct {
	DSN        string          `json:"dsn" yaml:"dsn"`
	ImagesDir  string          `json:"images_dir" yaml:"images_dir"`
	LogLevel   string          `json:"log_level" yaml:"log_level"`
	LogBackend string          `json:"log_backend" yaml:"log_backend"`
	OCRDelay   *timex.Duration `json:"ocr_delay" yaml:"ocr_delay"`
	Timezone   string          `json:"timezone" yaml:"timezone"`
}

// parseFile overlays cfg with the file named by -c/--config, if present.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.DSN != "" {
		cfg.DSN = fc.DSN
	}
	if fc.ImagesDir != "" {
		cfg.ImagesDir = fc.ImagesDir
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogBackend != "" {
		cfg.LogBackend = fc.LogBackend
	}
	if fc.OCRDelay != nil {
		cfg.OCRDelay = fc.OCRDelay.Duration
	}
	if fc.Timezone != "" {
		cfg.Timezone = fc.Timezone
	}
}
