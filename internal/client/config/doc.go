// Package config loads runtime configuration for the legacykeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c / --config. Files ending in
//     .yaml or .yml are decoded with gopkg.in/yaml.v3, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d, --dsn string          path (DSN) of the SQLite vault database
//	-m, --images-dir string   directory that stores imported images
//	-l, --log-level string    log level: debug, info, warn, error
//
// # File schema
//
//	{
//	  "dsn": "legacy.db",
//	  "images_dir": "images",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "ocr_delay": "500ms",
//	  "timezone": "Local"
//	}
//
// Durations use timex.Duration, so "500ms" and integer nanoseconds both work.
package config
