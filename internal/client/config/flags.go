package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/legacykeeper/internal/flagx"
)

var ownFlags = []string{
	"-d", "--dsn",
	"-m", "--images-dir",
	"-l", "--log-level",
}

// parseFlags overlays cfg with -d/--dsn, -m/--images-dir and -l/--log-level
// taken from args. Other flags
// are filtered out with flagx.FilterArgs so the command tree can own them.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("legacy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DSN, "d", cfg.DSN, "path to the vault database")
	fs.StringVar(&cfg.DSN, "dsn", cfg.DSN, "path to the vault database")
	fs.StringVar(&cfg.ImagesDir, "m", cfg.ImagesDir, "directory for imported images")
	fs.StringVar(&cfg.ImagesDir, "images-dir", cfg.ImagesDir, "directory for imported images")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, ownFlags))
}
