package common

import (
	"log/slog"

	"github.com/dtnitsch/product-page-parser/models"
	"github.com/urfave/cli/v2"
)

// SharedFlags returns the flags every command accepts.
func SharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file (default: " + models.DefaultConfigFile + " when present)",
			EnvVars: []string{"PPP_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format: json or yaml",
			EnvVars: []string{"PPP_FORMAT"},
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log per-worker progress",
		},
	}
}

// NewLogger builds the JSON logger for a command, writing to the app's
// error stream.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	} else if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig loads the file named by --config, or the default file if it exists.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	return models.LoadConfig(c.String("config"))
}
