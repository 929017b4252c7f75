package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/belay-dotnet/docbuild/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docbuild.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Generate API reference pages from XML documentation exports"`
	Fallback FallbackCmd `cmd:"" help:"Write fallback API reference pages"`
	Validate ValidateCmd `cmd:"" help:"Validate a built site before deployment"`
	Convert  ConvertCmd  `cmd:"" help:"Convert an exported HTML reference tree to Markdown"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the configuration file when present, otherwise the
// built-in defaults. CI runs this tool without a config file.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("No configuration file, using defaults", "path", path)
		return config.Default(), nil
	}
	return config.Load(path)
}
