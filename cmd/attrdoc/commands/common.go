package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/attrdoc/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"attrdoc.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Render the attribute-set catalog to the output directory"`
	Lint     LintCmd     `cmd:"" help:"Check catalog entries for authoring mistakes"`
	List     ListCmd     `cmd:"" help:"List catalog entries"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Preview  PreviewCmd  `cmd:"" help:"Serve an HTML preview with live rebuild"`
	History  HistoryCmd  `cmd:"" help:"Show recent generation runs"`
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

// loadConfig loads the configured file, or falls back to defaults when
// it does not exist. The built-in catalog means every command can run
// without any configuration at all.
func loadConfig(root *CLI) (*config.Config, error) {
	if _, err := os.Stat(root.Config); os.IsNotExist(err) {
		slog.Debug("No configuration file, using defaults", "path", root.Config)
		return config.Default(), nil
	}
	return config.Load(root.Config)
}
