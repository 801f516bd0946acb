package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/attrdoc/internal/catalog"
	"git.home.luguber.info/inful/attrdoc/internal/config"
	"git.home.luguber.info/inful/attrdoc/internal/history"
	"git.home.luguber.info/inful/attrdoc/internal/logfields"
	"git.home.luguber.info/inful/attrdoc/internal/render"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output    string `short:"o" help:"Output directory (overrides config)"`
	Format    string `short:"f" help:"Output format: rst or markdown (overrides config)"`
	NoHistory bool   `help:"Do not record this run in the history database"`
}

// Run executes the generate command.
func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if g.Output != "" {
		cfg.Output.Directory = g.Output
	}
	if g.Format != "" {
		cfg.Output.Format = g.Format
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	run := history.NewRun(string(format))
	started := time.Now()

	out, entryCount, genErr := generate(cfg, format)

	run.Duration = time.Since(started)
	run.EntryCount = entryCount
	run.Status = history.StatusSuccess
	if genErr != nil {
		run.Status = history.StatusFailed
	} else {
		digest := sha256.Sum256(out)
		run.OutputDigest = hex.EncodeToString(digest[:])
	}

	if !g.NoHistory {
		if err := recordRun(cfg, run); err != nil {
			slog.Warn("Failed to record generation run", logfields.Error(err))
		}
	}

	if genErr != nil {
		return genErr
	}

	slog.Info("Documentation generated",
		logfields.RunID(run.ID),
		logfields.Format(string(format)),
		logfields.Entries(entryCount),
		logfields.DurationMS(float64(run.Duration.Milliseconds())))
	return nil
}

// generate renders the catalog and writes the output file, returning
// the rendered bytes for digesting.
func generate(cfg *config.Config, format render.Format) ([]byte, int, error) {
	reg, err := catalog.Load(cfg.Catalogs...)
	if err != nil {
		return nil, 0, err
	}

	renderer, err := render.New(format)
	if err != nil {
		return nil, 0, err
	}
	out, err := renderer.Registry(cfg.Title, reg)
	if err != nil {
		return nil, reg.Len(), err
	}

	filename := fmt.Sprintf("%s.%s", cfg.Output.Filename, format.Ext())
	path, err := render.WriteOutput(cfg.Output.Directory, filename, out)
	if err != nil {
		return nil, reg.Len(), err
	}
	slog.Info("Wrote output file", logfields.Path(path))
	return out, reg.Len(), nil
}

func recordRun(cfg *config.Config, run history.Run) error {
	store, err := history.NewStore(cfg.History.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return store.Record(ctx, run)
}
