package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/attrdoc/internal/catalog"
	"git.home.luguber.info/inful/attrdoc/internal/lint"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
}

// Run executes the lint command.
func (l *LintCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	entries, err := catalog.LoadEntries(cfg.Catalogs...)
	if err != nil {
		return err
	}

	linter := lint.NewLinter(&lint.Config{
		Quiet:  l.Quiet,
		Format: l.Format,
	})
	result := linter.LintEntries(entries)

	formatter, err := lint.NewFormatter(l.Format)
	if err != nil {
		return err
	}
	if err := formatter.Format(os.Stdout, result); err != nil {
		return err
	}

	if result.HasErrors() {
		return fmt.Errorf("lint found %d error(s)", result.Count(lint.SeverityError))
	}
	return nil
}
