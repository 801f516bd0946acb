package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"git.home.luguber.info/inful/attrdoc/internal/catalog"
)

// ListCmd implements the 'list' command.
type ListCmd struct{}

// Run prints the catalog entries in document order.
func (l *ListCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	reg, err := catalog.Load(cfg.Catalogs...)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFO ELEMENT\tINHERITS")
	for _, e := range reg.Entries() {
		inherits := e.InheritsFrom
		if inherits == "" {
			inherits = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.FOElement, inherits)
	}
	return w.Flush()
}
