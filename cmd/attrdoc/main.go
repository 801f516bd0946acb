package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/attrdoc/cmd/attrdoc/commands"
	"git.home.luguber.info/inful/attrdoc/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("attrdoc"),
		kong.Description("Generate reference documentation for the XSL-FO attribute sets used to render docutils document-info fields."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
