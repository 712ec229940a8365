package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/cmd/docsite/commands"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/version"
)

func main() {
	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name("docsite"),
		kong.Description("Generate, check and serve the protocol documentation site."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	err := parser.Run(&commands.Global{Logger: slog.Default(), Out: os.Stdout}, &cli)
	if err == nil {
		return
	}
	adapter := ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
	if cli.Verbose {
		adapter.Log(err)
	}
	_, _ = os.Stderr.WriteString(adapter.FormatError(err) + "\n")
	os.Exit(adapter.ExitCodeFor(err))
}
