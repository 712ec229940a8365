package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/hugo"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string `short:"o" help:"Output directory for the Hugo site (overrides config)"`
	Clean  bool   `help:"Remove previously generated files first"`
}

func (g *GenerateCmd) Run(glob *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if g.Output != "" {
		cfg.Output.Directory = g.Output
	}
	if g.Clean {
		cfg.Output.Clean = true
	}

	gen := newGenerator(cfg)
	report, err := gen.Generate(context.Background())
	if err != nil {
		return err
	}
	printReport(glob, report)
	if cfg.Hugo.Render {
		return gen.Render(context.Background())
	}
	return nil
}

func printReport(g *Global, r *hugo.Report) {
	out := g.out()
	_, _ = fmt.Fprintf(out, "Generated Hugo site in %s\n", r.OutputDir)
	_, _ = fmt.Fprintf(out, "  files: %d, menu entries: %d, sidebar sections: %d, git info: %t\n",
		len(r.Files), r.MenuEntries, r.Sections, r.GitInfo)
}
