package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for the Hugo site (overrides config)"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen := newGenerator(cfg)
	report, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	printReport(g, report)
	if err := gen.Render(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Rendered site in %s\n", gen.PublicDir())
	return nil
}
