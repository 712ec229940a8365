package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/hugo"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/sitedata"
)

// Global is shared with every subcommand.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsite.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Write an example configuration and stub pages for the site structure"`
	Generate GenerateCmd `cmd:"" help:"Generate the Hugo site without rendering"`
	Build    BuildCmd    `cmd:"" help:"Generate and render the site with Hugo"`
	Serve    ServeCmd    `cmd:"" help:"Serve the rendered site locally and regenerate on changes"`
	Check    CheckCmd    `cmd:"" help:"Check navigation, sidebars and page links"`
	Nav      NavCmd      `cmd:"" help:"Print the navigation and sidebar trees"`
}

// AfterApply runs after flag parsing; setup logging once. The level comes
// from --verbose, then DOCSITE_LOG_LEVEL, then defaults to info.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.logLevel()})))
	return nil
}

func (c *CLI) logLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	level := slog.LevelInfo
	if v := strings.TrimSpace(os.Getenv(config.LogLevelEnv())); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			slog.Warn("Ignoring invalid log level", "value", v, logfields.Error(err))
			return slog.LevelInfo
		}
	}
	return level
}

// loadConfig reads the configuration, falling back to defaults when the
// file does not exist.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.LoadOrDefault(c.Config)
}

// newGenerator builds a generator for the compiled-in site. The head
// scripts report to the configured analytics account.
func newGenerator(cfg *config.Config, opts ...hugo.Option) *hugo.Generator {
	sc := sitedata.Config()
	if id := cfg.Analytics.AccountID; id != "" {
		sc.Head = sitedata.Head(id)
	}
	return hugo.NewGenerator(sc, cfg, opts...)
}
