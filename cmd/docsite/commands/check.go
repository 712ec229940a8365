package commands

import (
	"fmt"
	"log/slog"
	"os"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/linkcheck"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/sitedata"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Rendered bool `help:"Also check links in the rendered site under the output directory"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	sc := sitedata.Config()
	gen := newGenerator(cfg)

	problems := site.CheckLeaves(sc.Theme.Nav)
	for _, prefix := range sc.Theme.Sidebar.Sections() {
		problems = append(problems, site.CheckLeaves(sc.Theme.Sidebar[prefix].Items)...)
	}

	contentDir := gen.ContentDir()
	if _, err := os.Stat(contentDir); err != nil {
		slog.Warn("Content directory missing, skipping page checks", logfields.Path(contentDir))
	} else {
		problems = append(problems, linkcheck.CheckConfig(sc, contentDir)...)
		content, err := linkcheck.CheckContent(contentDir)
		if err != nil {
			return err
		}
		problems = append(problems, content...)
	}

	if c.Rendered {
		rendered, err := linkcheck.CheckRendered(gen.PublicDir())
		if err != nil {
			return err
		}
		problems = append(problems, rendered...)
	}

	out := g.out()
	for _, p := range problems {
		_, _ = fmt.Fprintln(out, p.String())
	}
	if len(problems) > 0 {
		return ferrors.NewError(ferrors.CategoryLinks, fmt.Sprintf("%d link problems found", len(problems))).
			WithContext("count", len(problems)).Build()
	}
	_, _ = fmt.Fprintln(out, "No problems found")
	return nil
}
