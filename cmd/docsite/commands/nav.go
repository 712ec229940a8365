package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/sitedata"
)

// NavCmd implements the 'nav' command.
type NavCmd struct {
	Format  string `short:"f" help:"Output format" enum:"tree,yaml,json" default:"tree"`
	Section string `short:"s" help:"Only print the sidebar for this section prefix"`
}

type navDump struct {
	Nav      []site.Entry            `yaml:"nav" json:"nav"`
	Sidebars map[string][]site.Entry `yaml:"sidebars" json:"sidebars"`
}

func (n *NavCmd) Run(g *Global, _ *CLI) error {
	sc := sitedata.Config()
	dump := navDump{Sidebars: map[string][]site.Entry{}}
	if n.Section == "" {
		dump.Nav = sc.Theme.Nav
	}
	for _, prefix := range sc.Theme.Sidebar.Sections() {
		if n.Section != "" && prefix != n.Section {
			continue
		}
		dump.Sidebars[prefix] = sc.Theme.Sidebar[prefix].Absolute()
	}
	if n.Section != "" && len(dump.Sidebars) == 0 {
		return ferrors.NewError(ferrors.CategoryNotFound, "no sidebar for section").
			WithContext("section", n.Section).Build()
	}

	out := g.out()
	switch n.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dump)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(dump); err != nil {
			return err
		}
		return enc.Close()
	}

	if dump.Nav != nil {
		_, _ = fmt.Fprintln(out, "nav")
		printTree(g, dump.Nav)
	}
	for _, prefix := range sc.Theme.Sidebar.Sections() {
		items, ok := dump.Sidebars[prefix]
		if !ok {
			continue
		}
		_, _ = fmt.Fprintf(out, "sidebar %s\n", prefix)
		printTree(g, items)
	}
	return nil
}

func printTree(g *Global, entries []site.Entry) {
	out := g.out()
	_ = site.Walk(entries, func(e site.Entry, depth int, _ []string) error {
		line := strings.Repeat("  ", depth+1) + e.Text
		if e.Link != "" {
			line += " -> " + e.Link
		}
		if e.Collapsed != nil && *e.Collapsed {
			line += " [collapsed]"
		}
		_, _ = fmt.Fprintln(out, line)
		return nil
	})
}
