package commands

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/linkcheck"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/sitedata"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
	Pages bool `help:"Create stub pages for navigation and sidebar links without a page" default:"true" negatable:""`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	out := g.out()
	_, _ = fmt.Fprintln(out, "Initializing docsite project")
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force); err != nil {
		_, _ = fmt.Fprintln(out, "Initialization failed")
		return err
	}
	if i.Pages {
		cfg, err := config.Load(root.Config)
		if err != nil {
			return err
		}
		created, err := StubPages(sitedata.Config(), newGenerator(cfg).ContentDir())
		if err != nil {
			return err
		}
		for _, p := range created {
			_, _ = fmt.Fprintf(out, "Created %s\n", p)
		}
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}

// StubPages writes a page titled after the entry for every internal nav or
// sidebar link that has no page under contentDir. It returns the files
// created.
func StubPages(sc *site.SiteConfig, contentDir string) ([]string, error) {
	titles := map[string]string{}
	var order []string
	collect := func(entries []site.Entry) {
		_ = site.Walk(entries, func(e site.Entry, _ int, _ []string) error {
			link := strings.TrimSpace(e.Link)
			if link == "" || site.IsExternal(link) {
				return nil
			}
			if _, seen := titles[link]; !seen {
				order = append(order, link)
				titles[link] = e.Text
			}
			return nil
		})
	}
	collect(sc.Theme.Nav)
	for _, prefix := range sc.Theme.Sidebar.Sections() {
		collect(sc.Theme.Sidebar[prefix].Absolute())
	}

	var created []string
	for _, link := range order {
		if _, ok := linkcheck.ResolvePage(contentDir, link); ok {
			continue
		}
		file := stubPath(contentDir, link)
		if authoredIndex(filepath.Dir(file)) && filepath.Base(file) == "_index.md" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
			return created, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create directory").
				WithContext("path", filepath.Dir(file)).Build()
		}
		content := fmt.Sprintf("---\ntitle: %q\n---\n\n# %s\n", titles[link], titles[link])
		if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
			return created, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write page").
				WithContext("path", file).Build()
		}
		created = append(created, file)
	}
	return created, nil
}

// authoredIndex reports whether dir already has an index page that only
// needs renaming. check reports those; a stub next to it would shadow it.
func authoredIndex(dir string) bool {
	for _, name := range []string{"index.md", "README.md"} {
		if fi, err := os.Stat(filepath.Join(dir, name)); err == nil && !fi.IsDir() {
			return true
		}
	}
	return false
}

// stubPath is the file a link should resolve to: directory links get a
// section _index.md, page links a .md file.
func stubPath(contentDir, link string) string {
	if i := strings.IndexAny(link, "#?"); i >= 0 {
		link = link[:i]
	}
	clean := strings.TrimPrefix(path.Clean("/"+link), "/")
	if clean == "" || strings.HasSuffix(link, "/") {
		return filepath.Join(contentDir, filepath.FromSlash(path.Join(clean, "_index.md")))
	}
	return filepath.Join(contentDir, filepath.FromSlash(clean+".md"))
}
