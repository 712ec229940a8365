// Package linkcheck verifies that the links of the site configuration, the
// markdown sources and the rendered pages point at something that exists.
package linkcheck

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// CheckConfig reports nav and sidebar links that do not resolve to a
// markdown page under contentDir. External links are not checked.
func CheckConfig(sc *site.SiteConfig, contentDir string) []site.Problem {
	var problems []site.Problem
	check := func(scope string, entries []site.Entry) {
		_ = site.Walk(entries, func(e site.Entry, _ int, trail []string) error {
			link := strings.TrimSpace(e.Link)
			if link == "" || site.IsExternal(link) {
				return nil
			}
			if _, ok := ResolvePage(contentDir, link); !ok {
				problems = append(problems, site.Problem{
					Location: location(scope, trail, e.Text),
					Target:   link,
					Message:  missingPageMessage(contentDir, link),
				})
			}
			return nil
		})
	}

	check("nav", sc.Theme.Nav)
	for _, prefix := range sc.Theme.Sidebar.Sections() {
		check("sidebar "+prefix, sc.Theme.Sidebar[prefix].Absolute())
	}
	return problems
}

func location(scope string, trail []string, text string) string {
	parts := append([]string{scope}, trail...)
	return strings.Join(append(parts, text), " > ")
}

// ResolvePage maps a site path to the markdown source Hugo renders at it:
// /a/b may be a/b.md, a/b/_index.md or a leaf bundle a/b/index.md; /a/ may
// be a/_index.md or a leaf bundle. A leaf bundle only counts when the
// directory holds no other pages, since Hugo turns those into resources.
// It returns the file found.
func ResolvePage(contentDir, link string) (string, bool) {
	p := stripFragment(link)
	p = strings.TrimSuffix(p, ".html")
	if strings.HasSuffix(p, ".md") {
		return existingFile(filepath.Join(contentDir, filepath.FromSlash(path.Clean("/"+p))))
	}

	clean := strings.TrimPrefix(path.Clean("/"+p), "/")
	dir := filepath.Join(contentDir, filepath.FromSlash(clean))
	if clean != "" && !strings.HasSuffix(p, "/") {
		if f, ok := existingFile(dir + ".md"); ok {
			return f, true
		}
	}
	if f, ok := existingFile(filepath.Join(dir, "_index.md")); ok {
		return f, true
	}
	if f, ok := existingFile(filepath.Join(dir, "index.md")); ok && !hasChildPages(dir) {
		return f, true
	}
	return "", false
}

// missingPageMessage explains why link has no page, naming the index file
// that Hugo will not render as the section page.
func missingPageMessage(contentDir, link string) string {
	clean := strings.TrimPrefix(path.Clean("/"+stripFragment(link)), "/")
	dir := filepath.Join(contentDir, filepath.FromSlash(clean))
	if _, ok := existingFile(filepath.Join(dir, "index.md")); ok {
		return "index.md hides the pages below it, rename to _index.md"
	}
	if _, ok := existingFile(filepath.Join(dir, "README.md")); ok {
		return "README.md is not a section page, rename to _index.md"
	}
	return "no page for link"
}

// hasChildPages reports whether dir holds markdown pages other than its
// index file, directly or in a subdirectory.
func hasChildPages(dir string) bool {
	found := false
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(p) == ".md" && p != filepath.Join(dir, "index.md") {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

func stripFragment(link string) string {
	if i := strings.IndexAny(link, "#?"); i >= 0 {
		return link[:i]
	}
	return link
}

func existingFile(p string) (string, bool) {
	fi, err := os.Stat(p)
	if err != nil || fi.IsDir() {
		return "", false
	}
	return p, true
}
