package linkcheck

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// markdownLinks returns link and image destinations of a markdown body,
// including reference definitions.
func markdownLinks(body []byte) []string {
	ctx := parser.NewContext()
	root := goldmark.New().Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	var links []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			links = append(links, string(node.Destination))
		case *gmast.Image:
			links = append(links, string(node.Destination))
		}
		return gmast.WalkContinue, nil
	})

	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool { return string(refs[i].Label()) < string(refs[j].Label()) })
	for _, ref := range refs {
		links = append(links, string(ref.Destination()))
	}
	return links
}

// CheckContent reports links in markdown files under contentDir that do
// not resolve. Relative links resolve against the linking file; absolute
// links against contentDir.
func CheckContent(contentDir string) ([]site.Problem, error) {
	var problems []site.Problem
	err := filepath.WalkDir(contentDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != contentDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}
		// #nosec G304 -- walking the configured content directory
		body, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(contentDir, p)
		rel = filepath.ToSlash(rel)
		seen := map[string]bool{}
		for _, link := range markdownLinks(body) {
			if seen[link] || !checkable(link) {
				continue
			}
			seen[link] = true
			if !contentTargetExists(contentDir, rel, link) {
				problems = append(problems, site.Problem{Location: rel, Target: link, Message: "broken link"})
			}
		}
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to scan content").
			WithContext("dir", contentDir).Build()
	}
	return problems, nil
}

func checkable(link string) bool {
	link = strings.TrimSpace(link)
	return link != "" && !strings.HasPrefix(link, "#") && !site.IsExternal(link) && !strings.Contains(link, ":")
}

func contentTargetExists(contentDir, fromRel, link string) bool {
	target := stripFragment(link)
	if !strings.HasPrefix(target, "/") {
		target = path.Join("/", path.Dir(fromRel), target)
		if strings.HasSuffix(link, "/") {
			target += "/"
		}
	}
	if _, ok := ResolvePage(contentDir, target); ok {
		return true
	}
	// Images and other static assets.
	_, ok := existingFile(filepath.Join(contentDir, filepath.FromSlash(path.Clean(target))))
	return ok
}
