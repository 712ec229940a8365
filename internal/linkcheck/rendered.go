package linkcheck

import (
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// htmlLinks returns the link targets of a parsed document.
func htmlLinks(doc *html.Node) []string {
	var links []string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := linkAttrs[n.Data]; ok {
				if v := getAttr(n, attr); v != "" {
					links = append(links, v)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return links
}

// CheckRendered reports internal links in the HTML under publicDir whose
// target was not rendered.
func CheckRendered(publicDir string) ([]site.Problem, error) {
	var problems []site.Problem
	err := filepath.WalkDir(publicDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".html" {
			return nil
		}
		// #nosec G304 -- walking the rendered site
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		doc, err := html.Parse(f)
		_ = f.Close()
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryValidation, "failed to parse HTML").
				WithContext("file", p).Build()
		}

		rel, _ := filepath.Rel(publicDir, p)
		rel = filepath.ToSlash(rel)
		for _, link := range htmlLinks(doc) {
			if !checkable(link) {
				continue
			}
			if !renderedTargetExists(publicDir, rel, link) {
				problems = append(problems, site.Problem{Location: rel, Target: link, Message: "broken link"})
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := ferrors.AsClassified(err); ok {
			return nil, err
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to scan rendered site").
			WithContext("dir", publicDir).Build()
	}
	return problems, nil
}

func renderedTargetExists(publicDir, fromRel, link string) bool {
	target := stripFragment(link)
	if target == "" {
		return true
	}
	if decoded, err := url.PathUnescape(target); err == nil {
		target = decoded
	}
	if !strings.HasPrefix(target, "/") {
		target = path.Join("/", path.Dir(fromRel), target)
	}
	clean := strings.TrimPrefix(path.Clean(target), "/")
	for _, c := range []string{clean, path.Join(clean, "index.html"), clean + ".html"} {
		if _, ok := existingFile(filepath.Join(publicDir, filepath.FromSlash(c))); ok {
			return true
		}
	}
	return false
}
