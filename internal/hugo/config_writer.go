package hugo

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
	th "git.home.luguber.info/inful/docsite/internal/theme"
)

var cjkBases = map[string]bool{"zh": true, "ja": true, "ko": true}

func isCJK(tag language.Tag) bool {
	base, _ := tag.Base()
	return cjkBases[base.String()]
}

// generateHugoConfig writes hugo.yaml and returns its path and the number
// of main menu entries.
func (g *Generator) generateHugoConfig() (string, int, error) {
	configPath := filepath.Join(g.outDir, "hugo.yaml")
	features := g.theme.Features()
	tag, err := g.site.LanguageTag()
	if err != nil {
		return "", 0, ferrors.WrapError(err, ferrors.CategoryValidation, "invalid site language").Build()
	}

	// Phase 1: core defaults
	params := map[string]any{
		"description": g.site.Description,
	}
	root := map[string]any{
		"title":                  g.site.Title,
		"baseURL":                g.config.Hugo.BaseURL,
		"languageCode":           g.site.Lang,
		"defaultContentLanguage": g.site.HugoLanguage(),
		"hasCJKLanguage":         isCJK(tag),
		"contentDir":             g.ContentDir(),
		"disablePathToLower":     true,
		"enableGitInfo":          g.git.InRepo && g.git.Head != "",
		"markup": map[string]any{
			"goldmark":        map[string]any{"renderer": map[string]any{"unsafe": true}},
			"highlight":       map[string]any{"style": "github", "lineNos": false, "tabWidth": 4, "noClasses": false},
			"tableOfContents": map[string]any{"startLevel": 2, "endLevel": 3},
		},
		"params": params,
	}

	// Phase 2: theme params
	g.theme.ApplyParams(g, params)

	// Phase 3: user overrides (deep merge)
	if g.config.Hugo.Params != nil {
		mergeParams(params, g.config.Hugo.Params)
	}

	// Phase 4: dynamic fields
	params["build_date"] = g.now().Format("2006-01-02 15:04:05")
	if g.git.Head != "" {
		params["build_commit"] = g.git.ShortHead()
	}

	// Phase 5: module/theme block
	if features.ModulePath != "" {
		root["module"] = map[string]any{"imports": []map[string]any{{"path": features.ModulePath}}}
	} else if name := g.theme.Name(); name != "" {
		root["theme"] = name
	}

	// Phase 6: navigation menu, then theme customization
	th.SetMainMenu(root, navMenu(g.site.Theme.Nav))
	g.theme.CustomizeRoot(g, root)

	data, err := yaml.Marshal(root)
	if err != nil {
		return "", 0, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal Hugo config").Build()
	}
	if err := writeFile(configPath, data); err != nil {
		return "", 0, err
	}
	slog.Debug("Generated Hugo configuration", logfields.Path(configPath))
	return configPath, len(th.MainMenu(root)), nil
}

// navMenu flattens the navigation tree into Hugo menu entries. Groups get
// an identifier that their children reference as parent; weights follow
// authored order within each level.
func navMenu(nav []site.Entry) []th.MenuItem {
	var items []th.MenuItem
	var add func(entries []site.Entry, parent, idPrefix string)
	add = func(entries []site.Entry, parent, idPrefix string) {
		for i, e := range entries {
			item := th.MenuItem{Name: e.Text, URL: e.Link, Parent: parent, Weight: (i + 1) * 10}
			if e.ActiveMatch != "" {
				item.Params = map[string]any{"activeMatch": e.ActiveMatch}
			}
			id := fmt.Sprintf("%s-%d", idPrefix, i+1)
			if e.IsGroup() {
				item.Identifier = id
			}
			items = append(items, item)
			if e.IsGroup() {
				add(e.Items, id, id)
			}
		}
	}
	add(nav, "", "nav")
	return items
}
