package hextra

import (
	"html"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/site"
	th "git.home.luguber.info/inful/docsite/internal/theme"
)

// Name is the registry name of the Hextra theme.
const Name = "hextra"

// Theme integrates the Hextra Hugo module. It registers itself on import.
type Theme struct{}

// Name returns the registry name.
func (Theme) Name() string { return Name }

func (Theme) Features() th.Features {
	return th.Features{
		Name: Name, ModulePath: "github.com/imfing/hextra", ModuleVersion: "v0.11.0",
		DefaultSearchType: "flexsearch", SupportsPerPageEditLinks: true, RendersSidebarData: true,
	}
}

// flexsearchTokenizer picks "full" for CJK content where words are not
// separated by spaces.
func flexsearchTokenizer(lang string) string {
	l := strings.ToLower(lang)
	if strings.HasPrefix(l, "zh") || strings.HasPrefix(l, "ja") || strings.HasPrefix(l, "ko") {
		return "full"
	}
	return "forward"
}

func (Theme) ApplyParams(ctx th.ParamContext, params map[string]any) {
	sc := ctx.Site()
	tokenize := flexsearchTokenizer(sc.Lang)

	if params["search"] == nil {
		params["search"] = map[string]any{"enable": sc.Theme.Search.Provider != "", "type": "flexsearch", "flexsearch": map[string]any{"index": "content", "tokenize": tokenize}}
	} else if b, ok := params["search"].(bool); ok {
		params["search"] = map[string]any{"enable": b}
	} else if m, ok := params["search"].(map[string]any); ok {
		if _, ok := m["enable"]; !ok {
			m["enable"] = true
		}
		if _, ok := m["type"]; !ok {
			m["type"] = "flexsearch"
		}
		if _, ok := m["flexsearch"]; !ok {
			m["flexsearch"] = map[string]any{"index": "content", "tokenize": tokenize}
		} else if fm, ok := m["flexsearch"].(map[string]any); ok {
			if _, ok := fm["index"]; !ok {
				fm["index"] = "content"
			}
			if _, ok := fm["tokenize"]; !ok {
				fm["tokenize"] = tokenize
			}
		}
	}
	if _, ok := params["theme"].(map[string]any); !ok {
		params["theme"] = map[string]any{"default": "system", "displayToggle": true}
	}
	if _, ok := params["navbar"].(map[string]any); !ok {
		params["navbar"] = map[string]any{"displayTitle": true, "displayLogo": false, "width": "normal"}
	}
	if _, ok := params["footer"].(map[string]any); !ok {
		params["footer"] = map[string]any{"enable": true, "displayCopyright": sc.Theme.Footer.Copyright != "", "displayPoweredBy": false}
	}

	edit := sc.Theme.EditLink
	if v, ok := params["editURL"]; !ok {
		params["editURL"] = map[string]any{"enable": edit.Pattern != "", "base": edit.Base()}
	} else if m, ok := v.(map[string]any); ok {
		if _, exists := m["enable"]; !exists {
			m["enable"] = true
		}
		if _, exists := m["base"]; !exists && edit.Pattern != "" {
			m["base"] = edit.Base()
		}
	}

	if sc.Theme.LastUpdated.Text != "" {
		if params["displayUpdatedDate"] == nil {
			params["displayUpdatedDate"] = true
		}
		if params["dateFormat"] == nil {
			params["dateFormat"] = sc.Theme.LastUpdated.GoLayout()
		}
	}
}

// CustomizeRoot appends search, social and theme toggle entries after the
// navigation items of the main menu.
func (Theme) CustomizeRoot(ctx th.ParamContext, root map[string]any) {
	sc := ctx.Site()
	items := th.MainMenu(root)
	w := th.NextWeight(items)

	if sc.Theme.Search.Provider != "" {
		items = append(items, th.MenuItem{Name: sc.Theme.Search.Translations.ButtonText, Weight: w, Params: map[string]any{"type": "search"}})
		w++
	}
	for _, s := range sc.Theme.SocialLinks {
		if s.Icon == "" || s.Link == "" {
			continue
		}
		items = append(items, th.MenuItem{Name: strings.ToUpper(s.Icon[:1]) + s.Icon[1:], URL: s.Link, Weight: w, Params: map[string]any{"icon": s.Icon}})
		w++
	}
	items = append(items, th.MenuItem{Name: sc.Theme.DarkModeSwitchLabel, Weight: w, Params: map[string]any{"type": "theme-toggle", "label": false}})
	th.SetMainMenu(root, items)
}

// Files returns the head and footer partials, the sidebar partials that
// read data/sidebars.yaml and the i18n strings for the site language.
func (Theme) Files(ctx th.ParamContext) map[string]string {
	sc := ctx.Site()
	files := map[string]string{
		"layouts/partials/custom/head-end.html":       th.HeadEnd(ctx),
		"layouts/partials/custom/footer.html":         footerPartial(sc),
		"layouts/partials/sidebar.html":               sidebarPartial,
		"layouts/partials/docsite/sidebar-items.html": sidebarItemsPartial,
	}
	if data, err := yaml.Marshal(i18nStrings(sc)); err == nil {
		files["i18n/"+sc.HugoLanguage()+".yaml"] = string(data)
	} else {
		slog.Warn("Failed to marshal i18n strings", "error", err)
	}
	return files
}

// OnPageMount is a no-op: hextra needs nothing at page activation.
func (Theme) OnPageMount(_ th.MountContext) {}

func i18nStrings(sc *site.SiteConfig) map[string]string {
	t := sc.Theme
	out := map[string]string{
		"onThisPage":        t.OutlineLabel,
		"lastUpdated":       t.LastUpdated.Text,
		"editThisPage":      t.EditLink.Text,
		"backToTop":         t.ReturnToTopLabel,
		"changeTheme":       t.DarkModeSwitchLabel,
		"searchPlaceholder": t.Search.Translations.ButtonText,
		"noResultsFound":    t.Search.Translations.NoResultsText,
		"copyright":         t.Footer.Copyright,
		"prev":              t.DocFooter.Prev,
		"next":              t.DocFooter.Next,
		"menu":              t.SidebarMenuLabel,
	}
	for k, v := range out {
		if v == "" {
			delete(out, k)
		}
	}
	return out
}

func footerPartial(sc *site.SiteConfig) string {
	if sc.Theme.Footer.Message == "" {
		return ""
	}
	return `<p class="docsite-footer-message">` + html.EscapeString(sc.Theme.Footer.Message) + "</p>\n"
}

// sidebarPartial selects the section with the longest prefix matching the
// page and renders its items from data/sidebars.yaml.
const sidebarPartial = `{{- $path := .RelPermalink -}}
{{- $match := dict -}}
{{- $matchLen := 0 -}}
{{- range site.Data.sidebars.sections -}}
  {{- if and (hasPrefix $path .prefix) (gt (len .prefix) $matchLen) -}}
    {{- $match = . -}}
    {{- $matchLen = len .prefix -}}
  {{- end -}}
{{- end -}}
<aside class="docsite-sidebar">
{{- with $match.items }}
  {{ partial "docsite/sidebar-items.html" (dict "items" . "page" $) }}
{{- end }}
</aside>
`

const sidebarItemsPartial = `<ul>
{{- range .items }}
  <li>
  {{- if .items }}
    <details{{ if not .collapsed }} open{{ end }}>
      <summary>{{ if .link }}<a href="{{ .link }}">{{ .text }}</a>{{ else }}{{ .text }}{{ end }}</summary>
      {{ partial "docsite/sidebar-items.html" (dict "items" .items "page" $.page) }}
    </details>
  {{- else }}
    <a href="{{ .link }}"{{ if eq (strings.TrimSuffix "/" .link) (strings.TrimSuffix "/" $.page.RelPermalink) }} aria-current="page"{{ end }}>{{ .text }}</a>
  {{- end }}
  </li>
{{- end }}
</ul>
`

func init() { th.RegisterTheme(Theme{}) }
