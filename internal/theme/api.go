// Package theme defines the hooks a Hugo theme implements for docsite and
// the analytics extension that wraps a base theme.
package theme

import (
	"sync"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// Features describes capability flags and the module path of a theme.
type Features struct {
	Name                     string
	ModulePath               string
	ModuleVersion            string
	DefaultSearchType        string
	SupportsPerPageEditLinks bool
	RendersSidebarData       bool
}

// ParamContext is the minimal surface a theme needs from the generator.
type ParamContext interface {
	Site() *site.SiteConfig
	MountBeacon() bool
}

// MountContext describes a page activation. SSR is true when the page is
// being rendered on the server rather than activated in a browser.
type MountContext struct {
	Path string
	SSR  bool
}

// Theme provides the hooks used while generating and serving a site.
type Theme interface {
	Name() string
	Features() Features
	ApplyParams(ctx ParamContext, params map[string]any)
	CustomizeRoot(ctx ParamContext, root map[string]any)
	// Files returns extra site files (layouts, i18n) keyed by path relative
	// to the site root.
	Files(ctx ParamContext) map[string]string
	OnPageMount(mc MountContext)
}

var (
	regMu sync.RWMutex
	reg   = map[string]Theme{}
)

// RegisterTheme registers a Theme implementation. Duplicate names are ignored.
func RegisterTheme(t Theme) {
	if t == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := reg[t.Name()]; !ok {
		reg[t.Name()] = t
	}
}

// Get retrieves a theme by name, or nil.
func Get(name string) Theme {
	regMu.RLock()
	defer regMu.RUnlock()
	return reg[name]
}

// Names lists registered themes.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	return out
}

// NullTheme is a no-op theme used for unknown theme names.
type NullTheme struct{}

func (NullTheme) Name() string                                   { return "" }
func (NullTheme) Features() Features                             { return Features{} }
func (NullTheme) ApplyParams(_ ParamContext, _ map[string]any)   {}
func (NullTheme) CustomizeRoot(_ ParamContext, _ map[string]any) {}
func (NullTheme) Files(_ ParamContext) map[string]string         { return nil }
func (NullTheme) OnPageMount(_ MountContext)                     {}
