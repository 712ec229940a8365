package site

import (
	"sort"
	"strings"
)

// Sidebar is the side navigation of one documentation section. Item links
// are relative to Base unless they are absolute or external.
type Sidebar struct {
	Base  string  `yaml:"base" json:"base"`
	Items []Entry `yaml:"items" json:"items"`
}

// Sidebars maps a section prefix such as "/ProtocolDocs/" to its sidebar.
type Sidebars map[string]Sidebar

// Sections returns the section prefixes in sorted order.
func (s Sidebars) Sections() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve picks the sidebar whose prefix is the longest match for pagePath.
func (s Sidebars) Resolve(pagePath string) (string, Sidebar, bool) {
	best := ""
	for prefix := range s {
		if strings.HasPrefix(pagePath, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return "", Sidebar{}, false
	}
	return best, s[best], true
}

// AbsLink joins a sidebar-relative link with the sidebar base.
func (s Sidebar) AbsLink(link string) string {
	if link == "" || IsExternal(link) || strings.HasPrefix(link, "/") || s.Base == "" {
		return link
	}
	return strings.TrimSuffix(s.Base, "/") + "/" + strings.TrimPrefix(link, "./")
}

// Absolute returns a copy of the items with every link joined to Base.
func (s Sidebar) Absolute() []Entry {
	return s.absolute(s.Items)
}

func (s Sidebar) absolute(items []Entry) []Entry {
	if items == nil {
		return nil
	}
	out := make([]Entry, len(items))
	for i, e := range items {
		e.Link = s.AbsLink(e.Link)
		e.Items = s.absolute(e.Items)
		out[i] = e
	}
	return out
}
