package site

import (
	"html"
	"strings"

	"golang.org/x/text/language"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// PathPlaceholder is substituted with the page source path in edit links.
const PathPlaceholder = ":path"

// SiteConfig is the complete description of the site handed to the
// generator.
type SiteConfig struct {
	Lang        string      `yaml:"lang" json:"lang"`
	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description" json:"description"`
	SrcDir      string      `yaml:"srcDir" json:"srcDir"`
	Head        []HeadTag   `yaml:"head" json:"head"`
	Theme       ThemeConfig `yaml:"themeConfig" json:"themeConfig"`
}

// Attr is a single HTML attribute. Attributes are kept in a slice so the
// rendered tag is stable.
type Attr struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// HeadTag is a literal element injected into every page head.
type HeadTag struct {
	Tag     string `yaml:"tag" json:"tag"`
	Attrs   []Attr `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
}

var voidElements = map[string]bool{"link": true, "meta": true, "base": true}

// HTML renders the tag. Attribute values are escaped, inline content is
// written verbatim.
func (h HeadTag) HTML() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(h.Tag)
	for _, a := range h.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Key)
		if a.Value != "" {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Value))
			b.WriteString(`"`)
		}
	}
	b.WriteString(">")
	if voidElements[h.Tag] {
		return b.String()
	}
	b.WriteString(h.Content)
	b.WriteString("</")
	b.WriteString(h.Tag)
	b.WriteString(">")
	return b.String()
}

// ThemeConfig aggregates the options consumed by the theme.
type ThemeConfig struct {
	Nav                 []Entry      `yaml:"nav" json:"nav"`
	Sidebar             Sidebars     `yaml:"sidebar" json:"sidebar"`
	Footer              Footer       `yaml:"footer" json:"footer"`
	DocFooter           DocFooter    `yaml:"docFooter" json:"docFooter"`
	OutlineLabel        string       `yaml:"outlineLabel" json:"outlineLabel"`
	EditLink            EditLink     `yaml:"editLink" json:"editLink"`
	LastUpdated         LastUpdated  `yaml:"lastUpdated" json:"lastUpdated"`
	Search              Search       `yaml:"search" json:"search"`
	SocialLinks         []SocialLink `yaml:"socialLinks" json:"socialLinks"`
	ReturnToTopLabel    string       `yaml:"returnToTopLabel" json:"returnToTopLabel"`
	SidebarMenuLabel    string       `yaml:"sidebarMenuLabel" json:"sidebarMenuLabel"`
	DarkModeSwitchLabel string       `yaml:"darkModeSwitchLabel" json:"darkModeSwitchLabel"`
}

type Footer struct {
	Message   string `yaml:"message" json:"message"`
	Copyright string `yaml:"copyright" json:"copyright"`
}

type DocFooter struct {
	Prev string `yaml:"prev" json:"prev"`
	Next string `yaml:"next" json:"next"`
}

// EditLink points readers at the source of a page. Pattern contains the
// ":path" placeholder.
type EditLink struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Text    string `yaml:"text" json:"text"`
}

// URL substitutes the page source path into the pattern.
func (e EditLink) URL(pagePath string) string {
	return strings.ReplaceAll(e.Pattern, PathPlaceholder, strings.TrimPrefix(pagePath, "/"))
}

// Base is the pattern with the placeholder removed, for themes that append
// the path themselves.
func (e EditLink) Base() string {
	base, _, _ := strings.Cut(e.Pattern, PathPlaceholder)
	return strings.TrimSuffix(base, "/")
}

// LastUpdated controls the "last updated" stamp. DateStyle and TimeStyle
// take the values full, long, medium and short.
type LastUpdated struct {
	Text      string `yaml:"text" json:"text"`
	DateStyle string `yaml:"dateStyle" json:"dateStyle"`
	TimeStyle string `yaml:"timeStyle" json:"timeStyle"`
}

var (
	dateLayouts = map[string]string{
		"full":   "2006年1月2日 Monday",
		"long":   "2006年1月2日",
		"medium": "2006年1月2日",
		"short":  "2006/1/2",
	}
	timeLayouts = map[string]string{
		"full":   "15:04:05 MST",
		"long":   "15:04:05 MST",
		"medium": "15:04:05",
		"short":  "15:04",
	}
)

// GoLayout converts the styles to a Go time layout.
func (l LastUpdated) GoLayout() string {
	parts := make([]string, 0, 2)
	if d, ok := dateLayouts[l.DateStyle]; ok {
		parts = append(parts, d)
	}
	if t, ok := timeLayouts[l.TimeStyle]; ok {
		parts = append(parts, t)
	}
	if len(parts) == 0 {
		return dateLayouts["medium"]
	}
	return strings.Join(parts, " ")
}

// Search configures the local search provider and its UI strings.
type Search struct {
	Provider     string             `yaml:"provider" json:"provider"`
	Translations SearchTranslations `yaml:"translations" json:"translations"`
}

type SearchTranslations struct {
	ButtonText       string `yaml:"buttonText" json:"buttonText"`
	ButtonAriaLabel  string `yaml:"buttonAriaLabel" json:"buttonAriaLabel"`
	NoResultsText    string `yaml:"noResultsText" json:"noResultsText"`
	ResetButtonTitle string `yaml:"resetButtonTitle" json:"resetButtonTitle"`
	SelectText       string `yaml:"selectText" json:"selectText"`
	NavigateText     string `yaml:"navigateText" json:"navigateText"`
	CloseText        string `yaml:"closeText" json:"closeText"`
}

type SocialLink struct {
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

// LanguageTag parses Lang as a BCP 47 tag.
func (c *SiteConfig) LanguageTag() (language.Tag, error) {
	return language.Parse(c.Lang)
}

// Validate checks the fields the generator depends on. Link targets are not
// checked here.
func (c *SiteConfig) Validate() error {
	if c == nil {
		return ferrors.ValidationError("site config is nil").Build()
	}
	if strings.TrimSpace(c.Title) == "" {
		return ferrors.ValidationError("site title is required").Build()
	}
	if _, err := c.LanguageTag(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid site language").
			WithContext("lang", c.Lang).Build()
	}
	if c.SrcDir == "" {
		return ferrors.ValidationError("source directory is required").Build()
	}
	if p := c.Theme.EditLink.Pattern; p != "" && !strings.Contains(p, PathPlaceholder) {
		return ferrors.ValidationError("edit link pattern must contain " + PathPlaceholder).
			WithContext("pattern", p).Build()
	}
	for _, prefix := range c.Theme.Sidebar.Sections() {
		if !strings.HasPrefix(prefix, "/") {
			return ferrors.ValidationError("sidebar section prefix must start with /").
				WithContext("section", prefix).Build()
		}
	}
	return nil
}

// HugoLanguage is the lower-case language code used for Hugo i18n files.
func (c *SiteConfig) HugoLanguage() string {
	return strings.ToLower(c.Lang)
}
