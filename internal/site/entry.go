// Package site holds the declarative model of the documentation site:
// navigation and sidebar trees, head tags and theme options.
package site

import (
	"errors"
	"strings"
)

// Entry is a labelled link node. It is used for top navigation items and
// for sidebar items alike. Groups carry Items and may also carry a Link
// to their landing page.
type Entry struct {
	Text        string  `yaml:"text" json:"text"`
	Link        string  `yaml:"link,omitempty" json:"link,omitempty"`
	Items       []Entry `yaml:"items,omitempty" json:"items,omitempty"`
	Collapsed   *bool   `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	ActiveMatch string  `yaml:"activeMatch,omitempty" json:"activeMatch,omitempty"`
}

// IsGroup reports whether the entry has children.
func (e Entry) IsGroup() bool { return len(e.Items) > 0 }

// Collapsed returns a pointer for the Entry.Collapsed display hint.
func Collapsed(v bool) *bool { return &v }

// ErrSkipItems may be returned by a WalkFunc to skip the children of the
// current entry.
var ErrSkipItems = errors.New("skip items")

// WalkFunc is called for every entry. trail holds the labels of the
// ancestors, outermost first.
type WalkFunc func(e Entry, depth int, trail []string) error

// Walk visits entries depth-first in authored order.
func Walk(entries []Entry, fn WalkFunc) error {
	return walk(entries, 0, nil, fn)
}

func walk(entries []Entry, depth int, trail []string, fn WalkFunc) error {
	for _, e := range entries {
		if err := fn(e, depth, trail); err != nil {
			if errors.Is(err, ErrSkipItems) {
				continue
			}
			return err
		}
		if len(e.Items) == 0 {
			continue
		}
		next := make([]string, len(trail), len(trail)+1)
		copy(next, trail)
		if err := walk(e.Items, depth+1, append(next, e.Text), fn); err != nil {
			return err
		}
	}
	return nil
}

// Links returns every non-empty link in walk order.
func Links(entries []Entry) []string {
	var out []string
	_ = Walk(entries, func(e Entry, _ int, _ []string) error {
		if e.Link != "" {
			out = append(out, e.Link)
		}
		return nil
	})
	return out
}

// Problem is a structural or link finding tied to a location.
type Problem struct {
	Location string `json:"location"`
	Target   string `json:"target,omitempty"`
	Message  string `json:"message"`
}

func (p Problem) String() string {
	if p.Target == "" {
		return p.Location + ": " + p.Message
	}
	return p.Location + ": " + p.Message + " (" + p.Target + ")"
}

// CheckLeaves reports leaf entries without a link.
func CheckLeaves(entries []Entry) []Problem {
	var problems []Problem
	_ = Walk(entries, func(e Entry, _ int, trail []string) error {
		if len(e.Items) == 0 && strings.TrimSpace(e.Link) == "" {
			problems = append(problems, Problem{
				Location: breadcrumb(trail, e.Text),
				Message:  "leaf entry has no link",
			})
		}
		return nil
	})
	return problems
}

func breadcrumb(trail []string, text string) string {
	if len(trail) == 0 {
		return text
	}
	return strings.Join(trail, " > ") + " > " + text
}

// IsExternal reports whether link points outside the site.
func IsExternal(link string) bool {
	l := strings.ToLower(link)
	return strings.HasPrefix(l, "http://") ||
		strings.HasPrefix(l, "https://") ||
		strings.HasPrefix(l, "mailto:") ||
		strings.HasPrefix(l, "//")
}
