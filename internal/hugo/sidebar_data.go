package hugo

import (
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// sidebarSection is one element of data/sidebars.yaml. Links are absolute
// so templates need not know about section bases.
type sidebarSection struct {
	Prefix string       `yaml:"prefix"`
	Base   string       `yaml:"base"`
	Items  []site.Entry `yaml:"items"`
}

type sidebarData struct {
	Sections []sidebarSection `yaml:"sections"`
}

func buildSidebarData(sbs site.Sidebars) sidebarData {
	data := sidebarData{Sections: make([]sidebarSection, 0, len(sbs))}
	for _, prefix := range sbs.Sections() {
		sb := sbs[prefix]
		data.Sections = append(data.Sections, sidebarSection{Prefix: prefix, Base: sb.Base, Items: sb.Absolute()})
	}
	return data
}

func (g *Generator) writeSidebarData() (string, error) {
	path := filepath.Join(g.outDir, "data", "sidebars.yaml")
	out, err := yaml.Marshal(buildSidebarData(g.site.Theme.Sidebar))
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal sidebar data").Build()
	}
	if err := writeFile(path, out); err != nil {
		return "", err
	}
	return path, nil
}
