package hugo

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/logfields"
	th "git.home.luguber.info/inful/docsite/internal/theme"
)

// moduleName derives a go.mod module name from the base URL host.
func (g *Generator) moduleName() string {
	name := "docsite-site"
	if u, err := url.Parse(g.config.Hugo.BaseURL); err == nil && u.Hostname() != "" {
		name = strings.ReplaceAll(u.Hostname(), ".", "-")
	}
	return name
}

// ensureGoModForModules creates a minimal go.mod so Hugo Modules can
// resolve the theme. An existing go.mod is kept.
func (g *Generator) ensureGoModForModules(feats th.Features) (string, error) {
	goModPath := filepath.Join(g.outDir, "go.mod")
	if _, err := os.Stat(goModPath); err == nil {
		slog.Debug("Keeping existing go.mod", logfields.Path(goModPath))
		return goModPath, nil
	}
	content := fmt.Sprintf("module %s\n\ngo 1.21\n", g.moduleName())
	if feats.ModuleVersion != "" {
		content += fmt.Sprintf("\nrequire %s %s // indirect\n", feats.ModulePath, feats.ModuleVersion)
	}
	if err := writeFile(goModPath, []byte(content)); err != nil {
		return "", err
	}
	return goModPath, nil
}
