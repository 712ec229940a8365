package hugo

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/gitinfo"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
	th "git.home.luguber.info/inful/docsite/internal/theme"
	_ "git.home.luguber.info/inful/docsite/internal/theme/hextra"
)

// Generator writes a Hugo site for a SiteConfig.
type Generator struct {
	site   *site.SiteConfig
	config *config.Config
	outDir string
	theme  th.Theme
	beacon bool
	now    func() time.Time
	git    gitinfo.Info
}

// Option customizes a Generator.
type Option func(*Generator)

// WithTheme overrides the theme looked up from the configuration.
func WithTheme(t th.Theme) Option { return func(g *Generator) { g.theme = t } }

// WithMountBeacon adds the page activation beacon to every page.
func WithMountBeacon(on bool) Option { return func(g *Generator) { g.beacon = on } }

// WithClock replaces time.Now for build stamps.
func WithClock(now func() time.Time) Option { return func(g *Generator) { g.now = now } }

// NewGenerator creates a generator writing to cfg.Output.Directory.
func NewGenerator(sc *site.SiteConfig, cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		site:   sc,
		config: cfg,
		outDir: filepath.Clean(cfg.Output.Directory),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.theme == nil {
		if t := th.Get(cfg.Hugo.Theme); t != nil {
			g.theme = t
		} else {
			slog.Warn("Unknown theme, generating without theme hooks", logfields.Theme(cfg.Hugo.Theme))
			g.theme = th.NullTheme{}
		}
	}
	return g
}

// Site implements theme.ParamContext.
func (g *Generator) Site() *site.SiteConfig { return g.site }

// MountBeacon implements theme.ParamContext.
func (g *Generator) MountBeacon() bool { return g.beacon }

// Theme returns the active theme.
func (g *Generator) Theme() th.Theme { return g.theme }

// OutputDir is the Hugo site root.
func (g *Generator) OutputDir() string { return g.outDir }

// PublicDir is where the rendered site ends up.
func (g *Generator) PublicDir() string { return filepath.Join(g.outDir, "public") }

// ContentDir is the absolute path of the markdown sources.
func (g *Generator) ContentDir() string {
	dir := filepath.Join(g.config.Root, g.site.SrcDir)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

// Report summarizes a generation run.
type Report struct {
	OutputDir   string
	ConfigPath  string
	Files       []string
	MenuEntries int
	Sections    int
	GitInfo     bool
	Duration    time.Duration
}

// Generate writes the site files. It does not run hugo; see Render.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	start := g.now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.site.Validate(); err != nil {
		return nil, err
	}

	if g.config.Output.Clean {
		if err := g.cleanOutput(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(g.outDir, 0o750); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create output directory").
			WithContext("dir", g.outDir).Build()
	}

	info, err := gitinfo.Detect(g.ContentDir())
	if err != nil {
		slog.Warn("Git detection failed, disabling git info", logfields.Error(err))
	}
	g.git = info

	report := &Report{OutputDir: g.outDir, GitInfo: info.InRepo && info.Head != ""}

	configPath, menuEntries, err := g.generateHugoConfig()
	if err != nil {
		return nil, err
	}
	report.ConfigPath = configPath
	report.MenuEntries = menuEntries
	report.Files = append(report.Files, configPath)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dataPath, err := g.writeSidebarData()
	if err != nil {
		return nil, err
	}
	report.Sections = len(g.site.Theme.Sidebar)
	report.Files = append(report.Files, dataPath)

	themeFiles, err := g.writeThemeFiles()
	if err != nil {
		return nil, err
	}
	report.Files = append(report.Files, themeFiles...)

	if feats := g.theme.Features(); feats.ModulePath != "" {
		modPath, err := g.ensureGoModForModules(feats)
		if err != nil {
			slog.Warn("Failed to ensure go.mod for Hugo Modules", logfields.Error(err))
		} else {
			report.Files = append(report.Files, modPath)
		}
	}

	report.Duration = g.now().Sub(start)
	slog.Info("Generated Hugo site",
		logfields.Path(g.outDir),
		logfields.Count(len(report.Files)),
		logfields.Theme(g.theme.Name()),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return report, nil
}

// cleanOutput removes the files a previous run generated. Other files in
// the output directory are left alone.
func (g *Generator) cleanOutput() error {
	for _, name := range []string{"hugo.yaml", "data", "layouts", "i18n", "public", "resources"} {
		p := filepath.Join(g.outDir, name)
		if err := os.RemoveAll(p); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to clean output").
				WithContext("path", p).Build()
		}
	}
	return nil
}

func (g *Generator) writeThemeFiles() ([]string, error) {
	files := g.theme.Files(g)
	paths := make([]string, 0, len(files))
	for rel := range files {
		paths = append(paths, rel)
	}
	sort.Strings(paths)

	written := make([]string, 0, len(paths))
	for _, rel := range paths {
		full := filepath.Join(g.outDir, filepath.FromSlash(rel))
		if err := writeFile(full, []byte(files[rel])); err != nil {
			return nil, err
		}
		written = append(written, full)
	}
	return written, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create directory").
			WithContext("path", filepath.Dir(path)).Build()
	}
	// #nosec G306 -- generated site files are public assets
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write file").
			WithContext("path", path).Build()
	}
	return nil
}
