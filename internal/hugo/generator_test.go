package hugo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/sitedata"
	th "git.home.luguber.info/inful/docsite/internal/theme"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator(t *testing.T, opts ...Option) (*Generator, *config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.Root = t.TempDir()
	cfg.Output.Directory = t.TempDir()
	opts = append([]Option{WithClock(func() time.Time { return fixedTime })}, opts...)
	return NewGenerator(sitedata.Config(), cfg, opts...), cfg
}

func readYAML(t *testing.T, path string) map[string]any {
	t.Helper()
	// #nosec G304 -- test helper
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, yaml.Unmarshal(b, &m))
	return m
}

func TestGenerate_HugoConfig(t *testing.T) {
	g, cfg := newTestGenerator(t)
	report, err := g.Generate(context.Background())
	require.NoError(t, err)

	root := readYAML(t, report.ConfigPath)
	assert.Equal(t, "区块链协议中文文档", root["title"])
	assert.Equal(t, "zh-CN", root["languageCode"])
	assert.Equal(t, "zh-cn", root["defaultContentLanguage"])
	assert.Equal(t, true, root["hasCJKLanguage"])
	assert.Equal(t, true, root["disablePathToLower"])
	assert.Equal(t, false, root["enableGitInfo"])
	assert.Equal(t, filepath.Join(cfg.Root, "docs"), root["contentDir"])

	imports := root["module"].(map[string]any)["imports"].([]any)
	assert.Equal(t, "github.com/imfing/hextra", imports[0].(map[string]any)["path"])

	params := root["params"].(map[string]any)
	assert.Equal(t, "2024-05-01 12:00:00", params["build_date"])
	assert.Equal(t, "区块链协议与生态项目的中文参考文档", params["description"])
	assert.Equal(t, "https://github.com/protocol-docs-cn/docs/edit/main/docs", params["editURL"].(map[string]any)["base"])
}

func TestGenerate_MainMenuFollowsNav(t *testing.T) {
	g, _ := newTestGenerator(t)
	report, err := g.Generate(context.Background())
	require.NoError(t, err)

	root := readYAML(t, report.ConfigPath)
	main := root["menu"].(map[string]any)["main"].([]any)
	assert.Equal(t, len(main), report.MenuEntries)

	first := main[0].(map[string]any)
	assert.Equal(t, sitedata.ProtocolNavLabel, first["name"])
	assert.Equal(t, "nav-1", first["identifier"])
	assert.Equal(t, 10, first["weight"])
	assert.Equal(t, "^/ProtocolDocs/", first["params"].(map[string]any)["activeMatch"])

	child := main[1].(map[string]any)
	assert.Equal(t, "nav-1", child["parent"])
	assert.Equal(t, "/ProtocolDocs/introduction", child["url"])

	last := main[len(main)-1].(map[string]any)
	assert.Equal(t, "theme-toggle", last["params"].(map[string]any)["type"])
}

func TestNavMenu_PreservesAuthoredOrder(t *testing.T) {
	nav := []site.Entry{
		{Text: "Z", Items: []site.Entry{{Text: "z2", Link: "/z2"}, {Text: "z1", Link: "/z1"}}},
		{Text: "A", Link: "/a"},
	}
	items := navMenu(nav)
	require.Len(t, items, 4)
	assert.Equal(t, []string{"Z", "z2", "z1", "A"}, []string{items[0].Name, items[1].Name, items[2].Name, items[3].Name})
	assert.Less(t, items[1].Weight, items[2].Weight)
	assert.Less(t, items[0].Weight, items[3].Weight)
	assert.Equal(t, "nav-1", items[1].Parent)
	assert.Empty(t, items[3].Identifier)
}

func TestGenerate_SidebarData(t *testing.T) {
	g, cfg := newTestGenerator(t)
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	data := readYAML(t, filepath.Join(cfg.Output.Directory, "data", "sidebars.yaml"))
	sections := data["sections"].([]any)
	require.Len(t, sections, 3)

	protocol := sections[1].(map[string]any)
	assert.Equal(t, sitedata.ProtocolSection, protocol["prefix"])
	groups := protocol["items"].([]any)
	start := groups[0].(map[string]any)
	assert.Equal(t, "开始", start["text"])
	assert.Equal(t, "/ProtocolDocs/introduction", start["items"].([]any)[0].(map[string]any)["link"])

	networking := groups[2].(map[string]any)
	assert.Equal(t, true, networking["collapsed"])
	assert.Equal(t, "/ProtocolDocs/networking/", networking["link"])
}

func TestGenerate_ThemeFilesAndGoMod(t *testing.T) {
	g, cfg := newTestGenerator(t, WithMountBeacon(true))
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	out := cfg.Output.Directory
	head, err := os.ReadFile(filepath.Join(out, "layouts", "partials", "custom", "head-end.html"))
	require.NoError(t, err)
	assert.Contains(t, string(head), th.MountPath)
	assert.FileExists(t, filepath.Join(out, "i18n", "zh-cn.yaml"))
	assert.FileExists(t, filepath.Join(out, "layouts", "partials", "sidebar.html"))

	mod, err := os.ReadFile(filepath.Join(out, "go.mod"))
	require.NoError(t, err)
	assert.Contains(t, string(mod), "module docsite-site")
	assert.Contains(t, string(mod), "require github.com/imfing/hextra v0.11.0")
}

func TestGenerate_UserParamsOverrideTheme(t *testing.T) {
	g, cfg := newTestGenerator(t)
	cfg.Hugo.Params = map[string]any{
		"search": map[string]any{"type": "pagefind"},
		"page":   map[string]any{"width": "wide"},
	}
	report, err := g.Generate(context.Background())
	require.NoError(t, err)

	params := readYAML(t, report.ConfigPath)["params"].(map[string]any)
	search := params["search"].(map[string]any)
	assert.Equal(t, "pagefind", search["type"])
	assert.Equal(t, true, search["enable"])
	assert.Equal(t, "wide", params["page"].(map[string]any)["width"])
}

func TestGenerate_CleanKeepsForeignFiles(t *testing.T) {
	g, cfg := newTestGenerator(t)
	cfg.Output.Clean = true
	out := cfg.Output.Directory

	stale := filepath.Join(out, "layouts", "stale.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o750))
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o600))
	keep := filepath.Join(out, "README.md")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o600))

	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, keep)
}

func TestGenerate_InvalidSite(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Directory = t.TempDir()
	sc := sitedata.Config()
	sc.Lang = "??"

	_, err := NewGenerator(sc, cfg).Generate(context.Background())
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestGenerate_CancelledContext(t *testing.T) {
	g, _ := newTestGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewGenerator_UnknownTheme(t *testing.T) {
	cfg := config.Default()
	cfg.Hugo.Theme = "does-not-exist"
	cfg.Output.Directory = t.TempDir()
	g := NewGenerator(sitedata.Config(), cfg)
	assert.Equal(t, th.NullTheme{}, g.Theme())

	report, err := g.Generate(context.Background())
	require.NoError(t, err)
	root := readYAML(t, report.ConfigPath)
	assert.Nil(t, root["module"])
	assert.NoFileExists(t, filepath.Join(cfg.Output.Directory, "go.mod"))
}

func TestRender_MissingBinary(t *testing.T) {
	t.Setenv(SkipHugoEnv, "")
	g, cfg := newTestGenerator(t)
	cfg.Hugo.Binary = "docsite-no-such-hugo-binary"

	err := g.Render(context.Background())
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryHugo))
}

func TestRender_SkippedByEnv(t *testing.T) {
	t.Setenv(SkipHugoEnv, "1")
	g, cfg := newTestGenerator(t)
	cfg.Hugo.Binary = "docsite-no-such-hugo-binary"
	assert.NoError(t, g.Render(context.Background()))
}

func TestMergeParams(t *testing.T) {
	dst := map[string]any{"a": map[string]any{"x": 1, "y": 2}, "b": []any{1}}
	mergeParams(dst, map[string]any{"a": map[string]any{"y": 3}, "b": []any{2}, "c": map[string]any{"z": 1}})
	assert.Equal(t, map[string]any{
		"a": map[string]any{"x": 1, "y": 3},
		"b": []any{2},
		"c": map[string]any{"z": 1},
	}, dst)
}
