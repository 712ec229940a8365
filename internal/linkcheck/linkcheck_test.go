package linkcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/site"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
}

func TestResolvePage(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"_index.md":                           "# 首页",
		"ProtocolDocs/introduction.md":        "# 协议简介",
		"ProtocolDocs/consensus/_index.md":    "# 共识机制",
		"ProtocolDocs/consensus/finality.md":  "# 最终性",
		"ProtocolDocs/networking/README.md":   "# 网络与同步",
		"ProtocolDocs/execution/index.md":     "# 执行层",
		"ProtocolDocs/execution/evm.md":       "# EVM",
		"ProtocolDocs/glossary/index.md":      "# 术语",
		"ProtocolDocs/glossary/img/terms.png": "png",
	})

	cases := map[string]bool{
		"/":                                   true,
		"/ProtocolDocs/introduction":          true,
		"/ProtocolDocs/introduction.md":       true,
		"/ProtocolDocs/introduction.html":     true,
		"/ProtocolDocs/introduction#overview": true,
		"/ProtocolDocs/consensus/":            true,
		"/ProtocolDocs/consensus":             true,
		"/ProtocolDocs/consensus/finality":    true,
		"/ProtocolDocs/networking/":           false,
		"/ProtocolDocs/execution/":            false,
		"/ProtocolDocs/execution/evm":         true,
		"/ProtocolDocs/glossary/":             true,
		"/ProtocolDocs/missing/":              false,
		"/ProtocolDocs/introduction/":         false,
		"/../ProtocolDocs/introduction":       true,
	}
	for link, want := range cases {
		_, ok := ResolvePage(dir, link)
		assert.Equal(t, want, ok, link)
	}
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"guide/_index.md": "",
		"guide/start.md":  "",
	})
	sc := &site.SiteConfig{Theme: site.ThemeConfig{
		Nav: []site.Entry{
			{Text: "指南", Link: "/guide/"},
			{Text: "外部", Link: "https://example.com"},
			{Text: "缺失", Link: "/missing"},
		},
		Sidebar: site.Sidebars{
			"/guide/": {Base: "/guide/", Items: []site.Entry{
				{Text: "开始", Items: []site.Entry{
					{Text: "快速开始", Link: "start"},
					{Text: "进阶", Link: "advanced"},
				}},
			}},
		},
	}}

	problems := CheckConfig(sc, dir)
	require.Len(t, problems, 2)
	assert.Equal(t, site.Problem{Location: "nav > 缺失", Target: "/missing", Message: "no page for link"}, problems[0])
	assert.Equal(t, "sidebar /guide/ > 开始 > 进阶", problems[1].Location)
	assert.Equal(t, "/guide/advanced", problems[1].Target)
}

func TestCheckConfig_IndexFilesThatHugoSkips(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"guide/index.md":   "",
		"guide/start.md":   "",
		"faq/README.md":    "",
		"about/index.md":   "",
		"notes/_index.md":  "",
		"notes/a/first.md": "",
	})
	sc := &site.SiteConfig{Theme: site.ThemeConfig{Nav: []site.Entry{
		{Text: "指南", Link: "/guide/"},
		{Text: "问答", Link: "/faq/"},
		{Text: "关于", Link: "/about/"},
		{Text: "笔记", Link: "/notes/"},
	}}}

	problems := CheckConfig(sc, dir)
	require.Len(t, problems, 2)
	assert.Equal(t, site.Problem{
		Location: "nav > 指南",
		Target:   "/guide/",
		Message:  "index.md hides the pages below it, rename to _index.md",
	}, problems[0])
	assert.Equal(t, site.Problem{
		Location: "nav > 问答",
		Target:   "/faq/",
		Message:  "README.md is not a section page, rename to _index.md",
	}, problems[1])
}

func TestCheckContent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"guide/_index.md":    "[开始](start.md) [缺失](missing.md) [锚点](#top) [外部](https://example.com) [邮件](mailto:a@b.c)\n\n![图](img/logo.png)\n",
		"guide/start.md":     "[上级](../_index.md) [绝对](/guide/) [引用][ref]\n\n[ref]: ./gone\n",
		"guide/img/logo.png": "png",
		"_index.md":          "",
		".hidden/skip.md":    "[x](nowhere.md)",
	})

	problems, err := CheckContent(dir)
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, site.Problem{Location: "guide/_index.md", Target: "missing.md", Message: "broken link"}, problems[0])
	assert.Equal(t, "guide/start.md", problems[1].Location)
	assert.Equal(t, "./gone", problems[1].Target)
}

func TestCheckContent_MissingDir(t *testing.T) {
	_, err := CheckContent(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestCheckRendered(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"index.html": `<html><head><link rel="stylesheet" href="/css/site.css"><script src="/js/missing.js"></script></head>
<body><a href="/guide/">指南</a><a href="guide/start">开始</a><a href="/nowhere/">无</a><a href="#x">锚</a><a href="https://example.com">外</a></body></html>`,
		"css/site.css":           "",
		"guide/index.html":       `<a href="../">首页</a><img src="logo.png">`,
		"guide/start/index.html": "",
	})

	problems, err := CheckRendered(dir)
	require.NoError(t, err)
	targets := make([]string, 0, len(problems))
	for _, p := range problems {
		targets = append(targets, p.Location+" "+p.Target)
	}
	assert.ElementsMatch(t, []string{
		"index.html /js/missing.js",
		"index.html /nowhere/",
		"guide/index.html logo.png",
	}, targets)
}

func TestCheckRendered_EscapedPaths(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"index.html": `<a href="/%E6%9C%AF%E8%AF%AD/">术语</a><a href="%E7%AE%80%E4%BB%8B.html#top">简介</a>` +
			`<a href="/%E7%BC%BA%E5%A4%B1/">缺失</a><a href="/bad%zz/">坏</a>`,
		"术语/index.html": "",
		"简介.html":       "",
	})

	problems, err := CheckRendered(dir)
	require.NoError(t, err)
	targets := make([]string, 0, len(problems))
	for _, p := range problems {
		targets = append(targets, p.Target)
	}
	assert.ElementsMatch(t, []string{"/%E7%BC%BA%E5%A4%B1/", "/bad%zz/"}, targets)
}
