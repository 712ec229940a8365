package sitedata

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// AnalyticsID is the analytics account the head scripts report to.
const AnalyticsID = "G-7QK3N5R2TD"

const (
	repoURL  = "https://github.com/protocol-docs-cn/docs"
	editBase = repoURL + "/edit/main/docs/"
)

// Head returns the favicon link and the two analytics script tags.
func Head(analyticsID string) []site.HeadTag {
	return []site.HeadTag{
		{Tag: "link", Attrs: []site.Attr{{Key: "rel", Value: "icon"}, {Key: "href", Value: "/favicon.ico"}}},
		{
			Tag: "script",
			Attrs: []site.Attr{
				{Key: "async"},
				{Key: "src", Value: "https://www.googletagmanager.com/gtag/js?id=" + analyticsID},
			},
		},
		{
			Tag: "script",
			Content: fmt.Sprintf("window.dataLayer = window.dataLayer || [];\n"+
				"function gtag(){dataLayer.push(arguments);}\n"+
				"gtag('js', new Date());\n"+
				"gtag('config', '%s');", analyticsID),
		},
	}
}

// Config returns the complete site configuration.
func Config() *site.SiteConfig {
	return &site.SiteConfig{
		Lang:        "zh-CN",
		Title:       "区块链协议中文文档",
		Description: "区块链协议与生态项目的中文参考文档",
		SrcDir:      "docs",
		Head:        Head(AnalyticsID),
		Theme: site.ThemeConfig{
			Nav:     Nav(),
			Sidebar: Sidebars(),
			Footer: site.Footer{
				Message:   "基于 CC BY-SA 4.0 许可发布",
				Copyright: "Copyright © 2023-present 协议文档中文社区",
			},
			DocFooter:    site.DocFooter{Prev: "上一页", Next: "下一页"},
			OutlineLabel: "页面导航",
			EditLink: site.EditLink{
				Pattern: editBase + site.PathPlaceholder,
				Text:    "在 GitHub 上编辑此页面",
			},
			LastUpdated: site.LastUpdated{
				Text:      "最后更新于",
				DateStyle: "short",
				TimeStyle: "medium",
			},
			Search: site.Search{
				Provider: "local",
				Translations: site.SearchTranslations{
					ButtonText:       "搜索文档",
					ButtonAriaLabel:  "搜索文档",
					NoResultsText:    "无法找到相关结果",
					ResetButtonTitle: "清除查询条件",
					SelectText:       "选择",
					NavigateText:     "切换",
					CloseText:        "关闭",
				},
			},
			SocialLinks: []site.SocialLink{
				{Icon: "github", Link: repoURL},
			},
			ReturnToTopLabel:    "回到顶部",
			SidebarMenuLabel:    "菜单",
			DarkModeSwitchLabel: "主题",
		},
	}
}
