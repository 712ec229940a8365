// Package sitedata is the single source of truth for the site structure:
// top navigation, section sidebars, head tags and theme options.
//
// Every function returns a freshly built value so callers may modify the
// result without affecting later calls.
package sitedata

import "git.home.luguber.info/inful/docsite/internal/site"

// Section prefixes. Sidebar links below are relative to these.
const (
	ProtocolSection  = "/ProtocolDocs/"
	EcosystemSection = "/Ecosystem/"
	ResearchSection  = "/Research/"
)

// ProtocolNavLabel is the label of the first navigation group.
const ProtocolNavLabel = "协议文档"

// Nav returns the top navigation.
func Nav() []site.Entry {
	return []site.Entry{
		{
			Text:        ProtocolNavLabel,
			ActiveMatch: "^" + ProtocolSection,
			Items: []site.Entry{
				{Text: "协议简介", Link: ProtocolSection + "introduction"},
				{Text: "共识机制", Link: ProtocolSection + "consensus/"},
				{Text: "网络与同步", Link: ProtocolSection + "networking/"},
				{Text: "执行层", Link: ProtocolSection + "execution/"},
			},
		},
		{
			Text:        "生态项目",
			ActiveMatch: "^" + EcosystemSection,
			Items: []site.Entry{
				{Text: "生态概览", Link: EcosystemSection + "overview"},
				{Text: "钱包", Link: EcosystemSection + "infrastructure/wallets"},
				{Text: "跨链桥", Link: EcosystemSection + "infrastructure/bridges"},
				{Text: "去中心化金融", Link: EcosystemSection + "applications/defi"},
			},
		},
		{Text: "研究报告", Link: ResearchSection, ActiveMatch: "^" + ResearchSection},
		{Text: "术语表", Link: "/glossary"},
	}
}
