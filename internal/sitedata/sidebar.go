package sitedata

import "git.home.luguber.info/inful/docsite/internal/site"

// Sidebars returns every section sidebar keyed by its prefix.
func Sidebars() site.Sidebars {
	return site.Sidebars{
		ProtocolSection:  ProtocolSidebar(),
		EcosystemSection: EcosystemSidebar(),
		ResearchSection:  ResearchSidebar(),
	}
}

// ProtocolSidebar returns the sidebar of the protocol documentation.
func ProtocolSidebar() site.Sidebar {
	return site.Sidebar{
		Base: ProtocolSection,
		Items: []site.Entry{
			{
				Text: "开始",
				Items: []site.Entry{
					{Text: "协议简介", Link: "introduction"},
					{Text: "设计目标", Link: "design-goals"},
					{Text: "路线图", Link: "roadmap"},
				},
			},
			{
				Text:      "共识机制",
				Link:      "consensus/",
				Collapsed: site.Collapsed(false),
				Items: []site.Entry{
					{Text: "权益证明", Link: "consensus/proof-of-stake"},
					{Text: "验证者生命周期", Link: "consensus/validator-lifecycle"},
					{Text: "分叉选择规则", Link: "consensus/fork-choice"},
					{Text: "最终性", Link: "consensus/finality"},
					{Text: "罚没机制", Link: "consensus/slashing"},
				},
			},
			{
				Text:      "网络与同步",
				Link:      "networking/",
				Collapsed: site.Collapsed(true),
				Items: []site.Entry{
					{Text: "节点发现", Link: "networking/discovery"},
					{Text: "Gossip 协议", Link: "networking/gossip"},
					{Text: "状态同步", Link: "networking/state-sync"},
				},
			},
			{
				Text:      "执行层",
				Link:      "execution/",
				Collapsed: site.Collapsed(true),
				Items: []site.Entry{
					{Text: "账户模型", Link: "execution/accounts"},
					{Text: "交易生命周期", Link: "execution/transactions"},
					{Text: "手续费市场", Link: "execution/fee-market"},
					{Text: "虚拟机", Link: "execution/virtual-machine"},
					{Text: "状态存储", Link: "execution/state-storage"},
				},
			},
		},
	}
}

// EcosystemSidebar returns the sidebar of the ecosystem projects section.
func EcosystemSidebar() site.Sidebar {
	return site.Sidebar{
		Base: EcosystemSection,
		Items: []site.Entry{
			{Text: "生态概览", Link: "overview"},
			{
				Text: "基础设施",
				Items: []site.Entry{
					{Text: "钱包", Link: "infrastructure/wallets"},
					{Text: "跨链桥", Link: "infrastructure/bridges"},
					{Text: "预言机", Link: "infrastructure/oracles"},
					{Text: "区块浏览器", Link: "infrastructure/explorers"},
				},
			},
			{
				Text:      "应用",
				Collapsed: site.Collapsed(false),
				Items: []site.Entry{
					{Text: "去中心化金融", Link: "applications/defi"},
					{Text: "NFT 与数字藏品", Link: "applications/nft"},
					{Text: "去中心化自治组织", Link: "applications/dao"},
				},
			},
		},
	}
}

// ResearchSidebar returns the sidebar of the research notes section.
func ResearchSidebar() site.Sidebar {
	return site.Sidebar{
		Base: ResearchSection,
		Items: []site.Entry{
			{Text: "研究报告", Link: "/Research/"},
			{
				Text:      "扩容方案",
				Collapsed: site.Collapsed(false),
				Items: []site.Entry{
					{Text: "Rollup 原理", Link: "scaling/rollups"},
					{Text: "数据可用性", Link: "scaling/data-availability"},
					{Text: "分片", Link: "scaling/sharding"},
				},
			},
			{
				Text:      "安全",
				Collapsed: site.Collapsed(true),
				Items: []site.Entry{
					{Text: "MEV 分析", Link: "security/mev"},
					{Text: "智能合约审计", Link: "security/audits"},
				},
			},
		},
	}
}
