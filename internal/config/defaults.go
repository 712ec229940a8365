package config

import (
	"time"

	"git.home.luguber.info/inful/docsite/internal/sitedata"
)

const (
	DefaultOutputDir    = "./site"
	DefaultTheme        = "hextra"
	DefaultHugoBinary   = "hugo"
	DefaultSubject      = "docsite.pageviews"
	DefaultPreviewPort  = 1313
	DefaultDebounce     = 300 * time.Millisecond
	DefaultRootDir      = "."
	defaultEnvLogLevel  = "DOCSITE_LOG_LEVEL"
	defaultEnvNATSURL   = "DOCSITE_NATS_URL"
	defaultEnvAccountID = "DOCSITE_ANALYTICS_ID"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Root == "" {
		cfg.Root = DefaultRootDir
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDir
	}
	if cfg.Hugo.Theme == "" {
		cfg.Hugo.Theme = DefaultTheme
	}
	if cfg.Hugo.Binary == "" {
		cfg.Hugo.Binary = DefaultHugoBinary
	}
	if cfg.Hugo.BaseURL == "" {
		cfg.Hugo.BaseURL = "/"
	}
	if cfg.Analytics.AccountID == "" {
		cfg.Analytics.AccountID = sitedata.AnalyticsID
	}
	if cfg.Analytics.Subject == "" {
		cfg.Analytics.Subject = DefaultSubject
	}
	if cfg.Preview.Port == 0 {
		cfg.Preview.Port = DefaultPreviewPort
	}
	if cfg.Preview.Debounce == 0 {
		cfg.Preview.Debounce = DefaultDebounce
	}
}
