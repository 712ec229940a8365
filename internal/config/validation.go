package config

import (
	"net/url"
	"strings"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Validate checks the configuration after defaults have been applied.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ferrors.ValidationError("config is nil").Build()
	}
	if strings.TrimSpace(cfg.Output.Directory) == "" {
		return ferrors.ValidationError("output directory is required").Build()
	}
	if cfg.Hugo.BaseURL != "/" {
		u, err := url.Parse(cfg.Hugo.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ferrors.ValidationError("hugo base_url must be an absolute URL or /").
				WithContext("base_url", cfg.Hugo.BaseURL).Build()
		}
	}
	if cfg.Preview.Port < 0 || cfg.Preview.Port > 65535 {
		return ferrors.ValidationError("preview port out of range").
			WithContext("port", cfg.Preview.Port).Build()
	}
	if cfg.Preview.Debounce < 0 || cfg.Preview.RebuildInterval < 0 {
		return ferrors.ValidationError("preview durations must not be negative").Build()
	}
	if cfg.Analytics.NATSURL != "" && !strings.Contains(cfg.Analytics.NATSURL, "://") {
		return ferrors.ValidationError("analytics nats_url must include a scheme").
			WithContext("nats_url", cfg.Analytics.NATSURL).Build()
	}
	return nil
}
