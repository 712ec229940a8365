package config

import "time"

// Config is the docsite tool configuration. The site structure itself is
// compiled in (see internal/sitedata); this file controls where and how the
// site is generated, rendered and served.
type Config struct {
	// Root is the project directory the site source directory is resolved
	// against. Relative values are resolved against the config file.
	Root      string          `yaml:"root,omitempty"`
	Output    OutputConfig    `yaml:"output"`
	Hugo      HugoConfig      `yaml:"hugo"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Preview   PreviewConfig   `yaml:"preview"`
}

// OutputConfig controls where the Hugo site is written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // remove generated files before writing
}

// HugoConfig represents Hugo-specific configuration.
type HugoConfig struct {
	Theme   string         `yaml:"theme,omitempty"`
	BaseURL string         `yaml:"base_url,omitempty"`
	Binary  string         `yaml:"binary,omitempty"`
	Render  bool           `yaml:"render,omitempty"` // run hugo after generation
	Params  map[string]any `yaml:"params,omitempty"` // deep-merged over theme params
}

// AnalyticsConfig configures the page-view collector behind the mount hook.
type AnalyticsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	AccountID string `yaml:"account_id,omitempty"`
	NATSURL   string `yaml:"nats_url,omitempty"`
	Subject   string `yaml:"subject,omitempty"`
}

// PreviewConfig configures the local preview server.
type PreviewConfig struct {
	Port            int           `yaml:"port"`
	Debounce        time.Duration `yaml:"debounce,omitempty"`
	RebuildInterval time.Duration `yaml:"rebuild_interval,omitempty"`
}
