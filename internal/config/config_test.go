package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/sitedata"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, "docsite.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(writeConfig(t, dir, "output:\n  directory: out\n"))
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Output.Directory)
	assert.Equal(t, DefaultTheme, cfg.Hugo.Theme)
	assert.Equal(t, DefaultHugoBinary, cfg.Hugo.Binary)
	assert.Equal(t, "/", cfg.Hugo.BaseURL)
	assert.Equal(t, sitedata.AnalyticsID, cfg.Analytics.AccountID)
	assert.Equal(t, DefaultSubject, cfg.Analytics.Subject)
	assert.Equal(t, DefaultPreviewPort, cfg.Preview.Port)
	assert.Equal(t, DefaultDebounce, cfg.Preview.Debounce)
	assert.Equal(t, filepath.Join(dir, "."), cfg.Root)
}

func TestLoad_ExpandsEnvAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOCSITE_TEST_BASE=https://docs.example.org/\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("DOCSITE_TEST_BASE") })

	cfg, err := Load(writeConfig(t, dir, `
hugo:
  base_url: ${DOCSITE_TEST_BASE}
preview:
  rebuild_interval: 15m
`))
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.org/", cfg.Hugo.BaseURL)
	assert.Equal(t, 15*time.Minute, cfg.Preview.RebuildInterval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOCSITE_NATS_URL", "nats://127.0.0.1:4222")
	t.Setenv("DOCSITE_ANALYTICS_ID", "G-OVERRIDE")

	cfg, err := Load(writeConfig(t, t.TempDir(), "analytics:\n  enabled: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "nats://127.0.0.1:4222", cfg.Analytics.NATSURL)
	assert.Equal(t, "G-OVERRIDE", cfg.Analytics.AccountID)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	_, err = Load(writeConfig(t, t.TempDir(), "output: [unterminated\n"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	_, err = Load(writeConfig(t, t.TempDir(), "hugo:\n  base_url: docs.example.org\n"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "absolute base url", mutate: func(c *Config) { c.Hugo.BaseURL = "https://x.org/" }},
		{name: "empty output", mutate: func(c *Config) { c.Output.Directory = " " }, wantErr: true},
		{name: "bad port", mutate: func(c *Config) { c.Preview.Port = 70000 }, wantErr: true},
		{name: "negative interval", mutate: func(c *Config) { c.Preview.RebuildInterval = -time.Second }, wantErr: true},
		{name: "nats without scheme", mutate: func(c *Config) { c.Analytics.NATSURL = "localhost:4222" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.Error(t, Validate(nil))
}

func TestInit(t *testing.T) {
	p := filepath.Join(t.TempDir(), "docsite.yaml")
	require.NoError(t, Init(p, false))

	err := Init(p, false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	require.NoError(t, Init(p, true))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/", cfg.Hugo.BaseURL)
	assert.True(t, cfg.Analytics.Enabled)
}
