package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Load reads the configuration file at path. Environment variables are
// expanded in the file content after .env files next to the config have
// been loaded; variables already set in the process win.
func Load(path string) (*Config, error) {
	loadEnvFiles(filepath.Dir(path))

	// #nosec G304 -- path is provided by the operator
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ferrors.ConfigError("configuration file not found").WithContext("path", path).Build()
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", path).Build()
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse config file").
			WithContext("path", path).Build()
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to defaults
// rooted at the working directory otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("No config file, using defaults", "path", path)
		loadEnvFiles(".")
		cfg := &Config{}
		applyEnvOverrides(cfg)
		applyDefaults(cfg)
		return cfg, Validate(cfg)
	}
	return Load(path)
}

func loadEnvFiles(dir string) {
	for _, name := range []string{".env", ".env.local"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			slog.Warn("Failed to load env file", "path", p, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", p)
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(defaultEnvNATSURL); v != "" {
		cfg.Analytics.NATSURL = v
	}
	if v := os.Getenv(defaultEnvAccountID); v != "" {
		cfg.Analytics.AccountID = v
	}
}

// LogLevelEnv names the variable that overrides the log level.
func LogLevelEnv() string { return defaultEnvLogLevel }

// Init writes an example configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).Build()
	}
	cfg := Default()
	cfg.Hugo.BaseURL = "https://docs.example.com/"
	cfg.Hugo.Params = map[string]any{"page": map[string]any{"width": "wide"}}
	cfg.Analytics.Enabled = true
	cfg.Analytics.NATSURL = "${DOCSITE_NATS_URL}"

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).Build()
	}
	return nil
}
