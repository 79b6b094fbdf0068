package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/leaddesk/config.yaml",
	"/etc/leaddesk/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "LEADDESK_CONFIG_PATH"

// envPrefix scopes the environment variables read as overrides.
const envPrefix = "APP_"

// APIConfig locates the remote CRM REST API.
type APIConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

type Config struct {
	ListenAddr        string    `koanf:"listen_addr"`
	BaseURL           string    `koanf:"base_url"`
	API               APIConfig `koanf:"api"`
	PrometheusEnabled bool      `koanf:"prometheus_enabled"`
	TrustedProxies    []string  `koanf:"trusted_proxies"`
}

func defaultConfig() *Config {
	return &Config{
		ListenAddr: ":8080",
		BaseURL:    "http://localhost:8080",
		API: APIConfig{
			BaseURL: "http://127.0.0.1:8000/api",
			Timeout: 15 * time.Second,
		},
		PrometheusEnabled: false,
		TrustedProxies:    []string{},
	}
}

// Load builds the configuration from three layers: struct defaults, an
// optional YAML config file, and APP_* environment variables (highest
// priority).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// APP_LISTEN_ADDR -> listen_addr, APP_API_BASE_URL -> api.base_url
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitTrustedProxies(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the handful of fields everything downstream relies on.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen_addr is required")
	}
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if _, err := url.Parse(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("base_url is not a valid URL: %w", err)
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}
	return nil
}

// CookieSecure reports whether session cookies should carry the Secure
// flag: on unless the app is served over plain http (local development).
func (c *Config) CookieSecure() bool {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return true
	}
	return base.Scheme == "https"
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransform maps APP_* variable names to koanf paths. The api group is
// the only nested one.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if rest, ok := strings.CutPrefix(key, "api_"); ok {
		return "api." + rest
	}
	return key
}

// splitTrustedProxies converts a comma-separated env value into a slice;
// YAML files already provide a list.
func splitTrustedProxies(k *koanf.Koanf) error {
	val := k.Get("trusted_proxies")
	strVal, ok := val.(string)
	if !ok {
		return nil
	}
	var proxies []string
	for _, item := range strings.Split(strVal, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			proxies = append(proxies, trimmed)
		}
	}
	return k.Set("trusted_proxies", proxies)
}
