package config

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v4"
)

type OIDCProvider struct {
	Id           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURL  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

type Config struct {
	ListenAddr  string `yaml:"listen_addr"`
	DBPath      string `yaml:"db_path"`
	APIBaseURL  string `yaml:"api_base_url"`
	AuthEnabled bool   `yaml:"auth_enabled"`

	// Interval between water reminder notifications. Kept short by default
	// for demo setups, expected to be hours in production.
	WaterReminderInterval Duration `yaml:"water_reminder_interval"`

	// Interval for the periodic insight refresh and chart random walk.
	RefreshInterval Duration `yaml:"refresh_interval"`

	NotifyFrom string `yaml:"notify_from"`

	OIDCProviders []OIDCProvider `yaml:"oidc_providers"`
}

// Load reads the YAML config named by VITALS_CONFIG (default config.yaml)
// and applies env overrides for the fields that commonly vary per host.
func Load() (*Config, error) {
	path := getenv("VITALS_CONFIG", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.ListenAddr = getenv("VITALS_LISTEN_ADDR", defaultStr(cfg.ListenAddr, ":8080"))
	cfg.DBPath = getenv("VITALS_DB_PATH", defaultStr(cfg.DBPath, "vitals.db"))
	cfg.APIBaseURL = getenv("VITALS_API_BASE", defaultStr(cfg.APIBaseURL, "http://localhost:8080"))

	if cfg.WaterReminderInterval <= 0 {
		cfg.WaterReminderInterval = Duration(30 * time.Second)
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = Duration(10 * time.Second)
	}
	if cfg.NotifyFrom == "" {
		cfg.NotifyFrom = "reminders@vitals.dev"
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
