package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration for the storefront API.
// It merges file defaults and environment overrides to support both local
// and deployed runs.
type Config struct {
	ServiceID string

	HTTPPort int

	GatewayEndpoint string
	GatewayToken    string
	GatewayTimeout  time.Duration

	RatesURLTemplate string
	RatesTimeout     time.Duration

	RedisURL     string
	KafkaBrokers []string

	SessionSecret        string
	AllowEphemeralSecret bool
	SessionTTL           time.Duration
	RateStaleness        time.Duration
	RateRefreshInterval  time.Duration
	SearchIndexTTL       time.Duration
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Gateway struct {
		Endpoint    string `yaml:"endpoint"`
		AccessToken string `yaml:"access_token"`
	} `yaml:"gateway"`
	Rates struct {
		URLTemplate string `yaml:"url_template"`
	} `yaml:"rates"`
	Dependencies struct {
		RedisURL     string   `yaml:"redis_url"`
		KafkaBrokers []string `yaml:"kafka_brokers"`
	} `yaml:"dependencies"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// This order keeps local bootstrap simple while allowing environment-specific overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:            "petitpas-storefront",
		HTTPPort:             8080,
		GatewayTimeout:       10 * time.Second,
		RatesTimeout:         8 * time.Second,
		AllowEphemeralSecret: true,
		SessionTTL:           30 * 24 * time.Hour,
		RateStaleness:        time.Hour,
		RateRefreshInterval:  time.Hour,
		SearchIndexTTL:       5 * time.Minute,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Gateway.Endpoint != "" {
			cfg.GatewayEndpoint = f.Gateway.Endpoint
		}
		if f.Gateway.AccessToken != "" {
			cfg.GatewayToken = f.Gateway.AccessToken
		}
		if f.Rates.URLTemplate != "" {
			cfg.RatesURLTemplate = f.Rates.URLTemplate
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = f.Dependencies.KafkaBrokers
		}
	}

	cfg.GatewayEndpoint = envOrDefault("GATEWAY_ENDPOINT", cfg.GatewayEndpoint)
	cfg.GatewayToken = envOrDefault("GATEWAY_ACCESS_TOKEN", cfg.GatewayToken)
	cfg.RatesURLTemplate = envOrDefault("RATES_URL_TEMPLATE", cfg.RatesURLTemplate)
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.SessionSecret = envOrDefault("SESSION_SECRET", cfg.SessionSecret)
	cfg.AllowEphemeralSecret = envBool("SESSION_ALLOW_EPHEMERAL", cfg.AllowEphemeralSecret)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GatewayTimeout = time.Duration(envInt("GATEWAY_TIMEOUT_SECONDS", int(cfg.GatewayTimeout.Seconds()))) * time.Second
	cfg.RatesTimeout = time.Duration(envInt("RATES_TIMEOUT_SECONDS", int(cfg.RatesTimeout.Seconds()))) * time.Second
	cfg.SessionTTL = time.Duration(envInt("SESSION_EXPIRY_DAYS", int(cfg.SessionTTL.Hours()/24))) * 24 * time.Hour
	cfg.RateStaleness = time.Duration(envInt("RATE_STALENESS_MINUTES", int(cfg.RateStaleness.Minutes()))) * time.Minute
	cfg.RateRefreshInterval = time.Duration(envInt("RATE_REFRESH_MINUTES", int(cfg.RateRefreshInterval.Minutes()))) * time.Minute
	cfg.SearchIndexTTL = time.Duration(envInt("SEARCH_INDEX_TTL_SECONDS", int(cfg.SearchIndexTTL.Seconds()))) * time.Second

	if cfg.GatewayEndpoint == "" {
		return Config{}, fmt.Errorf("missing GATEWAY_ENDPOINT")
	}
	if cfg.GatewayToken == "" {
		return Config{}, fmt.Errorf("missing GATEWAY_ACCESS_TOKEN")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}
	if cfg.SessionSecret == "" && !cfg.AllowEphemeralSecret {
		return Config{}, fmt.Errorf("missing SESSION_SECRET")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// envBool parses common boolean env forms while keeping a deterministic fallback.
func envBool(name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return fallback
	}
}

// envCSV parses comma-separated env vars and removes empty segments.
func envCSV(name string, fallback []string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	parts := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	if len(parts) == 0 {
		return fallback
	}
	return parts
}
