package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds everything the gateway reads from the environment. The
// upstream hotel API is the only required setting; the rest have defaults
// suitable for local development.
type Config struct {
	Port          string
	UpstreamURL   string
	CORSOrigins   []string
	SessionSecret string
	SessionTTL    time.Duration
	SearchTTL     time.Duration
	LogLevel      string
	Environment   string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func parseDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// Load builds the configuration from the environment. It fails when the
// upstream base URL is missing: without it every handler would be dead on
// arrival.
func Load() (*Config, error) {
	upstream := strings.TrimRight(envOrDefault("HOTEL_API_URL", "http://localhost:5000"), "/")
	if upstream == "" {
		return nil, fmt.Errorf("HOTEL_API_URL is not set")
	}

	secret := envOrDefault("SESSION_SECRET", "")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}

	return &Config{
		Port:          envOrDefault("PORT", "8080"),
		UpstreamURL:   upstream,
		CORSOrigins:   parseOrigins(os.Getenv("CORS_ORIGINS")),
		SessionSecret: secret,
		SessionTTL:    parseDuration("SESSION_TTL", 12*time.Hour),
		SearchTTL:     parseDuration("SEARCH_TTL", 30*time.Minute),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		Environment:   envOrDefault("APP_ENV", "development"),
	}, nil
}
