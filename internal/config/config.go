package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read from environment variables once at startup. A .env file in
// the working directory is honored via godotenv autoload (see server).
type Config struct {
	Port                int
	AllowedOrigins      []string
	GenerateDelay       time.Duration
	ExecuteDelay        time.Duration
	HistoryDisplayLimit int
	SessionTTL          time.Duration
}

func Load() Config {
	return Config{
		Port:                envInt("PORT", 8080),
		AllowedOrigins:      envList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		GenerateDelay:       envMillis("GENERATE_DELAY_MS", 1000),
		ExecuteDelay:        envMillis("EXECUTE_DELAY_MS", 500),
		HistoryDisplayLimit: envInt("HISTORY_DISPLAY_LIMIT", 5),
		SessionTTL:          time.Duration(envInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func envMillis(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Millisecond
}

func envList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
