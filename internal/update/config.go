package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DatabasePath         string
	GeminiAPIKey         string
	GeminiModel          string
	DesktopNotifications bool
	SchedulerBuffer      int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DatabasePath:    "dryleaf.db",
		SchedulerBuffer: 64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("DRYLEAF_DB_PATH")); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv("DRYLEAF_GEMINI_API_KEY")); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("DRYLEAF_GEMINI_MODEL")); v != "" {
		cfg.GeminiModel = v
	}
	if v, ok := getEnvBool("DRYLEAF_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("DRYLEAF_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

func atoiOrZero(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}
