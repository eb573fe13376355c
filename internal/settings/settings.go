// Package settings reads process settings from the environment, after
// loading any .env file.
package settings

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/agiangrant/twclass/tw"
)

// Settings are the process-wide defaults; command line flags override them.
type Settings struct {
	Dir       string
	Version   tw.Version
	CacheSize int
	LogLevel  slog.Level
	LogFormat string
}

// Load reads .env files (default ".env"; missing files are ignored) into
// the environment without overriding variables that are already set, then
// reads TWCLASS_* variables.
func Load(envFiles ...string) (Settings, error) {
	_ = godotenv.Load(envFiles...)
	return FromLookup(os.Getenv)
}

// FromLookup reads settings through getenv.
func FromLookup(getenv func(string) string) (Settings, error) {
	get := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}
	s := Settings{
		Dir:       firstNonEmpty(get("TWCLASS_DIR"), "."),
		CacheSize: tw.DefaultCacheSize,
		LogLevel:  slog.LevelWarn,
		LogFormat: firstNonEmpty(strings.ToLower(get("TWCLASS_LOG_FORMAT")), "text"),
	}

	if raw := get("TWCLASS_VERSION"); raw != "" {
		v, ok := tw.ParseVersion(raw)
		if !ok {
			return s, fmt.Errorf("TWCLASS_VERSION: unsupported tailwind version %q", raw)
		}
		s.Version = v
	}
	if raw := get("TWCLASS_CACHE_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return s, fmt.Errorf("TWCLASS_CACHE_SIZE: want a positive integer, got %q", raw)
		}
		s.CacheSize = n
	}
	if raw := get("TWCLASS_LOG_LEVEL"); raw != "" {
		if err := s.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return s, fmt.Errorf("TWCLASS_LOG_LEVEL: %w", err)
		}
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return s, fmt.Errorf("TWCLASS_LOG_FORMAT: want text or json, got %q", s.LogFormat)
	}
	return s, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
