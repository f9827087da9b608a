package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

type Config struct {
	ListenPort      string        // ex: "127.0.0.1:8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ContactsFile    string          // optional seed file, empty = start with no contacts
	DefaultPlatform domain.Platform // platform a fresh session starts with
	DefaultMessage  string          // custom message a fresh session starts with
	OpenDelay       time.Duration   // spacing between links opened by "open all"

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IPs (e.g. "127.0.0.1, 10.0.0.0/8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers
	CORSOrigins  []string // optional, origins allowed to call the API from another page
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SHARELINK_LISTEN_PORT", "127.0.0.1:8080"),
		ShutdownTimeout: mustDuration("SHARELINK_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("SHARELINK_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("SHARELINK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SHARELINK_PRETTY_LOG", true),

		// Form defaults
		ContactsFile:    getenv("SHARELINK_CONTACTS_FILE", ""),
		DefaultPlatform: mustPlatform("SHARELINK_DEFAULT_PLATFORM", domain.PlatformWhatsApp),
		DefaultMessage:  getenvAllowEmpty("SHARELINK_DEFAULT_MESSAGE", "Check out my Wordle result!"),
		OpenDelay:       mustDuration("SHARELINK_OPEN_DELAY", time.Second),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("SHARELINK_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("SHARELINK_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("SHARELINK_TRUST_PROXY", false),
		CORSOrigins:  splitAndTrim(getenv("SHARELINK_CORS_ORIGINS", "")),
	}

	if cfg.OpenDelay <= 0 {
		panic("❌ FATAL: SHARELINK_OPEN_DELAY must be positive")
	}

	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", *cfg)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvAllowEmpty keeps an explicitly empty value instead of the default.
func getenvAllowEmpty(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func mustPlatform(key string, def domain.Platform) domain.Platform {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	p, err := domain.ParsePlatform(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid platform for %s: %s", key, v))
	}
	return p
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
