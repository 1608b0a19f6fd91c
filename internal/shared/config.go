package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Config is built once at startup and only read afterwards.
type Config struct {
	AppEnv            string
	HTTPAddr          string
	MetricsAddr       string
	GeminiKey         string
	GeminiEnabled     bool
	GeminiModel       string
	GeminiBase        string
	GeminiRPS         int
	GenerationTimeout time.Duration
	LoungeCount       int
	CatalogFile       string
	PreviewWorkers    int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:            env("APP_ENV", "prod"),
		HTTPAddr:          env("HTTP_ADDR", ":5001"),
		MetricsAddr:       env("METRICS_ADDR", ""),
		GeminiKey:         env("GEMINI_API_KEY", ""),
		GeminiEnabled:     boolEnv("GEMINI_ENABLED", true),
		GeminiModel:       env("GEMINI_MODEL", "gemini-1.5-pro"),
		GeminiBase:        env("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiRPS:         atoi("GEMINI_RPS", 5),
		GenerationTimeout: time.Duration(atoi("GENERATION_TIMEOUT_SECONDS", 5)) * time.Second,
		LoungeCount:       atoi("LOUNGE_COUNT", 100),
		CatalogFile:       env("CATALOG_FILE", "catalog.yaml"),
		PreviewWorkers:    atoi("PREVIEW_WORKERS", 4),
	}
	if c.GeminiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is empty, AI features will be simulated")
	}
	return c
}

// GenerationEnabled reports whether a real model should be called.
func (c Config) GenerationEnabled() bool {
	return c.GeminiEnabled && c.GeminiKey != ""
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func boolEnv(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
