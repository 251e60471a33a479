package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ecowatt/solardevis/internal/models"
)

type Config struct {
	Port          string
	DatabasePath  string
	GeminiAPIKey  string
	GeminiModel   string
	PricingPreset string
}

// Load reads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (loaded by main) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabasePath = getEnv("DATABASE_PATH", "solardevis.db")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiModel = os.Getenv("GEMINI_MODEL")
	cfg.PricingPreset = os.Getenv("PRICING_PRESET")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// DefaultQuoteConfig returns the quote parameters new quotes start from:
// the built-in defaults, overlaid with the optional YAML preset file when
// one is configured. Fields absent from the preset keep their defaults.
func (c Config) DefaultQuoteConfig() (models.QuoteConfig, error) {
	qc := models.DefaultQuoteConfig()
	if c.PricingPreset == "" {
		return qc, nil
	}
	buf, err := os.ReadFile(c.PricingPreset)
	if err != nil {
		return qc, fmt.Errorf("reading pricing preset: %w", err)
	}
	if err := yaml.Unmarshal(buf, &qc); err != nil {
		return qc, fmt.Errorf("parsing pricing preset: %w", err)
	}
	return qc, nil
}
