package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	CORSOrigin string

	GeminiAPIKey string
	GeminiModel  string

	// Optional: enables the Postgres result cache when non-empty.
	DatabaseURL string

	// Bot binary only.
	TelegramBotToken string
	WebhookURL       string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8000"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
	}
}

// LoadBot is Load plus the Telegram credentials the bot binary needs.
func LoadBot() *Config {
	cfg := Load()
	cfg.TelegramBotToken = mustEnv("TELEGRAM_BOT_TOKEN")
	cfg.WebhookURL = getEnv("WEBHOOK_URL", "")
	return cfg
}
