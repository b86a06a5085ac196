package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/MikeSquared-Agency/chatstat/internal/lexicon"
)

type Config struct {
	Port          int
	NatsURL       string
	NatsToken     string
	NatsEnabled   bool
	DatabaseURL   string
	LogLevel      string
	LogFile       string
	StopWordsPath string
	APIToken      string
	MaxUploadMB   int
	SlackBotToken string
	SlackChannel  string
}

func Load() Config {
	return Config{
		Port:          envInt("CHATSTAT_PORT", 8760),
		NatsURL:       envStr("NATS_URL", "nats://hermes:4222"),
		NatsToken:     envStr("NATS_TOKEN", ""),
		NatsEnabled:   envBool("CHATSTAT_NATS_ENABLED", true),
		DatabaseURL:   envStr("DATABASE_URL", ""),
		LogLevel:      envStr("LOG_LEVEL", "info"),
		LogFile:       envStr("CHATSTAT_LOG_FILE", ""),
		StopWordsPath: envStr("CHATSTAT_STOPWORDS", lexicon.DefaultStopWordsPath),
		APIToken:      envStr("CHATSTAT_API_TOKEN", ""),
		MaxUploadMB:   envInt("CHATSTAT_MAX_UPLOAD_MB", 20),
		SlackBotToken: envStr("SLACK_BOT_TOKEN", ""),
		SlackChannel:  envStr("SLACK_REPORTS_CHANNEL", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}
