// Package config loads bot configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultModel is the answer-generation model used when GEMINI_MODEL is
// not set.
const DefaultModel = "gemini-1.5-flash"

// DefaultBaseURL is the Gemini OpenAI-compatible chat completions
// endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// Config holds everything the bot needs at startup.
type Config struct {
	TelegramToken  string
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	PollTimeout    int // long-poll timeout for getUpdates, seconds
	RequestTimeout int // answer-generation HTTP timeout, seconds
}

// Load reads configuration from a .env file (if present) and the
// environment. Missing required secrets are errors so startup can abort
// before any handler runs.
func Load() (Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return Config{}, fmt.Errorf("TELEGRAM_TOKEN is required in environment")
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return Config{}, fmt.Errorf("GEMINI_API_KEY is required in environment")
	}

	return Config{
		TelegramToken:  token,
		GeminiAPIKey:   apiKey,
		GeminiModel:    envOrDefault("GEMINI_MODEL", DefaultModel),
		GeminiBaseURL:  envOrDefault("GEMINI_BASE_URL", DefaultBaseURL),
		PollTimeout:    envIntOrDefault("TG_TIMEOUT", 30),
		RequestTimeout: envIntOrDefault("GEMINI_TIMEOUT_SECONDS", 60),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
