package config

import (
	"fmt"
	"os"
)

type Config struct {
	// Messenger platform credentials
	AppSecret       string
	VerifyToken     string
	PageAccessToken string

	// Externally reachable base URL, used to build absolute asset links
	ServerURL string

	// Server configuration
	Port string
}

// LoadConfig reads configuration from the environment. The credential
// values and the server URL are required; a missing one is a startup
// failure and the caller must not start the server.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppSecret:       os.Getenv("APP_SECRET"),
		VerifyToken:     os.Getenv("WEBHOOK_VERIFY_TOKEN"),
		PageAccessToken: os.Getenv("PAGE_ACCESS_TOKEN"),
		ServerURL:       os.Getenv("SERVER_URL"),
		Port:            getEnv("PORT", "8080"),
	}

	required := []struct {
		key   string
		value string
	}{
		{"APP_SECRET", cfg.AppSecret},
		{"WEBHOOK_VERIFY_TOKEN", cfg.VerifyToken},
		{"PAGE_ACCESS_TOKEN", cfg.PageAccessToken},
		{"SERVER_URL", cfg.ServerURL},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("missing required configuration: %s", r.key)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
