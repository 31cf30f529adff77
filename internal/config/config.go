// Package config loads application configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the CLIs need to reach the API and the local state.
type Config struct {
	// APIURL is the base URL of the Aluga Aqui REST API, without trailing slash.
	APIURL string
	// HTTPTimeout bounds every request issued by the API client.
	HTTPTimeout time.Duration
	// ConfigDir is where the durable cliente id lives.
	ConfigDir string
}

// Load reads an optional .env file and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIURL:      getEnv("ALUGA_API_URL", "http://localhost:3000"),
		HTTPTimeout: time.Duration(getEnvInt("ALUGA_HTTP_TIMEOUT_MS", 30000)) * time.Millisecond,
		ConfigDir:   getEnv("ALUGA_CONFIG_DIR", defaultConfigDir()),
	}
}

func defaultConfigDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "alugaaqui")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "alugaaqui")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
