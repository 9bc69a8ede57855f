package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client application
type Config struct {
	API      APIConfig
	Search   SearchConfig
	SSH      SSHConfig
	StateDir string
	LogLevel string
}

// APIConfig holds settings for the remote ad-center API
type APIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// SearchConfig holds settings for the company autocomplete and contract list
type SearchConfig struct {
	Debounce time.Duration
	PageSize int
}

// SSHConfig holds settings for serving the UI over SSH
type SSHConfig struct {
	Host    string
	Port    string
	KeyPath string
}

// Load loads configuration from the environment, reading .env first when
// present. Every setting has a usable default.
func Load() *Config {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	return &Config{
		API: APIConfig{
			BaseURL: getEnvOrDefault("ADCENTER_API_URL", "http://localhost:8081/api"),
			Token:   os.Getenv("ADCENTER_TOKEN"),
			Timeout: getDurationOrDefault("ADCENTER_API_TIMEOUT", 10*time.Second),
		},
		Search: SearchConfig{
			Debounce: getDurationOrDefault("ADCENTER_SEARCH_DEBOUNCE", 400*time.Millisecond),
			PageSize: getIntOrDefault("ADCENTER_PAGE_SIZE", 5),
		},
		SSH: SSHConfig{
			Host:    getEnvOrDefault("SSH_HOST", "0.0.0.0"),
			Port:    getEnvOrDefault("SSH_PORT", "2222"),
			KeyPath: getEnvOrDefault("SSH_KEY_PATH", ".ssh/adcenter_ed25519"),
		},
		StateDir: os.Getenv("ADCENTER_STATE_DIR"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
