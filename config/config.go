package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "5000"
	SandboxBaseURL        = "https://sandbox-merchant.revolut.com"
	LiveBaseURL           = "https://merchant.revolut.com"
	DefaultTimeoutSeconds = 30
)

type Config struct {
	Port string

	// Revolut Merchant API
	RevolutAPIKey         string
	RevolutBaseURL        string
	RevolutTimeoutSeconds int

	CORSAllowOrigins []string

	// Log configuration
	LogLevel      string
	LogFormat     string
	LogOutput     string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) RevolutTimeout() time.Duration {
	return time.Duration(c.RevolutTimeoutSeconds) * time.Second
}

// RevolutEnv names the Revolut environment the base URL points at.
func (c *Config) RevolutEnv() string {
	switch strings.TrimRight(c.RevolutBaseURL, "/") {
	case SandboxBaseURL:
		return "sandbox"
	case LiveBaseURL:
		return "live"
	}
	return "custom"
}

// Validate reports configuration that would make every upstream call fail.
func (c *Config) Validate() error {
	if c.RevolutAPIKey == "" {
		return errors.New("REVOLUT_API_KEY is not set")
	}
	u, err := url.Parse(c.RevolutBaseURL)
	if err != nil {
		return fmt.Errorf("invalid REVOLUT_BASE_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid REVOLUT_BASE_URL %q: must be an absolute http(s) URL", c.RevolutBaseURL)
	}
	if c.RevolutTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid REVOLUT_TIMEOUT_SECONDS %d: must be positive", c.RevolutTimeoutSeconds)
	}
	return nil
}

// LoadConfig reads an optional .env file and then the process environment.
// PORT from the environment always overrides the default port.
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		Port: getEnv("PORT", DefaultPort),

		RevolutAPIKey:         os.Getenv("REVOLUT_API_KEY"),
		RevolutBaseURL:        strings.TrimRight(getEnv("REVOLUT_BASE_URL", SandboxBaseURL), "/"),
		RevolutTimeoutSeconds: getEnvAsInt("REVOLUT_TIMEOUT_SECONDS", DefaultTimeoutSeconds),

		CORSAllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		LogOutput:     getEnv("LOG_OUTPUT", "stdout"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
