package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REVOLUT_API_KEY", "sk_test")
	t.Setenv("REVOLUT_BASE_URL", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_OUTPUT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, SandboxBaseURL, cfg.RevolutBaseURL)
	assert.Equal(t, "sk_test", cfg.RevolutAPIKey)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.RevolutTimeoutSeconds)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "stdout", cfg.LogOutput)
	assert.Equal(t, "sandbox", cfg.RevolutEnv())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigPortFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("REVOLUT_BASE_URL", LiveBaseURL+"/")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, https://shop.example")
	t.Setenv("REVOLUT_TIMEOUT_SECONDS", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, LiveBaseURL, cfg.RevolutBaseURL)
	assert.Equal(t, "live", cfg.RevolutEnv())
	assert.Equal(t, []string{"http://localhost:5173", "https://shop.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, "5s", cfg.RevolutTimeout().String())
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			RevolutAPIKey:         "sk_test",
			RevolutBaseURL:        SandboxBaseURL,
			RevolutTimeoutSeconds: 30,
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"Missing API Key", func(c *Config) { c.RevolutAPIKey = "" }, "REVOLUT_API_KEY"},
		{"Relative Base URL", func(c *Config) { c.RevolutBaseURL = "merchant.revolut.com" }, "absolute"},
		{"Unsupported Scheme", func(c *Config) { c.RevolutBaseURL = "ftp://merchant.revolut.com" }, "absolute"},
		{"Zero Timeout", func(c *Config) { c.RevolutTimeoutSeconds = 0 }, "REVOLUT_TIMEOUT_SECONDS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
