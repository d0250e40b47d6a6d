package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			BaseURL:        "https://tradespark.academy",
			AllowedOrigins: []string{"https://tradespark.academy"},
		},
		CRM:   CRMConfig{TimeoutSeconds: 30},
		Promo: PromoConfig{DelayMs: 20000},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "https://tradespark.academy", cfg.Server.BaseURL)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
	assert.Equal(t, 20000, cfg.Promo.DelayMs)
	assert.Equal(t, 30, cfg.CRM.TimeoutSeconds)
	assert.Equal(t, "tradespark-api", cfg.Observability.ServiceName)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("POPUP_DELAY_MS", "5000")
	t.Setenv("ALLOWED_CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("CRM_LEAD_ENDPOINT", "https://crm.example.com/leads")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5000, cfg.Promo.DelayMs)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://crm.example.com/leads", cfg.CRM.LeadEndpoint)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "PORT is required",
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.Server.BaseURL = "" },
			wantErr: "BASE_URL is required",
		},
		{
			name:    "missing cors origins",
			mutate:  func(c *Config) { c.Server.AllowedOrigins = nil },
			wantErr: "ALLOWED_CORS_ORIGINS is required",
		},
		{
			name:    "non-positive popup delay",
			mutate:  func(c *Config) { c.Promo.DelayMs = 0 },
			wantErr: "POPUP_DELAY_MS must be positive",
		},
		{
			name:    "non-positive crm timeout",
			mutate:  func(c *Config) { c.CRM.TimeoutSeconds = -1 },
			wantErr: "CRM_TIMEOUT_SECONDS must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: true,
		},
		{
			name: "debug gin mode",
			config: &Config{
				Server: ServerConfig{GinMode: "debug"},
			},
			expected: true,
		},
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production", GinMode: "release"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Server: ServerConfig{AppEnv: "production"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "development"}}).IsProduction())
}
