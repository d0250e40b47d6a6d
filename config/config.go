package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	CRM           CRMConfig
	ReCAPTCHA     ReCAPTCHAConfig
	EventTriggers EventTriggerConfig
	Redis         RedisConfig
	Promo         PromoConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
}

// CRMConfig describes the upstream lead-capture collaborator. When the
// endpoints are empty, submissions are accepted locally and only logged.
type CRMConfig struct {
	LeadEndpoint    string
	ContactEndpoint string
	TimeoutSeconds  int
}

type ReCAPTCHAConfig struct {
	SecretKey string
	SiteKey   string
}

type EventTriggerConfig struct {
	LeadCreatedTriggerURL    string
	ContactCreatedTriggerURL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PromoConfig struct {
	DelayMs          int // delay before the popup auto-fires after arming
	OfferTitle       string
	OfferDescription string
	OfferCTALabel    string
	OfferCTAURL      string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	OTLPEndpoint      string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "https://tradespark.academy")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "https://tradespark.academy,https://www.tradespark.academy")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("CRM_TIMEOUT_SECONDS", 30)
	v.SetDefault("POPUP_DELAY_MS", 20000)
	v.SetDefault("POPUP_OFFER_TITLE", "Free Intro Session")
	v.SetDefault("POPUP_OFFER_DESCRIPTION", "Book a free one-on-one introduction session with one of our trading mentors.")
	v.SetDefault("POPUP_OFFER_CTA_LABEL", "Claim your spot")
	v.SetDefault("POPUP_OFFER_CTA_URL", "https://tradespark.academy/contact")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "") // OTLP over HTTP, tracing disabled when empty
	v.SetDefault("O11Y_SERVICE_NAME", "tradespark-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "tradespark")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// Parse allowed CORS origins (comma-separated)
	allowedOrigins := []string{}
	originsStr := v.GetString("ALLOWED_CORS_ORIGINS")
	if originsStr != "" {
		for _, origin := range strings.Split(originsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			BaseURL:        v.GetString("BASE_URL"),
			AllowedOrigins: allowedOrigins,
		},
		CRM: CRMConfig{
			LeadEndpoint:    v.GetString("CRM_LEAD_ENDPOINT"),
			ContactEndpoint: v.GetString("CRM_CONTACT_ENDPOINT"),
			TimeoutSeconds:  v.GetInt("CRM_TIMEOUT_SECONDS"),
		},
		ReCAPTCHA: ReCAPTCHAConfig{
			SecretKey: v.GetString("RECAPTCHA_SECRET_KEY"),
			SiteKey:   v.GetString("RECAPTCHA_SITE_KEY"),
		},
		EventTriggers: EventTriggerConfig{
			LeadCreatedTriggerURL:    v.GetString("LEAD_CREATED_TRIGGER_URL"),
			ContactCreatedTriggerURL: v.GetString("CONTACT_CREATED_TRIGGER_URL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Promo: PromoConfig{
			DelayMs:          v.GetInt("POPUP_DELAY_MS"),
			OfferTitle:       v.GetString("POPUP_OFFER_TITLE"),
			OfferDescription: v.GetString("POPUP_OFFER_DESCRIPTION"),
			OfferCTALabel:    v.GetString("POPUP_OFFER_CTA_LABEL"),
			OfferCTAURL:      v.GetString("POPUP_OFFER_CTA_URL"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint:      v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	if c.Promo.DelayMs <= 0 {
		return fmt.Errorf("POPUP_DELAY_MS must be positive")
	}

	if c.CRM.TimeoutSeconds <= 0 {
		return fmt.Errorf("CRM_TIMEOUT_SECONDS must be positive")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
