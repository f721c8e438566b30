package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr                      string
	Environment               string
	LogLevel                  string
	LogFormat                 string
	FixturePath               string
	CurrentUserID             string
	PageSize                  int
	MaxPageSize               int
	EmailFrom                 string
	EmailEnabled              bool
	EmailSimulatedDelay       time.Duration
	SMTPHost                  string
	SMTPPort                  int
	SMTPUser                  string
	SMTPPassword              string
	SMTPUseTLS                bool
	ContactRecipient          string
	ContactBrand              string
	MaxBodyBytes              int64
	RateLimitPerMinute        int
	ContactRateLimitPerMinute int
	CORSAllowedOrigins        []string
	MetricsEnabled            bool
}

var defaults = map[string]any{
	"APP_ADDR":                      ":8080",
	"APP_ENV":                       "development",
	"LOG_LEVEL":                     "info",
	"LOG_FORMAT":                    "json",
	"DIRECTORY_FIXTURE":             "",
	"DIRECTORY_CURRENT_USER":        "",
	"DIRECTORY_PAGE_SIZE":           10,
	"DIRECTORY_MAX_PAGE_SIZE":       100,
	"EMAIL_FROM":                    "noreply@example.com",
	"EMAIL_ENABLED":                 false,
	"EMAIL_SIMULATED_DELAY":         "500ms",
	"SMTP_HOST":                     "",
	"SMTP_PORT":                     587,
	"SMTP_USER":                     "",
	"SMTP_PASSWORD":                 "",
	"SMTP_USE_TLS":                  true,
	"CONTACT_RECIPIENT":             "intake@example.com",
	"CONTACT_BRAND":                 "PRODIGY9",
	"MAX_BODY_BYTES":                1048576,
	"RATE_LIMIT_PER_MINUTE":         600,
	"CONTACT_RATE_LIMIT_PER_MINUTE": 10,
	"CORS_ALLOWED_ORIGINS":          "http://localhost:3000",
	"METRICS_ENABLED":               true,
}

// Load reads config.yaml (if present in the working directory) and lets
// environment variables override every key.
func Load() Config {
	v := New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()
	return FromViper(v)
}

func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

func FromViper(v *viper.Viper) Config {
	return Config{
		Addr:                      v.GetString("APP_ADDR"),
		Environment:               v.GetString("APP_ENV"),
		LogLevel:                  v.GetString("LOG_LEVEL"),
		LogFormat:                 v.GetString("LOG_FORMAT"),
		FixturePath:               v.GetString("DIRECTORY_FIXTURE"),
		CurrentUserID:             v.GetString("DIRECTORY_CURRENT_USER"),
		PageSize:                  v.GetInt("DIRECTORY_PAGE_SIZE"),
		MaxPageSize:               v.GetInt("DIRECTORY_MAX_PAGE_SIZE"),
		EmailFrom:                 v.GetString("EMAIL_FROM"),
		EmailEnabled:              v.GetBool("EMAIL_ENABLED"),
		EmailSimulatedDelay:       v.GetDuration("EMAIL_SIMULATED_DELAY"),
		SMTPHost:                  v.GetString("SMTP_HOST"),
		SMTPPort:                  v.GetInt("SMTP_PORT"),
		SMTPUser:                  v.GetString("SMTP_USER"),
		SMTPPassword:              v.GetString("SMTP_PASSWORD"),
		SMTPUseTLS:                v.GetBool("SMTP_USE_TLS"),
		ContactRecipient:          v.GetString("CONTACT_RECIPIENT"),
		ContactBrand:              v.GetString("CONTACT_BRAND"),
		MaxBodyBytes:              v.GetInt64("MAX_BODY_BYTES"),
		RateLimitPerMinute:        v.GetInt("RATE_LIMIT_PER_MINUTE"),
		ContactRateLimitPerMinute: v.GetInt("CONTACT_RATE_LIMIT_PER_MINUTE"),
		CORSAllowedOrigins:        splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		MetricsEnabled:            v.GetBool("METRICS_ENABLED"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("DIRECTORY_PAGE_SIZE must be positive")
	}
	if c.MaxPageSize < c.PageSize {
		return fmt.Errorf("DIRECTORY_MAX_PAGE_SIZE must be at least DIRECTORY_PAGE_SIZE")
	}
	if strings.TrimSpace(c.ContactRecipient) == "" {
		return fmt.Errorf("CONTACT_RECIPIENT is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute < 0 || c.ContactRateLimitPerMinute < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}
	if c.EmailEnabled && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST must be set when EMAIL_ENABLED is true")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text")
	}
	return nil
}
