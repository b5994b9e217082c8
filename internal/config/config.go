package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvProduction = "production"

type Config struct {
	AppName   string
	AppEnv    string
	Port      int
	ServerURL string

	PostgresURL string

	JWTSecret        string
	JWTTokenDuration time.Duration

	ResetTokenTTL   time.Duration
	ResetTokenBytes int

	ItemsPerPage      int
	PasswordMinLength int

	DefaultAdminRoleID     string
	DefaultOrganizerRoleID string
	DefaultUserRoleID      string

	Mail MailConfig

	RateLimitPerSecond float64
	RateLimitBurst     int

	CORSAllowOrigins []string
	CORSMaxAge       time.Duration
}

type MailConfig struct {
	Provider       string
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPFrom       string
	SMTPFromName   string
	SMTPUseSSL     bool
	SMTPRequireTLS bool
	SendGridAPIKey string
}

func (c *Config) Production() bool {
	return c.AppEnv == EnvProduction
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "event manager server")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 3339)
	v.SetDefault("JWT_TOKEN_DURATION", "24h")
	v.SetDefault("RESET_PASSWORD_TOKEN_DURATION", 3600)
	v.SetDefault("RESET_TOKEN_BYTES", 60)
	v.SetDefault("ITEMS_PER_PAGE", 12)
	v.SetDefault("PASSWORD_MIN_LENGTH", 8)
	v.SetDefault("MAIL_PROVIDER", "smtp")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USE_SSL", false)
	v.SetDefault("SMTP_REQUIRE_TLS", true)
	v.SetDefault("RATE_LIMIT_PER_SECOND", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("CORS_MAX_AGE", "12h")
}

// Load reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppName:   v.GetString("APP_NAME"),
		AppEnv:    strings.ToLower(v.GetString("APP_ENV")),
		Port:      v.GetInt("PORT"),
		ServerURL: v.GetString("SERVER_URL"),

		PostgresURL: v.GetString("POSTGRES_URL"),

		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTTokenDuration: v.GetDuration("JWT_TOKEN_DURATION"),

		ResetTokenTTL:   time.Duration(v.GetInt("RESET_PASSWORD_TOKEN_DURATION")) * time.Second,
		ResetTokenBytes: v.GetInt("RESET_TOKEN_BYTES"),

		ItemsPerPage:      v.GetInt("ITEMS_PER_PAGE"),
		PasswordMinLength: v.GetInt("PASSWORD_MIN_LENGTH"),

		DefaultAdminRoleID:     v.GetString("DEFAULT_ADMIN_ROLE_ID"),
		DefaultOrganizerRoleID: v.GetString("DEFAULT_ORGANIZER_ROLE_ID"),
		DefaultUserRoleID:      v.GetString("DEFAULT_USER_ROLE_ID"),

		Mail: MailConfig{
			Provider:       strings.ToLower(v.GetString("MAIL_PROVIDER")),
			SMTPHost:       v.GetString("SMTP_HOST"),
			SMTPPort:       v.GetInt("SMTP_PORT"),
			SMTPUsername:   v.GetString("SMTP_USERNAME"),
			SMTPPassword:   v.GetString("SMTP_PASSWORD"),
			SMTPFrom:       v.GetString("SMTP_FROM"),
			SMTPFromName:   v.GetString("SMTP_FROM_NAME"),
			SMTPUseSSL:     v.GetBool("SMTP_USE_SSL"),
			SMTPRequireTLS: v.GetBool("SMTP_REQUIRE_TLS"),
			SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
		},

		RateLimitPerSecond: v.GetFloat64("RATE_LIMIT_PER_SECOND"),
		RateLimitBurst:     v.GetInt("RATE_LIMIT_BURST"),

		CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		CORSMaxAge:       v.GetDuration("CORS_MAX_AGE"),
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	if cfg.Mail.SMTPFromName == "" {
		cfg.Mail.SMTPFromName = cfg.AppName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList reads a comma separated env value.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var ErrInvalidConfig = errors.New("invalid configuration")

func (c *Config) Validate() error {
	var problems []string
	if c.PostgresURL == "" {
		problems = append(problems, "POSTGRES_URL is required")
	}
	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, "PORT must be between 1 and 65535")
	}
	if c.JWTTokenDuration <= 0 {
		problems = append(problems, "JWT_TOKEN_DURATION must be positive")
	}
	if c.ResetTokenTTL <= 0 {
		problems = append(problems, "RESET_PASSWORD_TOKEN_DURATION must be positive")
	}
	if c.ResetTokenBytes <= 0 {
		problems = append(problems, "RESET_TOKEN_BYTES must be positive")
	}
	if c.ItemsPerPage <= 0 {
		problems = append(problems, "ITEMS_PER_PAGE must be positive")
	}
	if c.PasswordMinLength <= 0 {
		problems = append(problems, "PASSWORD_MIN_LENGTH must be positive")
	}
	if c.RateLimitPerSecond <= 0 || c.RateLimitBurst <= 0 {
		problems = append(problems, "RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
