package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret           string
	DecisionTokenSecret string

	// AppBaseURL is the public origin embedded in emailed action links.
	AppBaseURL string

	EmailProvider string // "smtp", "sendgrid" or "" (log-only)
	EmailFrom     string
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SendGridKey   string

	SlackWebhookURL string

	RedisAddr string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",

		AppBaseURL: getenv("APP_BASE_URL", "http://localhost:8080"),

		EmailProvider: getenv("EMAIL_PROVIDER", ""),
		EmailFrom:     getenv("EMAIL_FROM", "BuilderBoard <notifications@builderboard.dev>"),
		SMTPHost:      getenv("SMTP_HOST", ""),
		SMTPPort:      getenv("SMTP_PORT", "587"),
		SMTPUsername:  getenv("SMTP_USERNAME", ""),
		SMTPPassword:  getenv("SMTP_PASSWORD", ""),
		SendGridKey:   getenv("SENDGRID_API_KEY", ""),

		SlackWebhookURL: getenv("SLACK_WEBHOOK_URL", ""),

		RedisAddr: getenv("REDIS_ADDR", ""),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.JWTSecret = mustGetenv("JWT_SECRET")
	// Decision links live in inboxes for a long time; let their secret rotate
	// independently from session tokens when configured.
	cfg.DecisionTokenSecret = getenv("DECISION_TOKEN_SECRET", cfg.JWTSecret)
	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
