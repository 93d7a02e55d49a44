package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full configuration surface, read once at startup and
// injected from there. No component reads the environment at call time.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	AdminEmail  string `env:"ADMIN_EMAIL" envDefault:"max.salterberg@kmu-freight.com"`
	FrontendURL string `env:"FRONTEND_URL"`

	// Optional. Without a broker, notifications run on in-process goroutines.
	RabbitMQURL string `env:"RABBITMQ_URL"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.AdminEmail
	}
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = "no-reply@kmu-freight.com"
	}

	return cfg, nil
}

// SMTPConfigured reports whether outbound mail can actually be sent.
// Anything less falls back to the console sender.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
}
