package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment; a .env file is loaded first by
// godotenv/autoload in main.go.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Contact ContactConfig
	GitHub  GitHubConfig
	Site    SiteConfig
}

type ContactConfig struct {
	FormRelayURL  string        `env:"FORM_RELAY_URL"`
	ToEmail       string        `env:"TO_EMAIL" envDefault:"hello@example.com"`
	SMTPHost      string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort      string        `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser      string        `env:"SMTP_USER"`
	SMTPPass      string        `env:"SMTP_PASS"`
	PostmarkToken string        `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkFrom  string        `env:"POSTMARK_FROM"`
	RetryDelay    time.Duration `env:"CONTACT_RETRY_DELAY" envDefault:"500ms"`
	Timeout       time.Duration `env:"CONTACT_TIMEOUT" envDefault:"10s"`
}

type GitHubConfig struct {
	Username string        `env:"GITHUB_USERNAME" envDefault:"Zachkp"`
	Token    string        `env:"GITHUB_TOKEN"`
	APIURL   string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	CacheTTL time.Duration `env:"GITHUB_CACHE_TTL" envDefault:"10m"`
	Timeout  time.Duration `env:"GITHUB_TIMEOUT" envDefault:"10s"`
}

type SiteConfig struct {
	ResumePath string `env:"RESUME_PATH" envDefault:"./static/resume.pdf"`
	ResumeName string `env:"RESUME_NAME" envDefault:"resume.pdf"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
