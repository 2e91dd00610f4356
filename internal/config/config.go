package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core. Missing token or review channel is fatal at startup.
	BotToken  string `env:"BOT_TOKEN,required"`
	ChannelID string `env:"CHANNEL_ID,required"`

	// Webhook mode is selected by setting a domain; otherwise the bot polls.
	WebhookDomain string `env:"WEBHOOK_DOMAIN"`
	Port          int    `env:"PORT" envDefault:"3000"`

	// Session store. Redis when an address is set, in-memory otherwise.
	RedisAddr       string `env:"REDIS_ADDR"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS" envDefault:"24"`

	// Optional archive of completed applications.
	PostgresDSN string `env:"POSTGRES_DSN"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) WebhookURL() string {
	if c.WebhookDomain == "" {
		return ""
	}
	return fmt.Sprintf("https://%s/webhook", c.WebhookDomain)
}
