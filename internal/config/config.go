package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	OpenAIKey   string `env:"OPENAI_API_KEY,required"`

	// Server
	Port int `env:"PORT" envDefault:"8080"`

	// Knowledge base
	Topics           []string      `env:"TOPICS" envSeparator:","`
	DefaultPartition string        `env:"DEFAULT_PARTITION" envDefault:"General Info"`
	FAQPartition     string        `env:"FAQ_PARTITION" envDefault:"FAQ"`
	KnowledgeTTL     time.Duration `env:"KNOWLEDGE_TTL" envDefault:"5m"`

	// Session behavior
	DedupTTL      time.Duration `env:"DEDUP_TTL" envDefault:"10s"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"1h"`
	LocalCacheTTL time.Duration `env:"LOCAL_CACHE_TTL" envDefault:"5m"`

	// Answer quality
	FAQThreshold   float64 `env:"FAQ_THRESHOLD" envDefault:"0.65"`
	RelevanceCheck bool    `env:"RELEVANCE_CHECK" envDefault:"false"`

	// Cost display
	DisplayCurrencyRate   float64 `env:"DISPLAY_CURRENCY_RATE" envDefault:"3.7"`
	DisplayCurrencySymbol string  `env:"DISPLAY_CURRENCY_SYMBOL" envDefault:"₪"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Topics) == 0 {
		cfg.Topics = DefaultTopics
	}
	return cfg, nil
}
