package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

// Service describes the running service.
// It's set once on startup and never mutated.
type Service struct {
	Title       string `env:"APP_NAME" envDefault:"YouTube Transcript API"`
	Description string `env:"APP_DESCRIPTION" envDefault:"A simple service to fetch transcripts from YouTube videos"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
}

type Config struct {
	// Running localy or not
	Debug    bool   `env:"DEBUG" envDefault:"false"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Service descriptor
	Service Service

	// YouTube settings
	YouTubeBaseURL string        `env:"YOUTUBE_BASE_URL" envDefault:"https://www.youtube.com"`
	YouTubeAPIKey  string        `env:"YOUTUBE_API_KEY"`
	YouTubeTimeout time.Duration `env:"YOUTUBE_TIMEOUT" envDefault:"20s"`
	YouTubeRPS     float64       `env:"YOUTUBE_RPS" envDefault:"5"`
	YouTubeBurst   int           `env:"YOUTUBE_BURST" envDefault:"10"`

	// Gemini settings
	GeminiAPIKey   string `env:"GEMINI_API_KEY"`
	GeminiModel    string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiBaseURL  string `env:"GEMINI_BASE_URL"` // empty means the public endpoint
	GeminiRPM      int64  `env:"GEMINI_RPM" envDefault:"10"`
	GeminiRPD      int64  `env:"GEMINI_RPD" envDefault:"250"`
	GeminiTimezone string `env:"GEMINI_TIMEZONE" envDefault:"America/Los_Angeles"`

	// Summaries
	SummaryDefaultLength int           `env:"SUMMARY_DEFAULT_LENGTH" envDefault:"300"`
	SummaryMaxTokens     int           `env:"SUMMARY_MAX_TOKENS" envDefault:"80000"`
	SummaryCacheTTL      time.Duration `env:"SUMMARY_CACHE_TTL" envDefault:"24h"` // zero disables the cache

	// Redis
	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisUsername string `env:"REDIS_USERNAME"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Local app host and port
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8000"`
}

// New creates new config object
func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("failed to parse the config; %v", err)
	}
	return cfg
}

// Parse parses the config from the environment
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	// Don't let the throttle block all outbound requests
	cfg.YouTubeBurst = max(cfg.YouTubeBurst, 1)

	return &cfg, nil
}

// SummariesEnabled reports whether summaries can be generated
func (c *Config) SummariesEnabled() bool {
	return c.GeminiAPIKey != ""
}
