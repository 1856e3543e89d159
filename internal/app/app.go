package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/config"
	"github.com/vlatan/transcript-api/internal/drivers/rdb"
	"github.com/vlatan/transcript-api/internal/handlers/misc"
	"github.com/vlatan/transcript-api/internal/handlers/transcripts"
	"github.com/vlatan/transcript-api/internal/integrations/gemini"
	"github.com/vlatan/transcript-api/internal/integrations/yt"
	"github.com/vlatan/transcript-api/internal/middlewares"
	core "github.com/vlatan/transcript-api/internal/transcripts"
)

type App struct {
	config      *config.Config
	logger      *logrus.Logger
	transcripts *transcripts.Service
	misc        *misc.Service
	mw          *middlewares.Service
	cleanup     func() error
	server      *http.Server
}

// New creates the app with its dependencies built from the environment
func New() *App {

	cfg := config.New()
	logger := config.NewLogger(cfg)
	ctx := context.Background()

	// Create Redis service
	rdb, err := rdb.New(cfg, logger)
	if err != nil {
		logger.Fatalf("couldn't create Redis service; %v", err)
	}

	// Create YouTube service
	yt, err := yt.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("couldn't create YouTube service: %v", err)
	}

	// Summaries are optional
	var summarizer core.Summarizer
	var geminiHealth misc.Healther
	if cfg.SummariesEnabled() {
		gemini, err := gemini.New(ctx, cfg, logger, rdb)
		if err != nil {
			logger.Fatalf("couldn't create Gemini service: %v", err)
		}
		summarizer, geminiHealth = gemini, gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, summaries are disabled")
	}

	return newApp(cfg, logger, yt, summarizer, rdb, geminiHealth, rdb.Close)
}

// newApp wires the services around the supplied dependencies
func newApp(
	cfg *config.Config,
	logger *logrus.Logger,
	fetcher core.Fetcher,
	summarizer core.Summarizer,
	rdb, gemini misc.Healther,
	cleanup func() error,
) *App {

	return &App{
		config:      cfg,
		logger:      logger,
		transcripts: transcripts.New(cfg, logger, core.New(fetcher, summarizer)),
		misc:        misc.New(cfg, logger, rdb, gemini),
		mw:          middlewares.New(cfg, logger),
		cleanup:     cleanup,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      2 * time.Minute, // summaries take a while
			IdleTimeout:       time.Minute,
		},
	}
}
