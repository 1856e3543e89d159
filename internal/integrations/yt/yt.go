package yt

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/config"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type Service struct {
	config  *config.Config
	logger  *logrus.Logger
	client  *http.Client
	limiter *rate.Limiter
	baseURL string

	// Optional, nil if no YouTube API key
	youtube *youtube.Service
}

// Create new YouTube service.
// The Data API client is created only if an API key is configured.
func New(ctx context.Context, config *config.Config, logger *logrus.Logger, opts ...option.ClientOption) (*Service, error) {

	s := &Service{
		config:  config,
		logger:  logger,
		client:  &http.Client{Timeout: config.YouTubeTimeout},
		limiter: rate.NewLimiter(rate.Limit(config.YouTubeRPS), config.YouTubeBurst),
		baseURL: strings.TrimSuffix(config.YouTubeBaseURL, "/"),
	}

	if config.YouTubeAPIKey == "" {
		return s, nil
	}

	opts = append([]option.ClientOption{option.WithAPIKey(config.YouTubeAPIKey)}, opts...)
	youtube, err := youtube.NewService(ctx, opts...)
	s.youtube = youtube

	return s, err
}
