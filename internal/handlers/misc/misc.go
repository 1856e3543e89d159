package misc

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/config"
)

// Healther reports the status of a dependency
type Healther interface {
	Health(ctx context.Context) map[string]any
}

type Service struct {
	config *config.Config
	logger *logrus.Logger
	rdb    Healther
	gemini Healther // nil when summaries are disabled
}

func New(config *config.Config, logger *logrus.Logger, rdb, gemini Healther) *Service {
	return &Service{
		config: config,
		logger: logger,
		rdb:    rdb,
		gemini: gemini,
	}
}
