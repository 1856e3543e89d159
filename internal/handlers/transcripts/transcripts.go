package transcripts

import (
	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/config"
	core "github.com/vlatan/transcript-api/internal/transcripts"
)

type Service struct {
	config      *config.Config
	logger      *logrus.Logger
	transcripts *core.Service
}

func New(config *config.Config, logger *logrus.Logger, transcripts *core.Service) *Service {
	return &Service{
		config:      config,
		logger:      logger,
		transcripts: transcripts,
	}
}
