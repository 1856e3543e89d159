package yt

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/models"
	"golang.org/x/sync/errgroup"
)

// Fetch retrieves the transcript in the first available of the languages
func (s *Service) Fetch(ctx context.Context, videoID string, languages []string) (models.Transcript, error) {

	captions, err := s.captions(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, err := pickTrack(captions.tracks, videoID, languages)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"video_id":  videoID,
		"language":  track.LanguageCode,
		"generated": track.Kind == kindASR,
	}).Debug("Fetching caption track")

	return s.fetchCaptions(ctx, track)
}

// List returns a descriptor for each of the video's caption tracks
func (s *Service) List(ctx context.Context, videoID string) ([]models.Language, error) {

	captions, err := s.captions(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return captions.describe(), nil
}

// captions runs the optional Data API check and
// the player call concurrently, first error wins
func (s *Service) captions(ctx context.Context, videoID string) (*captionList, error) {

	var player *playerResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.checkVideo(gctx, videoID)
	})

	g.Go(func() (err error) {
		player, err = s.player(gctx, videoID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return player.captions(videoID)
}
