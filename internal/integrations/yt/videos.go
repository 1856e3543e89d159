package yt

import (
	"context"
	"fmt"

	"github.com/vlatan/transcript-api/internal/transcripts"
)

// checkVideo confirms the video exists and is not private
// using the Data API. Does nothing without an API key.
func (s *Service) checkVideo(ctx context.Context, videoID string) error {

	if s.youtube == nil {
		return nil
	}

	part := []string{"status"}
	response, err := s.youtube.Videos.List(part).Id(videoID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to get a response from YouTube: %w", err)
	}

	if len(response.Items) == 0 {
		return fmt.Errorf("%w: %s", transcripts.ErrVideoUnavailable, videoID)
	}

	video := response.Items[0]
	if video.Status != nil && video.Status.PrivacyStatus == "private" {
		return fmt.Errorf("%w: %s is private", transcripts.ErrVideoUnavailable, videoID)
	}

	return nil
}
