package yt

import (
	"fmt"
	"strings"

	"github.com/vlatan/transcript-api/internal/models"
	"github.com/vlatan/transcript-api/internal/transcripts"
)

const kindASR = "asr"

// pickTrack returns the first track matching the languages in order.
// For each language a manual track wins over an auto-generated one.
func pickTrack(tracks []captionTrack, videoID string, languages []string) (captionTrack, error) {

	for _, lang := range languages {
		var generated *captionTrack
		for i, track := range tracks {
			if track.LanguageCode != lang {
				continue
			}
			if track.Kind != kindASR {
				return track, nil
			}
			if generated == nil {
				generated = &tracks[i]
			}
		}

		if generated != nil {
			return *generated, nil
		}
	}

	return captionTrack{}, fmt.Errorf(
		"%w for video %s in any of the requested languages: %s",
		transcripts.ErrNoTranscript, videoID, strings.Join(languages, ", "),
	)
}

// describe maps caption tracks to language descriptors
func (cl *captionList) describe() []models.Language {
	languages := make([]models.Language, 0, len(cl.tracks))
	for _, track := range cl.tracks {
		name := track.Name.String()
		if name == "" {
			name = track.LanguageCode
		}

		languages = append(languages, models.Language{
			Code:           track.LanguageCode,
			Name:           name,
			IsGenerated:    track.Kind == kindASR,
			IsTranslatable: track.IsTranslatable && cl.translatable,
		})
	}
	return languages
}
