package yt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vlatan/transcript-api/internal/transcripts"
)

// Innertube ANDROID client, the player endpoint
// returns caption tracks for it without a session.
const (
	playerPath     = "/youtubei/v1/player?prettyPrint=false"
	androidVersion = "20.10.38"
	androidUA      = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"
)

type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
	ContentCheckOk bool          `json:"contentCheckOk"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion"`
	Hl                string `json:"hl"`
	Gl                string `json:"gl"`
}

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		Renderer *struct {
			CaptionTracks        []captionTrack    `json:"captionTracks"`
			TranslationLanguages []json.RawMessage `json:"translationLanguages"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL        string   `json:"baseUrl"`
	LanguageCode   string   `json:"languageCode"`
	Name           textNode `json:"name"`
	Kind           string   `json:"kind"` // "asr" = auto-generated
	IsTranslatable bool     `json:"isTranslatable"`
}

// Innertube text, either simple or split in runs
type textNode struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (t textNode) String() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}

	var sb strings.Builder
	for _, run := range t.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// captionList is the usable part of a player response
type captionList struct {
	tracks       []captionTrack
	translatable bool
}

// player calls the Innertube player endpoint
func (s *Service) player(ctx context.Context, videoID string) (*playerResponse, error) {

	body, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+playerPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("innertube player: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("innertube player: HTTP %d: %s", resp.StatusCode, snippet)
	}

	var player playerResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 3*1024*1024)).Decode(&player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}

	return &player, nil
}

// captions checks the player response playability
// and returns the video's caption tracks
func (p *playerResponse) captions(videoID string) (*captionList, error) {

	if status := p.PlayabilityStatus; status != nil && status.Status != "OK" {
		reason := strings.ToLower(status.Reason)
		switch {
		case status.Status == "ERROR", strings.Contains(reason, "private"):
			return nil, fmt.Errorf("%w: %s", transcripts.ErrVideoUnavailable, videoID)
		case status.Reason != "":
			return nil, fmt.Errorf("video %s is unplayable: %s", videoID, status.Reason)
		default:
			return nil, fmt.Errorf("video %s is unplayable: status %s", videoID, status.Status)
		}
	}

	if p.Captions == nil || p.Captions.Renderer == nil || len(p.Captions.Renderer.CaptionTracks) == 0 {
		return nil, fmt.Errorf("%w for video %s", transcripts.ErrTranscriptsDisabled, videoID)
	}

	return &captionList{
		tracks:       p.Captions.Renderer.CaptionTracks,
		translatable: len(p.Captions.Renderer.TranslationLanguages) > 0,
	}, nil
}
