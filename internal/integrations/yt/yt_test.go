package yt

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/config"
)

const testID = "dQw4w9WgXcQ"

const legacyXML = `<?xml version="1.0" encoding="utf-8" ?><transcript>` +
	`<text start="0.5" dur="1.25">Hi</text>` +
	`<text start="1.75" dur="2">there &amp;#39;friend&amp;#39;</text>` +
	`<text start="4" dur="1">  </text>` +
	`</transcript>`

const format3XML = `<?xml version="1.0" encoding="utf-8" ?><timedtext format="3"><body>` +
	`<p t="1500" d="2000">Hello</p>` +
	`<p t="3500" d="1000"><s>big</s><s> world</s></p>` +
	`<p t="4500" d="10"></p>` +
	`</body></timedtext>`

// newTestService creates a service pointed at a fake YouTube
func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		YouTubeBaseURL: srv.URL,
		YouTubeTimeout: 5 * time.Second,
		YouTubeRPS:     1000,
		YouTubeBurst:   100,
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s, err := New(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	return s
}

// fakeYouTube serves a player response and caption tracks
func fakeYouTube(t *testing.T, player any, captions map[string]string) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /youtubei/v1/player", func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("invalid player request: %v", err)
		}
		if req.Context.Client.ClientName != "ANDROID" {
			t.Errorf("got client %q, want ANDROID", req.Context.Client.ClientName)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(player)
	})

	mux.HandleFunc("GET /api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("fmt") {
			t.Errorf("caption url still has fmt param: %s", r.URL)
		}
		w.Write([]byte(captions[r.URL.Query().Get("lang")]))
	})

	return mux
}

// track builds a player caption track
func track(lang, name, kind string) map[string]any {
	return map[string]any{
		"baseUrl":        "/api/timedtext?v=" + testID + "&lang=" + lang + "&fmt=srv3",
		"languageCode":   lang,
		"name":           map[string]any{"simpleText": name},
		"kind":           kind,
		"isTranslatable": true,
	}
}

// playerWith builds an OK player response with the tracks
func playerWith(tracks ...map[string]any) map[string]any {
	return map[string]any{
		"playabilityStatus": map[string]any{"status": "OK"},
		"captions": map[string]any{
			"playerCaptionsTracklistRenderer": map[string]any{
				"captionTracks":        tracks,
				"translationLanguages": []map[string]any{{"languageCode": "fr"}},
			},
		},
	}
}
