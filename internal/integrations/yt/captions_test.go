package yt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vlatan/transcript-api/internal/models"
)

func TestParseCaptions(t *testing.T) {

	tests := []struct {
		name     string
		body     string
		wantErr  bool
		expected models.Transcript
	}{
		{
			"legacy format",
			legacyXML,
			false,
			models.Transcript{
				{Text: "Hi", Start: 0.5, Duration: 1.25},
				{Text: "there 'friend'", Start: 1.75, Duration: 2},
			},
		},
		{
			"format 3",
			format3XML,
			false,
			models.Transcript{
				{Text: "Hello", Start: 1.5, Duration: 2},
				{Text: "big world", Start: 3.5, Duration: 1},
			},
		},
		{
			"markup stripped",
			`<transcript><text start="0" dur="1">&lt;font color="#fff"&gt;loud&lt;/font&gt; &amp;amp; clear</text></transcript>`,
			false,
			models.Transcript{
				{Text: "loud & clear", Start: 0, Duration: 1},
			},
		},
		{
			"words only when present",
			`<timedtext format="3"><body><p t="0" d="900">stray <s>one</s><s> two</s></p></body></timedtext>`,
			false,
			models.Transcript{
				{Text: "one two", Start: 0, Duration: 0.9},
			},
		},
		{
			"missing duration",
			`<transcript><text start="2">late</text></transcript>`,
			false,
			models.Transcript{
				{Text: "late", Start: 2, Duration: 0},
			},
		},
		{"no segments", `<transcript></transcript>`, true, nil},
		{"no paragraphs", `<timedtext format="3"><body></body></timedtext>`, true, nil},
		{"blank segments only", `<transcript><text start="0" dur="1"> </text></transcript>`, true, nil},
		{"html error page", `<html><body>Sorry, something went wrong</body></html>`, true, nil},
		{"garbled start", `<transcript><text start="abc" dur="1">Hi</text></transcript>`, true, nil},
		{"garbled format 3 duration", `<timedtext><body><p t="0" d="x">Hi</p></body></timedtext>`, true, nil},
		{"empty body", "  \n", true, nil},
		{"not xml", "<transcript><text>", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCaptions([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("got error = %v, want error = %v", err, tt.wantErr)
			}

			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("transcript mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCaptionURL(t *testing.T) {

	s := &Service{baseURL: "https://www.youtube.com"}

	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{
			"relative",
			"/api/timedtext?v=abc&fmt=srv3",
			"https://www.youtube.com/api/timedtext?v=abc",
		},
		{
			"absolute",
			"https://video.google.com/api/timedtext?lang=en&fmt=json3&v=abc",
			"https://video.google.com/api/timedtext?lang=en&v=abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.captionURL(tt.baseURL)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
