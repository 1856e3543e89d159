package yt

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/vlatan/transcript-api/internal/models"
)

// Strips every tag, caption text is plain
var policy = bluemonday.StrictPolicy()

// Caption bodies that hold no usable transcript
var (
	errEmptyCaptions     = errors.New("empty caption response")
	errMalformedCaptions = errors.New("malformed caption response")
)

// Both caption formats YouTube serves.
// Legacy: <transcript><text start dur>, seconds.
// Format 3: <timedtext><body><p t d>, milliseconds, optional <s> words.
type timedText struct {
	XMLName xml.Name
	Texts   []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Text  string `xml:",chardata"`
	} `xml:"text"`
	Body struct {
		Paras []struct {
			T     string `xml:"t,attr"`
			D     string `xml:"d,attr"`
			Text  string `xml:",chardata"`
			Words []struct {
				Text string `xml:",chardata"`
			} `xml:"s"`
		} `xml:"p"`
	} `xml:"body"`
}

// captionURL resolves the track URL against the base
// and drops the format param so YouTube serves XML
func (s *Service) captionURL(baseURL string) (string, error) {

	base, err := url.Parse(s.baseURL + "/")
	if err != nil {
		return "", err
	}

	ref, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid caption url: %w", err)
	}

	u := base.ResolveReference(ref)
	q := u.Query()
	q.Del("fmt")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// fetchCaptions downloads and parses one caption track
func (s *Service) fetchCaptions(ctx context.Context, track captionTrack) (models.Transcript, error) {

	target, err := s.captionURL(track.BaseURL)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", androidUA)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch captions: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read captions: %w", err)
	}

	return parseCaptions(body)
}

// parseCaptions parses caption XML in either format.
// A body without a single non-blank segment is an error.
func parseCaptions(body []byte) (models.Transcript, error) {

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errEmptyCaptions
	}

	var tt timedText
	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity
	if err := decoder.Decode(&tt); err != nil {
		return nil, fmt.Errorf("parse captions: %w", err)
	}

	switch root := tt.XMLName.Local; root {
	case "transcript", "timedtext":
	default:
		return nil, fmt.Errorf("%w: unexpected root element <%s>", errMalformedCaptions, root)
	}

	transcript := models.Transcript{}

	for _, t := range tt.Texts {
		text := cleanText(t.Text)
		if text == "" {
			continue
		}

		start, err := parseTiming(t.Start, 1)
		if err != nil {
			return nil, err
		}
		dur, err := parseTiming(t.Dur, 1)
		if err != nil {
			return nil, err
		}

		transcript = append(transcript, models.Segment{Text: text, Start: start, Duration: dur})
	}

	for _, p := range tt.Body.Paras {

		// Word level timing, the words alone make up the line
		raw := p.Text
		if len(p.Words) > 0 {
			var sb strings.Builder
			for _, w := range p.Words {
				sb.WriteString(w.Text)
			}
			raw = sb.String()
		}

		text := cleanText(raw)
		if text == "" {
			continue
		}

		start, err := parseTiming(p.T, 1000)
		if err != nil {
			return nil, err
		}
		dur, err := parseTiming(p.D, 1000)
		if err != nil {
			return nil, err
		}

		transcript = append(transcript, models.Segment{Text: text, Start: start, Duration: dur})
	}

	if len(transcript) == 0 {
		return nil, fmt.Errorf("%w: no caption segments", errEmptyCaptions)
	}

	return transcript, nil
}

// cleanText strips markup and unescapes entities
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}

// parseTiming converts a timing attribute to seconds.
// A missing attribute is zero, a garbled one is an error.
func parseTiming(s string, perSecond float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid timing %q", errMalformedCaptions, s)
	}

	return f / perSecond, nil
}
