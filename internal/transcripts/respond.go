package transcripts

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vlatan/transcript-api/internal/models"
)

// Operation is what the client asked for
type Operation int

const (
	OpTranscript Operation = iota
	OpText
	OpLanguages
	OpSummary
)

const (
	msgTranscriptOK = "Transcript retrieved successfully"
	msgSummaryOK    = "Summary generated successfully"
)

// Outcome is the result of one operation.
// Err is nil on success and the matching payload field is set.
type Outcome struct {
	Operation  Operation
	VideoID    string
	Transcript models.Transcript
	Text       string
	Languages  []models.Language
	Summary    *models.Summary
	Err        error
}

// Response is an outcome shaped for the client
type Response struct {
	Status int
	Body   any
}

// Respond maps an outcome to a response. Pure, no I/O.
func Respond(o Outcome) Response {
	if o.Err != nil {
		return failure(o)
	}

	var body any
	switch o.Operation {
	case OpTranscript:
		transcript := o.Transcript
		if transcript == nil {
			transcript = models.Transcript{}
		}
		body = models.TranscriptResponse{
			VideoID:    o.VideoID,
			Transcript: transcript,
			Success:    true,
			Message:    msgTranscriptOK,
		}
	case OpText:
		body = models.TextResponse{
			VideoID: o.VideoID,
			Text:    o.Text,
			Success: true,
			Message: msgTranscriptOK,
		}
	case OpLanguages:
		languages := o.Languages
		if languages == nil {
			languages = []models.Language{}
		}
		body = models.LanguagesResponse{
			VideoID:            o.VideoID,
			AvailableLanguages: languages,
			Success:            true,
		}
	case OpSummary:
		summary := o.Summary
		if summary == nil {
			summary = &models.Summary{}
		}
		body = models.SummaryResponse{
			VideoID:         o.VideoID,
			Summary:         summary.Text,
			SummaryHTML:     summary.HTML,
			WordCount:       summary.WordCount,
			RequestedLength: summary.RequestedLength,
			Success:         true,
			Message:         msgSummaryOK,
		}
	}

	return Response{Status: http.StatusOK, Body: body}
}

// failure maps a failed outcome to a status and a detail message
func failure(o Outcome) Response {
	kind := KindOf(o.Err)
	return Response{
		Status: StatusOf(kind),
		Body:   models.ErrorResponse{Detail: failureMessage(o, kind)},
	}
}

// StatusOf returns the HTTP status for a kind
func StatusOf(kind Kind) int {
	switch kind {
	case TranscriptsDisabled, NoTranscriptAvailable, VideoUnavailable:
		return http.StatusNotFound
	case InvalidRequest:
		return http.StatusBadRequest
	case TranscriptTooLong:
		return http.StatusRequestEntityTooLarge
	case RateLimited:
		return http.StatusTooManyRequests
	case SummariesUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func failureMessage(o Outcome, kind Kind) string {
	id := o.VideoID

	switch kind {
	case TranscriptsDisabled:
		return fmt.Sprintf("Transcripts are disabled for video: %s", id)
	case NoTranscriptAvailable:
		return fmt.Sprintf(
			"No transcript found for video: %s. The video may not have transcripts available.", id,
		)
	case VideoUnavailable:
		return fmt.Sprintf(
			"Video is unavailable: %s. The video may be private, deleted, or not exist.", id,
		)
	case InvalidRequest:
		return "Summary length must be between 50 and 1000 words."
	case TranscriptTooLong:
		var tl *TooLongError
		if errors.As(o.Err, &tl) {
			return fmt.Sprintf(
				"Transcript too long for summarization (%d tokens estimated). "+
					"Maximum is %d tokens. Try a shorter video.",
				tl.Estimated, tl.Max,
			)
		}
		return fmt.Sprintf("Transcript too long for summarization: %s", id)
	case RateLimited:
		return fmt.Sprintf("Summary rate limit exceeded: %v", o.Err)
	case SummariesUnavailable:
		return "Summaries are not configured. Set GEMINI_API_KEY to enable them."
	}

	switch o.Operation {
	case OpLanguages:
		return fmt.Sprintf("An error occurred while fetching available languages: %v", o.Err)
	case OpSummary:
		return fmt.Sprintf("Error generating summary: %v", o.Err)
	default:
		return fmt.Sprintf("An error occurred while fetching transcript: %v", o.Err)
	}
}
