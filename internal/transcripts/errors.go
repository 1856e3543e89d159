package transcripts

import (
	"errors"
	"fmt"
)

// Kind classifies a failed request
type Kind int

const (
	UnexpectedFailure Kind = iota
	TranscriptsDisabled
	NoTranscriptAvailable
	VideoUnavailable

	// Summaries only
	InvalidRequest
	TranscriptTooLong
	RateLimited
	SummariesUnavailable
)

var kindNames = map[Kind]string{
	UnexpectedFailure:     "unexpected failure",
	TranscriptsDisabled:   "transcripts disabled",
	NoTranscriptAvailable: "no transcript available",
	VideoUnavailable:      "video unavailable",
	InvalidRequest:        "invalid request",
	TranscriptTooLong:     "transcript too long",
	RateLimited:           "rate limited",
	SummariesUnavailable:  "summaries unavailable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Errors collaborators wrap to signal a recognized failure
var (
	ErrTranscriptsDisabled = errors.New("transcripts are disabled")
	ErrNoTranscript        = errors.New("no transcript found")
	ErrVideoUnavailable    = errors.New("video is unavailable")
)

// Errors summarizers wrap to signal a recognized failure
var (
	ErrTooLong     = errors.New("transcript too long")
	ErrQuotaFull   = errors.New("quota exhausted")
	ErrNoSummaries = errors.New("summaries not configured")
)

// Error is a classified failure for a single video
type Error struct {
	Kind    Kind
	VideoID string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a classified error.
// Anything unclassified is an unexpected failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UnexpectedFailure
}

// classifyFetch maps a transcript fetch error to its kind
func classifyFetch(err error) Kind {
	switch {
	case errors.Is(err, ErrTranscriptsDisabled):
		return TranscriptsDisabled
	case errors.Is(err, ErrNoTranscript):
		return NoTranscriptAvailable
	case errors.Is(err, ErrVideoUnavailable):
		return VideoUnavailable
	default:
		return UnexpectedFailure
	}
}

// classifyList maps a language listing error to its kind
func classifyList(err error) Kind {
	if errors.Is(err, ErrVideoUnavailable) {
		return VideoUnavailable
	}
	return UnexpectedFailure
}

// classifySummary maps a summarizer error to its kind
func classifySummary(err error) Kind {
	switch {
	case errors.Is(err, ErrTooLong):
		return TranscriptTooLong
	case errors.Is(err, ErrQuotaFull):
		return RateLimited
	case errors.Is(err, ErrNoSummaries):
		return SummariesUnavailable
	default:
		return UnexpectedFailure
	}
}

// TooLongError reports a transcript over the summarizer's input budget
type TooLongError struct {
	Estimated int
	Max       int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf(
		"transcript too long for summarization (%d tokens estimated), maximum is %d tokens",
		e.Estimated, e.Max,
	)
}

func (e *TooLongError) Is(target error) bool {
	return target == ErrTooLong
}
