package transcripts

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/vlatan/transcript-api/internal/models"
)

// Fetcher retrieves transcripts from the video provider.
// Recognized failures wrap ErrTranscriptsDisabled,
// ErrNoTranscript or ErrVideoUnavailable.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string, languages []string) (models.Transcript, error)
	List(ctx context.Context, videoID string) ([]models.Language, error)
}

// Summarizer condenses a plain text transcript to about the given number of words.
// Recognized failures wrap ErrTooLong, ErrQuotaFull or ErrNoSummaries.
type Summarizer interface {
	Summarize(ctx context.Context, text string, words int) (string, error)
}

// SummaryRequest holds the validated summary parameters
type SummaryRequest struct {
	VideoID   string   `validate:"required"`
	Languages []string `validate:"min=1"`
	Length    int      `validate:"gte=50,lte=1000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Service struct {
	fetcher    Fetcher
	summarizer Summarizer
}

// New creates a transcripts service.
// The summarizer can be nil, then summaries are unavailable.
func New(fetcher Fetcher, summarizer Summarizer) *Service {
	return &Service{
		fetcher:    fetcher,
		summarizer: summarizer,
	}
}

// Retrieve fetches the transcript in the first available of the languages.
// Single attempt, upstream failures are classified and returned.
func (s *Service) Retrieve(ctx context.Context, videoID string, languages []string) (models.Transcript, error) {
	transcript, err := s.fetcher.Fetch(ctx, videoID, languages)
	if err != nil {
		return nil, &Error{Kind: classifyFetch(err), VideoID: videoID, Err: err}
	}
	return transcript, nil
}

// ListLanguages returns the video's available caption tracks
func (s *Service) ListLanguages(ctx context.Context, videoID string) ([]models.Language, error) {
	languages, err := s.fetcher.List(ctx, videoID)
	if err != nil {
		return nil, &Error{Kind: classifyList(err), VideoID: videoID, Err: err}
	}
	return languages, nil
}

// Summarize retrieves the transcript and summarizes its plain text
func (s *Service) Summarize(ctx context.Context, req SummaryRequest) (*models.Summary, error) {

	if err := validate.Struct(req); err != nil {
		return nil, &Error{Kind: InvalidRequest, VideoID: req.VideoID, Err: err}
	}

	if s.summarizer == nil {
		return nil, &Error{Kind: SummariesUnavailable, VideoID: req.VideoID, Err: ErrNoSummaries}
	}

	transcript, err := s.Retrieve(ctx, req.VideoID, req.Languages)
	if err != nil {
		return nil, err
	}

	text := ToPlainText(transcript, DefaultSeparator)
	summary, err := s.summarizer.Summarize(ctx, text, req.Length)
	if err != nil {
		return nil, &Error{Kind: classifySummary(err), VideoID: req.VideoID, Err: err}
	}

	html, err := ToHTML(summary)
	if err != nil {
		return nil, &Error{Kind: UnexpectedFailure, VideoID: req.VideoID, Err: err}
	}

	return &models.Summary{
		Text:            summary,
		HTML:            html,
		WordCount:       WordCount(summary),
		RequestedLength: req.Length,
	}, nil
}

// ParseLength parses the requested summary length.
// Empty means the default, unparsable yields zero which fails validation.
func ParseLength(raw string, def int) int {
	if raw == "" {
		return def
	}

	length, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return length
}
