package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/config"
	"github.com/vlatan/transcript-api/internal/drivers/rdb"
	"github.com/vlatan/transcript-api/internal/transcripts"
	"github.com/vlatan/transcript-api/internal/utils"

	"google.golang.org/genai"
)

// Quota tracks the Gemini request quota
type Quota interface {
	AcquireQuota(ctx context.Context) error
	Exhausted(ctx context.Context) bool
}

// Gemini service
type Service struct {
	config *config.Config
	logger *logrus.Logger
	gemini *genai.Client
	quota  Quota        // Optional, nil means no quota
	rdb    *rdb.Service // Optional, nil means no summary cache
}

// Configure safety settings to block none
var blockNone = genai.HarmBlockThresholdBlockNone
var safetySettings = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHateSpeech, Threshold: blockNone},
	{Category: genai.HarmCategoryDangerousContent, Threshold: blockNone},
	{Category: genai.HarmCategoryHarassment, Threshold: blockNone},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: blockNone},
}

var systemInstruction = genai.NewContentFromText(
	"You are a helpful assistant that creates concise, "+
		"informative summaries of video transcripts.",
	genai.RoleUser,
)

// Create new Gemini service.
// The quota is kept in Redis if a Redis service is supplied.
func New(ctx context.Context, config *config.Config, logger *logrus.Logger, rdb *rdb.Service) (*Service, error) {

	gemini, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      config.GeminiAPIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: config.GeminiBaseURL},
	})
	if err != nil {
		return nil, err
	}

	s := &Service{config: config, logger: logger, gemini: gemini, rdb: rdb}
	if rdb == nil {
		return s, nil
	}

	limiter, err := NewLimiter(config, rdb)
	if err != nil {
		return nil, err
	}
	s.quota = limiter

	return s, nil
}

// Summarize condenses the transcript text to about the given number of words.
// Summaries are cached per model, text and length.
func (s *Service) Summarize(ctx context.Context, text string, words int) (string, error) {

	estimated := estimateTokens(text)
	if estimated > s.config.SummaryMaxTokens {
		return "", &transcripts.TooLongError{
			Estimated: estimated,
			Max:       s.config.SummaryMaxTokens,
		}
	}

	contents := genai.Text(buildPrompt(sanitizePrompt(text), words))

	rc := &utils.RetryConfig{
		MaxRetries: 3,
		MaxJitter:  time.Second,
		Delay:      time.Second,
		MaxDelay:   30 * time.Second,
		Retryable:  retryable,
	}

	generate := func() (string, error) {
		return utils.Retry(ctx, rc, func() (string, error) {
			if s.quota != nil {
				if err := s.quota.AcquireQuota(ctx); err != nil {
					return "", err
				}
			}
			return s.GenerateContent(ctx, contents)
		})
	}

	key := cacheKey(s.config.GeminiModel, text, words)
	return rdb.GetCachedData(ctx, s.rdb, key, s.config.SummaryCacheTTL, generate)
}

// Health reports the summarizer setup and its daily quota
func (s *Service) Health(ctx context.Context) map[string]any {
	status := map[string]any{
		"model":          s.config.GeminiModel,
		"quota_tracked":  s.quota != nil,
		"quota_rpm":      s.config.GeminiRPM,
		"quota_rpd":      s.config.GeminiRPD,
		"quota_exceeded": false,
	}

	if s.quota != nil {
		status["quota_exceeded"] = s.quota.Exhausted(ctx)
	}

	return status
}

// Generate content given a prompt
func (s *Service) GenerateContent(ctx context.Context, contents []*genai.Content) (string, error) {

	start := time.Now()
	result, err := s.gemini.Models.GenerateContent(
		ctx,
		s.config.GeminiModel,
		contents,
		&genai.GenerateContentConfig{
			SystemInstruction: systemInstruction,
			SafetySettings:    safetySettings,
			Temperature:       genai.Ptr[float32](0.7),
		},
	)

	if err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 {
		return "", &BlockedErr{Feedback: result.PromptFeedback}
	}

	summary := cleanSummary(result.Text())
	if summary == "" {
		return "", errEmptyResponse
	}

	s.logger.WithFields(logrus.Fields{
		"model":      s.config.GeminiModel,
		"latency_ms": time.Since(start).Milliseconds(),
		"words":      len(strings.Fields(summary)),
	}).Debug("Generated summary")

	return summary, nil
}

// retryable reports whether another Gemini attempt makes sense
func retryable(err error) bool {

	if errors.Is(err, transcripts.ErrQuotaFull) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var blocked *BlockedErr
	if errors.As(err, &blocked) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= 500
	}

	return true
}

// buildPrompt asks for an audio script style summary
func buildPrompt(text string, words int) string {
	return fmt.Sprintf(`Summarize the following transcript as a high-impact audio script.

Requirements:
1. Optimize the summary for listening, not reading.
2. Open with a strong hook that highlights the core problem.
3. Extract the main mental model(s) and present them clearly.
4. Turn abstract ideas into concrete, actionable steps.
5. Include short, memorable phrases or quotes.
6. Close with a practical reflection question for the listener.
7. Length: approximately %d words.

Transcript:
%s`, words, text)
}
