package transcripts

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/models"
	core "github.com/vlatan/transcript-api/internal/transcripts"
	"github.com/vlatan/transcript-api/internal/utils"
)

// Operation suffixes recognized on the catch-all route
var suffixes = []struct {
	suffix    string
	operation core.Operation
}{
	{"/text", core.OpText},
	{"/languages", core.OpLanguages},
	{"/summary", core.OpSummary},
}

// Handle the structured transcript
func (s *Service) TranscriptHandler(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, core.OpTranscript, r.PathValue("ref"))
}

// Handle the transcript as plain text
func (s *Service) TextHandler(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, core.OpText, r.PathValue("ref"))
}

// Handle the available languages listing
func (s *Service) LanguagesHandler(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, core.OpLanguages, r.PathValue("ref"))
}

// Handle the transcript summary
func (s *Service) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, core.OpSummary, r.PathValue("ref"))
}

// CatchAllHandler serves references that span several path segments,
// i.e. unencoded URLs, splitting off the operation suffix if any
func (s *Service) CatchAllHandler(w http.ResponseWriter, r *http.Request) {
	ref, operation := splitOperation(r.PathValue("ref"))

	// The watch URL query string ends up in the request query,
	// along with any operation suffix written after the id
	if v := r.URL.Query().Get("v"); v != "" && strings.Contains(ref, "watch") {
		if operation == core.OpTranscript {
			v, operation = splitOperation(v)
		}
		ref += "?v=" + v
	}

	s.serve(w, r, operation, ref)
}

// splitOperation splits the operation suffix off the reference
func splitOperation(path string) (string, core.Operation) {
	for _, s := range suffixes {
		if ref, ok := strings.CutSuffix(path, s.suffix); ok && ref != "" {
			return ref, s.operation
		}
	}
	return path, core.OpTranscript
}

// serve runs the operation for the reference and writes the response
func (s *Service) serve(w http.ResponseWriter, r *http.Request, operation core.Operation, ref string) {

	if ref == "" {
		utils.HttpError(w, http.StatusNotFound)
		return
	}

	ctx := r.Context()
	query := r.URL.Query()
	videoID := core.ExtractVideoID(ref)
	languages := core.ParseLanguages(query.Get("languages"))

	outcome := core.Outcome{Operation: operation, VideoID: videoID}

	switch operation {
	case core.OpTranscript:
		outcome.Transcript, outcome.Err = s.transcripts.Retrieve(ctx, videoID, languages)

	case core.OpText:
		// A given but empty separator is used as is
		separator := core.DefaultSeparator
		if query.Has("separator") {
			separator = query.Get("separator")
		}

		var transcript models.Transcript
		transcript, outcome.Err = s.transcripts.Retrieve(ctx, videoID, languages)
		outcome.Text = core.ToPlainText(transcript, separator)

	case core.OpLanguages:
		outcome.Languages, outcome.Err = s.transcripts.ListLanguages(ctx, videoID)

	case core.OpSummary:
		outcome.Summary, outcome.Err = s.transcripts.Summarize(ctx, core.SummaryRequest{
			VideoID:   videoID,
			Languages: languages,
			Length:    core.ParseLength(query.Get("length"), s.config.SummaryDefaultLength),
		})
	}

	response := core.Respond(outcome)
	if outcome.Err != nil {
		s.logFailure(r, outcome, response.Status)
	}

	utils.WriteJSON(w, r, s.logger, response.Status, response.Body)
}

// logFailure logs unexpected failures as errors, the rest as info
func (s *Service) logFailure(r *http.Request, outcome core.Outcome, status int) {
	kind := core.KindOf(outcome.Err)

	entry := s.logger.WithFields(logrus.Fields{
		"request_id": models.GetRequestIDFromContext(r),
		"video_id":   outcome.VideoID,
		"kind":       kind.String(),
		"status":     status,
	}).WithError(outcome.Err)

	if kind == core.UnexpectedFailure {
		entry.Error("Transcript request failed")
		return
	}

	entry.Info("Transcript request not served")
}
