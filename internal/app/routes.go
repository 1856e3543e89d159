package app

import (
	"net/http"

	"github.com/vlatan/transcript-api/internal/utils"
)

// RegisterRoutes registers routes and
// assigns custom handler to the HTTP server
func (a *App) RegisterRoutes() *App {
	mux := http.NewServeMux()

	// Service info and health
	mux.HandleFunc("GET /{$}", a.misc.RootHandler)
	mux.HandleFunc("GET /health", a.misc.HealthHandler)
	mux.HandleFunc("GET /health/details", a.misc.HealthDetailsHandler)

	// Transcripts, the reference can be a percent-encoded URL
	mux.HandleFunc("GET /transcript/{ref}", a.transcripts.TranscriptHandler)
	mux.HandleFunc("GET /transcript/{ref}/text", a.transcripts.TextHandler)
	mux.HandleFunc("GET /transcript/{ref}/languages", a.transcripts.LanguagesHandler)
	mux.HandleFunc("GET /transcript/{ref}/summary", a.transcripts.SummaryHandler)

	// Unencoded URLs span several segments
	mux.HandleFunc("GET /transcript/{ref...}", a.transcripts.CatchAllHandler)

	// JSON errors for everything else
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		utils.HttpError(w, http.StatusNotFound)
	})

	// Chain middlewares that apply to all requests.
	// The order is important.
	// Use this custom handler as HTTP server handler
	a.server.Handler = a.mw.ApplyToAll(
		a.mw.Logging,
		a.mw.RecoverPanic,
		a.mw.AddHeaders,
		a.mw.Compress,
	)(mux)

	return a
}
