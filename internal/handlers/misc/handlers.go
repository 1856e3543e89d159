package misc

import (
	"net/http"

	"github.com/vlatan/transcript-api/internal/utils"
)

// Routes listed on the root endpoint
var endpoints = map[string]string{
	"GET /transcript/{video_id_or_url}":           "Get transcript for a YouTube video (JSON format)",
	"GET /transcript/{video_id_or_url}/text":      "Get transcript as plain text",
	"GET /transcript/{video_id_or_url}/languages": "Get available languages for a video",
	"GET /transcript/{video_id_or_url}/summary":   "Get an AI summary of the transcript",
	"GET /health":                                 "Health check",
	"GET /health/details":                         "Dependencies and server health",
}

// Service metadata and the route listing
func (s *Service) RootHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"message":     s.config.Service.Title,
		"description": s.config.Service.Description,
		"version":     s.config.Service.Version,
		"endpoints":   endpoints,
	}

	utils.WriteJSON(w, r, s.logger, http.StatusOK, data)
}

// Simple liveness check
func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, r, s.logger, http.StatusOK, map[string]string{"status": "healthy"})
}

// Redis, summarizer and server health status
func (s *Service) HealthDetailsHandler(w http.ResponseWriter, r *http.Request) {

	data := map[string]any{
		"status":        "healthy",
		"server_status": getServerStats(),
	}

	if s.rdb != nil {
		data["redis_status"] = s.rdb.Health(r.Context())
	}

	if s.gemini != nil {
		data["summaries_status"] = s.gemini.Health(r.Context())
	} else {
		data["summaries_status"] = map[string]any{"enabled": false}
	}

	utils.WriteJSON(w, r, s.logger, http.StatusOK, data)
}
