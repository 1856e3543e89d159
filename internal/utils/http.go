package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/models"
)

// WriteJSON encodes the data first and then,
// if successful, writes it with the status to the response writer
func WriteJSON(w http.ResponseWriter, r *http.Request, logger *logrus.Logger, status int, data any) {

	log := logger.WithFields(logrus.Fields{
		"request_id": models.GetRequestIDFromContext(r),
		"uri":        r.URL.RequestURI(),
	})

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.WithError(err).Error("Failed to encode JSON response")
		HttpError(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		// Too late for recovery here, just log the error
		log.WithError(err).Error("Failed to write JSON to response")
	}
}

// HttpError writes a JSON error with the status text as detail
func HttpError(w http.ResponseWriter, status int) {
	body, _ := json.Marshal(models.ErrorResponse{Detail: http.StatusText(status)})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	w.Write(body)
}
