package middlewares

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/config"
	"github.com/vlatan/transcript-api/internal/models"
	"github.com/vlatan/transcript-api/internal/utils"
)

const requestIDHeader = "X-Request-ID"

type Service struct {
	config *config.Config
	logger *logrus.Logger
}

func New(config *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Do not crash the app on panic, serve 500 error to the client
func (s *Service) RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err == nil {
				return
			}

			// Let the server abort the response
			if err == http.ErrAbortHandler {
				panic(err)
			}

			s.logger.WithFields(logrus.Fields{
				"request_id":  models.GetRequestIDFromContext(r),
				"http_method": r.Method,
				"uri":         r.URL.RequestURI(),
				"panic":       err,
				"stack":       string(debug.Stack()),
			}).Error("Recovered from panic")

			utils.HttpError(w, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

// Logging tags the request with an ID and logs it once it's served
func (s *Service) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Keep the caller's request ID if any
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), models.RequestIDContextKey, requestID)

		recorder := NewStatusRecorder(w)
		next.ServeHTTP(recorder, r.WithContext(ctx))

		entry := s.logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"http_method": r.Method,
			"uri":         r.URL.RequestURI(),
			"status_code": recorder.status,
			"bytes":       recorder.written,
			"latency_ms":  time.Since(start).Milliseconds(),
			"client_ip":   r.RemoteAddr,
			"user_agent":  r.UserAgent(),
		})

		switch {
		case recorder.status >= 500:
			entry.Error("Request completed with server error")
		case recorder.status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	})
}

// Add security headers to response
func (s *Service) AddHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// Responses are per video and cheap to refetch
		w.Header().Set("Cache-Control", "no-store")

		// HSTS (HTTPS only)
		if !s.config.Debug {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}

// Compress provides gzip compression to the responses
func (s *Service) Compress(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// Chain middlewares that apply to all handlers
func (s *Service) ApplyToAll(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		// Apply middlewares in reverse order
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
