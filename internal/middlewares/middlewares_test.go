package middlewares

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/vlatan/transcript-api/internal/config"
	"github.com/vlatan/transcript-api/internal/models"
)

// newTestService returns a middlewares service logging to the buffer
func newTestService(buf *bytes.Buffer) *Service {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return New(&config.Config{}, logger)
}

func TestRecoverPanic(t *testing.T) {

	var buf bytes.Buffer
	s := newTestService(&buf)

	handler := s.RecoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/transcript/x", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("got status %d, want %d", recorder.Code, http.StatusInternalServerError)
	}

	if got := recorder.Body.String(); got != `{"detail":"Internal Server Error"}` {
		t.Errorf("got body %q", got)
	}

	if !strings.Contains(buf.String(), "Recovered from panic") {
		t.Errorf("panic not logged: %s", buf.String())
	}
}

func TestLogging(t *testing.T) {

	tests := []struct {
		name      string
		requestID string
		status    int
		level     string
	}{
		{"generated id", "", http.StatusOK, "info"},
		{"caller id", "abc-123", http.StatusNotFound, "warning"},
		{"server error", "", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			var buf bytes.Buffer
			s := newTestService(&buf)

			var seen string
			handler := s.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = models.GetRequestIDFromContext(r)
				w.WriteHeader(tt.status)
				w.Write([]byte("hello"))
			}))

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.requestID != "" {
				req.Header.Set(requestIDHeader, tt.requestID)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			header := recorder.Header().Get(requestIDHeader)
			if header == "" || header != seen {
				t.Errorf("got header %q and context id %q", header, seen)
			}

			if tt.requestID != "" && header != tt.requestID {
				t.Errorf("got request id %q, want %q", header, tt.requestID)
			}

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("invalid log entry %q: %v", buf.String(), err)
			}

			if entry["level"] != tt.level {
				t.Errorf("got level %v, want %s", entry["level"], tt.level)
			}

			if entry["status_code"] != float64(tt.status) {
				t.Errorf("got status %v, want %d", entry["status_code"], tt.status)
			}

			if entry["bytes"] != float64(5) {
				t.Errorf("got bytes %v, want 5", entry["bytes"])
			}

			if entry["request_id"] != header {
				t.Errorf("got logged id %v, want %s", entry["request_id"], header)
			}
		})
	}
}

func TestAddHeaders(t *testing.T) {

	tests := []struct {
		name  string
		debug bool
		hsts  bool
	}{
		{"production", false, true},
		{"debug", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&config.Config{Debug: tt.debug}, logrus.New())
			handler := s.AddHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

			if got := recorder.Header().Get("X-Content-Type-Options"); got != "nosniff" {
				t.Errorf("got X-Content-Type-Options %q, want nosniff", got)
			}

			if got := recorder.Header().Get("Strict-Transport-Security") != ""; got != tt.hsts {
				t.Errorf("got HSTS = %t, want %t", got, tt.hsts)
			}
		})
	}
}

func TestCompress(t *testing.T) {

	s := New(&config.Config{}, logrus.New())
	body := strings.Repeat(`{"text":"never gonna give you up"}`, 100)

	handler := s.Compress(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("got Content-Encoding %q, want gzip", got)
	}

	reader, err := gzip.NewReader(recorder.Body)
	if err != nil {
		t.Fatalf("invalid gzip body: %v", err)
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("failed to read gzip body: %v", err)
	}

	if string(decoded) != body {
		t.Error("decompressed body differs from the original")
	}
}

func TestApplyToAll(t *testing.T) {

	s := New(&config.Config{}, logrus.New())

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	s.ApplyToAll(tag("first"), tag("second"))(final).ServeHTTP(
		httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/", nil),
	)

	if got := strings.Join(order, ","); got != "first,second,handler" {
		t.Errorf("got order %q, want %q", got, "first,second,handler")
	}
}
