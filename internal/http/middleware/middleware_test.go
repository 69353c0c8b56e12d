package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fantasy-gm-service/internal/metrics"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	handler := LoggingMiddleware(logger, nil, next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/schedule/week", nil))

	if seenID == "" {
		t.Fatal("expected a generated request id in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seenID {
		t.Fatalf("expected header %q to match context id %q", got, seenID)
	}
	if !bytes.Contains(buf.Bytes(), []byte("request complete")) {
		t.Fatal("expected completion log entry")
	}
}

func TestLoggingMiddlewareKeepsValidIncomingID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := LoggingMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, next)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied-1" {
		t.Fatalf("expected incoming id to survive, got %q", got)
	}
}

func TestLoggingMiddlewareReplacesGarbageID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := LoggingMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, next)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "not valid // at all")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got == "not valid // at all" || got == "" {
		t.Fatalf("expected a regenerated id, got %q", got)
	}
}

func TestLoggingMiddlewareRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := LoggingMiddleware(nil, rec, next)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/leagues/Liga/matchup", nil))

	if w.Code != http.StatusTeapot {
		t.Fatalf("unexpected status %d", w.Code)
	}
}

func TestLoggingMiddlewarePassesThroughFlusher(t *testing.T) {
	var flushed bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		if !ok {
			t.Fatal("expected wrapped writer to support flushing")
		}
		f.Flush()
		flushed = true
	})
	handler := LoggingMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/schedule/week", nil))

	if !flushed {
		t.Fatal("handler did not run")
	}
	if !rec.Flushed {
		t.Fatal("expected flush to reach the underlying writer")
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/health":                     "/health",
		"/schedule/week":              "/schedule/week",
		"/leagues":                    "/leagues",
		"/leagues/Liga":               "/leagues/:name",
		"/leagues/Liga/matchup":       "/leagues/:name/matchup",
		"/leagues/Liga%20Dos/waivers": "/leagues/:name/waivers",
		"":                            "",
	}
	for in, want := range cases {
		if got := normalizePath(in); got != want {
			t.Fatalf("normalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}
