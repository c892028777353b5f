package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cat-collector/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRequestLog_LevelFollowsStatus(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusForbidden, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Out: &buf})

		h := chimw.RequestID(AuthContext(nil)(RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))))

		req := httptest.NewRequest(http.MethodGet, "/cats/c1", nil)
		req.Header.Set("X-Debug-User-ID", "user-1")
		h.ServeHTTP(httptest.NewRecorder(), req)

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", buf.String(), err)
		}
		if entry["level"] != tc.level {
			t.Fatalf("status %d: expected level %s, got %v", tc.status, tc.level, entry["level"])
		}
		if entry["path"] != "/cats/c1" || entry["user_id"] != "user-1" || entry["request_id"] == "" {
			t.Fatalf("unexpected entry: %+v", entry)
		}
		if int(entry["status"].(float64)) != tc.status {
			t.Fatalf("expected status %d, got %v", tc.status, entry["status"])
		}
	}
}

func TestRequestLog_DefaultsTo200(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Out: &buf})

	h := RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid log line: %v", err)
	}
	if int(entry["status"].(float64)) != http.StatusOK {
		t.Fatalf("expected 200, got %v", entry["status"])
	}
}

func TestRequestLog_HandlerLoggerCarriesRequestFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Out: &buf})

	h := chimw.RequestID(AuthContext(nil)(RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Error("list cats failed", map[string]any{"error": "boom"})
		w.WriteHeader(http.StatusInternalServerError)
	}))))

	req := httptest.NewRequest(http.MethodGet, "/cats", nil)
	req.Header.Set("X-Debug-User-ID", "user-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected handler line + request line, got %q", buf.String())
	}

	var first, second map[string]any
	if err := json.Unmarshal(lines[0], &first); err != nil {
		t.Fatalf("invalid log line: %v", err)
	}
	if err := json.Unmarshal(lines[1], &second); err != nil {
		t.Fatalf("invalid log line: %v", err)
	}
	if first["msg"] != "list cats failed" || first["user_id"] != "user-1" || first["request_id"] == "" {
		t.Fatalf("unexpected handler entry: %+v", first)
	}
	if first["request_id"] != second["request_id"] {
		t.Fatalf("request id mismatch: %v vs %v", first["request_id"], second["request_id"])
	}
}
