package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cat-collector/internal/platform/logger"
)

func TestInternalError_LogsCauseAndHidesIt(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Out: &buf}).
		With(map[string]any{"request_id": "r-1"})

	req := httptest.NewRequest(http.MethodGet, "/cats/c1", nil)
	req = req.WithContext(logger.NewContext(req.Context(), log))
	rec := httptest.NewRecorder()

	InternalError(rec, req, errors.New("sql: database is closed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "database") {
		t.Fatalf("cause must not reach the client: %q", rec.Body.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "error" || entry["error"] != "sql: database is closed" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry["request_id"] != "r-1" || entry["path"] != "/cats/c1" {
		t.Fatalf("expected request fields, got %+v", entry)
	}
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"id": "c1"})

	if rec.Code != http.StatusCreated || rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	if strings.TrimSpace(rec.Body.String()) != `{"id":"c1"}` {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}
