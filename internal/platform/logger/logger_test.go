package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func newBufLogger(buf *bytes.Buffer, format Format) *lineLogger {
	l := New(Options{Level: Debug, Format: format, App: "cat-collector", Out: buf}).(*lineLogger)
	l.now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }
	return l
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json: %v (%q)", err, buf.String())
	}
	return entry
}

func TestTextFormat_FixedPrefixThenSortedKeys(t *testing.T) {
	var buf bytes.Buffer
	log := newBufLogger(&buf, FormatText)

	log.Info("photo stored", map[string]any{"key": "abc123.png", "cat_id": "c1"})

	want := `ts=2025-12-22T10:00:00Z level=info msg="photo stored" app=cat-collector cat_id=c1 key=abc123.png`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Fatalf("unexpected line:\n got %q\nwant %q", got, want)
	}
}

func TestJSONFormat_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := newBufLogger(&buf, FormatJSON).With(map[string]any{"request_id": "r-1", "": "ignored"})

	log.Error("photo upload failed", map[string]any{"error": errors.New("boom")})

	entry := decode(t, &buf)
	if entry["level"] != "error" || entry["request_id"] != "r-1" || entry["error"] != "boom" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key must be dropped")
	}
}

func TestSensitiveFieldsAreRedacted(t *testing.T) {
	var buf bytes.Buffer
	log := newBufLogger(&buf, FormatJSON)

	log.Warn("signup rejected", map[string]any{"username": "felix", "password": "s3cret-pass", "Token": "eyJ..."})

	entry := decode(t, &buf)
	if entry["password"] != Redacted || entry["Token"] != Redacted {
		t.Fatalf("expected redacted fields, got %+v", entry)
	}
	if entry["username"] != "felix" {
		t.Fatalf("username must be kept, got %+v", entry)
	}
}

func TestWith_DoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newBufLogger(&buf, FormatJSON)
	_ = parent.With(map[string]any{"cat_id": "c1"})

	parent.Info("x", nil)

	if _, ok := decode(t, &buf)["cat_id"]; ok {
		t.Fatalf("child fields leaked into parent")
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Out: &buf})

	log.Debug("x", nil)
	log.Info("y", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}

	log.Warn("z", nil)
	if buf.Len() == 0 {
		t.Fatalf("expected warn to be written")
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	cases := map[string]Level{"": Info, "DEBUG": Debug, "warning": Warn, "error": Error, "nope": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected ParseFormat")
	}
}

func TestFromContext(t *testing.T) {
	if _, ok := FromContext(context.Background()).(nop); !ok {
		t.Fatalf("expected nop logger without context value")
	}

	var buf bytes.Buffer
	ctx := NewContext(context.Background(), newBufLogger(&buf, FormatJSON).With(map[string]any{"request_id": "r-9"}))
	FromContext(ctx).Error("internal error", nil)

	if decode(t, &buf)["request_id"] != "r-9" {
		t.Fatalf("expected request logger from context, got %q", buf.String())
	}
}
