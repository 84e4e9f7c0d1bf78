package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"testing"
)

// captureLog redirects the default logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// accessLine returns the last "request" record written to buf.
func accessLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var last map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		if rec["msg"] == "request" {
			last = rec
		}
	}
	if last == nil {
		t.Fatalf("no access log line in %q", buf.String())
	}
	return last
}

func TestRequestLogger_AdminRouteLogsRouteAndAdmin(t *testing.T) {
	buf := captureLog(t)
	h := newTestRouter(t).Handler()

	rec := serve(h, http.MethodGet, "/api/admin/admins", bearer(t, "super-1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	line := accessLine(t, buf)
	if line["route"] != "GET /api/admin/admins" {
		t.Errorf("unexpected route %v", line["route"])
	}
	if line["admin_id"] != "super-1" {
		t.Errorf("unexpected admin_id %v", line["admin_id"])
	}
	if line["status"] != float64(http.StatusOK) || line["level"] != "INFO" {
		t.Errorf("unexpected status/level %v %v", line["status"], line["level"])
	}
	if line["request_id"] == "" || line["request_id"] == nil {
		t.Error("expected request_id")
	}
	if b, _ := line["bytes"].(float64); int(b) != rec.Body.Len() {
		t.Errorf("expected bytes=%d, got %v", rec.Body.Len(), line["bytes"])
	}
}

func TestRequestLogger_PublicRouteHasNoAdmin(t *testing.T) {
	buf := captureLog(t)
	h := newTestRouter(t).Handler()

	serve(h, http.MethodGet, "/api/blog?page=2", "")
	line := accessLine(t, buf)
	if line["route"] != "GET /api/blog" {
		t.Errorf("expected matched pattern, got %v", line["route"])
	}
	if _, ok := line["admin_id"]; ok {
		t.Errorf("public route should not log admin_id, got %v", line["admin_id"])
	}
}

func TestRequestLogger_ServerErrorIsWarn(t *testing.T) {
	buf := captureLog(t)
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	serve(RequestLogger(failing), http.MethodGet, "/api/x", "")
	line := accessLine(t, buf)
	if line["level"] != "WARN" || line["status"] != float64(http.StatusInternalServerError) {
		t.Errorf("expected WARN 500, got %v %v", line["level"], line["status"])
	}
	if _, ok := line["route"]; ok {
		t.Errorf("unrouted handler should not log a route, got %v", line["route"])
	}
}
