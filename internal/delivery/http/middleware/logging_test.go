package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingHandler keeps the last record it was given.
type recordingHandler struct {
	last slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.last = r.Clone()
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

func (h *recordingHandler) attrs() map[string]slog.Value {
	out := make(map[string]slog.Value)
	h.last.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value
		return true
	})
	return out
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		status    int
		body      string
		wantLevel slog.Level
	}{
		{"event fetched", http.MethodGet, "/api/events/devfest-2025", http.StatusOK, `{"message":"ok"}`, slog.LevelInfo},
		{"booking created", http.MethodPost, "/api/bookings", http.StatusCreated, "", slog.LevelInfo},
		{"bad slug", http.MethodGet, "/api/events/Not_Valid", http.StatusUnprocessableEntity, "", slog.LevelWarn},
		{"store down", http.MethodGet, "/api/events", http.StatusInternalServerError, "", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h recordingHandler
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			rr := httptest.NewRecorder()

			RequestID(Logging(slog.New(&h), next)).ServeHTTP(rr, httptest.NewRequest(tt.method, "http://test"+tt.path, nil))

			require.Equal(t, "request", h.last.Message)
			require.Equal(t, tt.wantLevel, h.last.Level)
			attrs := h.attrs()
			require.Equal(t, tt.method, attrs["method"].String())
			require.Equal(t, tt.path, attrs["path"].String())
			require.Equal(t, int64(tt.status), attrs["status"].Int64())
			require.Equal(t, int64(len(tt.body)), attrs["bytes"].Int64())
			require.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
			require.Equal(t, rr.Header().Get(RequestIDHeader), attrs["request_id"].String())
			require.NotContains(t, attrs, "route")
		})
	}
}

func TestLogging_RecordsRoutePattern(t *testing.T) {
	var h recordingHandler
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events/{slug}", func(w http.ResponseWriter, r *http.Request) {})

	Logging(slog.New(&h), mux).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/events/go", nil))

	require.Equal(t, "GET /api/events/{slug}", h.attrs()["route"].String())
}
