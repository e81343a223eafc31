package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devevent/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query string
		want  domain.PaginationParams
	}{
		{"", domain.PaginationParams{Page: 1, PageSize: DefaultPageSize}},
		{"page=3&page_size=5", domain.PaginationParams{Page: 3, PageSize: 5}},
		{"page=0&page_size=-1", domain.PaginationParams{Page: 1, PageSize: DefaultPageSize}},
		{"page=abc&page_size=1000", domain.PaginationParams{Page: 1, PageSize: MaxPageSize}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/events?"+tt.query, nil)
			require.Equal(t, tt.want, ParsePagination(r))
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(domain.PaginationParams{Page: 2, PageSize: 5}, 11)
	require.Equal(t, PaginationMeta{Page: 2, PageSize: 5, Total: 11, TotalPages: 3, HasNext: true}, meta)
	require.False(t, NewPaginationMeta(domain.PaginationParams{Page: 3, PageSize: 5}, 11).HasNext)
	require.Equal(t, 0, NewPaginationMeta(domain.PaginationParams{}, 11).TotalPages)
}

type sampleRequest struct {
	Name string `json:"name"`
}

func (s *sampleRequest) Validate() []string {
	if s.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name":"ada"}`, ""},
		{"malformed", `{"name":`, "invalid request body"},
		{"unknown field", `{"name":"ada","admin":true}`, "unknown field"},
		{"trailing data", `{"name":"ada"} {"name":"bob"}`, "unexpected data"},
		{"validation", `{}`, "name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dest sampleRequest
			err := Decode(httptest.NewRecorder(), r, &dest)
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.Equal(t, "ada", dest.Name)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestWriteInternalError(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")

	tests := []struct {
		name        string
		production  bool
		wantDetails string
	}{
		{"development includes details", false, "dial tcp: connection refused"},
		{"production hides details", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteInternalError(w, "Failed to fetch event.", boom, tt.production)

			require.Equal(t, http.StatusInternalServerError, w.Code)
			require.Equal(t, "application/json", w.Header().Get("Content-Type"))
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, "Failed to fetch event.", body["message"])
			if tt.wantDetails == "" {
				require.NotContains(t, body, "details")
				return
			}
			require.Equal(t, tt.wantDetails, body["details"])
		})
	}
}
