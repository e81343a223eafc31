package helpers

import (
	"net/http"
	"net/url"
	"strconv"

	"devevent/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// intParam reads a positive integer query value, falling back to def when missing or invalid.
func intParam(q url.Values, key string, def int) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}

// ParsePagination reads ?page and ?page_size. It never fails: bad values fall back to the
// defaults and page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     intParam(q, "page", DefaultPage),
		PageSize: min(intParam(q, "page_size", DefaultPageSize), MaxPageSize),
	}
}

// PaginationMeta describes the page returned in a list response.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

func NewPaginationMeta(params domain.PaginationParams, total int) PaginationMeta {
	meta := PaginationMeta{Page: params.Page, PageSize: params.PageSize, Total: total}
	if params.PageSize > 0 {
		meta.TotalPages = (total + params.PageSize - 1) / params.PageSize
	}
	meta.HasNext = params.Page < meta.TotalPages
	return meta
}
