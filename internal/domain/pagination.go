package domain

// PaginationParams selects one page of a list. Page is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset is the number of rows to skip; 0 for the first page or a bad Page.
func (p PaginationParams) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit is the page size; 0 means unbounded.
func (p PaginationParams) Limit() int {
	return max(p.PageSize, 0)
}
