package dto

import "time"

// DateLayout is the wire format for date-only fields (data_evento, data_despesa...).
const DateLayout = "2006-01-02"

// ts renders server timestamps for responses.
func ts(t time.Time) string { return t.Format(time.RFC3339) }

// tsPtr renders optional timestamps.
func tsPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := ts(*t)
	return &s
}

// ds renders date-only fields.
func ds(t time.Time) string { return t.Format(DateLayout) }

// Paginated is the page envelope shared by every paginated listing.
type Paginated[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// NovaPagina builds the envelope. total_pages is ceil(total/pageSize) and zero
// when the scoped set is empty; has_next/has_previous follow from page alone.
func NovaPagina[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if total > 0 && pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Paginated[T]{
		Items:       items,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
