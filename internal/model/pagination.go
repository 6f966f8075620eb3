package model

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	maxPage      = 1_000_000
)

// PageQuery holds the page/limit query parameters shared by list endpoints.
//
// Zero means "not supplied" and falls back to the default; negative values
// fail validation.
type PageQuery struct {
	Page  int `query:"page" validate:"min=0,max=1000000"`
	Limit int `query:"limit" validate:"min=0,max=100"`
}

// PageNumber returns the 1-based page to fetch.
func (q PageQuery) PageNumber() int {
	if q.Page <= 0 {
		return DefaultPage
	}
	if q.Page > maxPage {
		return maxPage
	}
	return q.Page
}

// PageSize returns the maximum number of rows to fetch.
func (q PageQuery) PageSize() int {
	switch {
	case q.Limit <= 0:
		return DefaultLimit
	case q.Limit > MaxLimit:
		return MaxLimit
	default:
		return q.Limit
	}
}

// Offset returns the number of rows to skip: (page-1)*limit.
func (q PageQuery) Offset() int {
	return (q.PageNumber() - 1) * q.PageSize()
}
