package usecase

import "time"

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Page is a 1-based pagination request.
type Page struct {
	No   int
	Size int
}

func (p Page) normalize() Page {
	if p.No < 1 {
		p.No = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

func (p Page) offset() int {
	return (p.No - 1) * p.Size
}

// PageResult is the envelope-ready shape of every list endpoint.
type PageResult[T any] struct {
	List       []T   `json:"list"`
	Total      int64 `json:"total"`
	PageNo     int   `json:"pageNo"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

func newPageResult[T any](items []T, total int64, p Page) *PageResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := int((total + int64(p.Size) - 1) / int64(p.Size))
	return &PageResult[T]{
		List:       items,
		Total:      total,
		PageNo:     p.No,
		PageSize:   p.Size,
		TotalPages: totalPages,
	}
}

// publishRange turns a year or year+month filter into a half-open time
// range. Month without a year is ignored, matching the original filters.
func publishRange(year, month int) (from, to *time.Time) {
	if year <= 0 {
		return nil, nil
	}
	var start, end time.Time
	if month >= 1 && month <= 12 {
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		end = start.AddDate(0, 1, 0)
	} else {
		start = time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
		end = start.AddDate(1, 0, 0)
	}
	return &start, &end
}
