package kernel

// PaginationOptions carries the requested page and page size of a list query.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// DefaultPagination returns the standard first page of twenty items.
func DefaultPagination() PaginationOptions {
	return PaginationOptions{Page: 1, PageSize: 20}
}

// Offset returns the number of items to skip for this page.
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page describes the position of a result page within the full result set.
type Page struct {
	Number  int  `json:"currentPage"`
	Size    int  `json:"limit"`
	Total   int  `json:"totalItems"`
	Pages   int  `json:"totalPages"`
	HasNext bool `json:"hasNextPage"`
	HasPrev bool `json:"hasPrevPage"`
}

// NewPage computes page metadata from the request and the total match count.
func NewPage(opts PaginationOptions, total int) Page {
	pages := 0
	if opts.PageSize > 0 {
		pages = (total + opts.PageSize - 1) / opts.PageSize
	}
	return Page{
		Number:  opts.Page,
		Size:    opts.PageSize,
		Total:   total,
		Pages:   pages,
		HasNext: opts.Page < pages,
		HasPrev: opts.Page > 1,
	}
}

// Paginated wraps one page of items together with its page metadata.
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}
