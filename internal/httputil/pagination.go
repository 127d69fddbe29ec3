package httputil

// Pagination defaults. Absent or non-numeric parameters coerce to the
// defaults rather than failing the request; the limit is capped to keep a
// single page bounded.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParsePagination extracts page and limit from normalized query parameters.
// Values below 1 or unparseable values fall back to the defaults.
func ParsePagination(params Params) (page, limit int) {
	page = params.Int("page", DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit = params.Int("limit", DefaultLimit)
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return page, limit
}

// TotalPages computes the page count for a result set: ceil(total/limit)
// with a floor of one page even for an empty set.
func TotalPages(totalCount, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	pages := (totalCount + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}
