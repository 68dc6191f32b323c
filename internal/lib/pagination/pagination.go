package pagination

import "strconv"

// DefaultLimit is the fallback page size when configuration supplies none.
const DefaultLimit = 20

// ParsePage parses a page query parameter. Missing, non-numeric, and
// non-positive values all mean page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Page is one window over a counted result set. No upper clamp is applied:
// a page past the end simply yields an empty window.
type Page struct {
	Number int `json:"page"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

// New builds a Page from a raw page parameter, a configured page size and
// the total match count.
func New(raw string, limit, total int) Page {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if total < 0 {
		total = 0
	}
	return Page{Number: ParsePage(raw), Limit: limit, Total: total}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Start is the 1-based index of the first item on the page, for the
// "Displaying start - end of total" presentation message.
func (p Page) Start() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// End is the 1-based index of the last item on the page.
func (p Page) End() int {
	end := p.Offset() + p.Limit
	if end > p.Total {
		end = p.Total
	}
	return end
}

// Window slices items to the page bounds. Used for result sets that are
// assembled in memory before pagination (e.g. last-viewed products).
func Window[T any](items []T, p Page) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
