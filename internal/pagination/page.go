package pagination

import "strconv"

const (
	previousLabel = "&laquo; Previous"
	nextLabel     = "Next &raquo;"
	gapLabel      = "..."

	onEachSide = 3
)

type Link struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Page is the envelope returned by listing endpoints. CurrentPage and
// LastPage are one-based.
type Page[T any] struct {
	CurrentPage  int     `json:"current_page"`
	Data         []T     `json:"data"`
	FirstPageURL string  `json:"first_page_url"`
	From         *int    `json:"from"`
	LastPage     int     `json:"last_page"`
	LastPageURL  string  `json:"last_page_url"`
	Links        []Link  `json:"links"`
	NextPageURL  *string `json:"next_page_url"`
	Path         string  `json:"path"`
	PerPage      int     `json:"per_page"`
	PrevPageURL  *string `json:"prev_page_url"`
	To           *int    `json:"to"`
	Total        int64   `json:"total"`
}

func New[T any](items []T, total int64, params Params, urls URLBuilder) Page[T] {
	if items == nil {
		items = []T{}
	}

	current := params.StorePage()
	last := LastPage(total, params.PerPage)

	page := Page[T]{
		CurrentPage:  current,
		Data:         items,
		FirstPageURL: urls.URL(1),
		LastPage:     last,
		LastPageURL:  urls.URL(last),
		Path:         urls.Path(),
		PerPage:      params.PerPage,
		Total:        total,
	}

	if len(items) > 0 {
		from := params.Offset() + 1
		to := params.Offset() + len(items)
		page.From = &from
		page.To = &to
	}
	if current > 1 {
		prev := urls.URL(current - 1)
		page.PrevPageURL = &prev
	}
	if current < last {
		next := urls.URL(current + 1)
		page.NextPageURL = &next
	}

	page.Links = links(current, last, urls, page.PrevPageURL, page.NextPageURL)
	return page
}

// LastPage is never below one, even for an empty result set.
func LastPage(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		return 1
	}
	return pages
}

func links(current, last int, urls URLBuilder, prev, next *string) []Link {
	out := []Link{{URL: prev, Label: previousLabel}}

	for _, block := range window(current, last) {
		if block == nil {
			out = append(out, Link{Label: gapLabel})
			continue
		}
		for _, n := range block {
			u := urls.URL(n)
			out = append(out, Link{URL: &u, Label: strconv.Itoa(n), Active: n == current})
		}
	}

	return append(out, Link{URL: next, Label: nextLabel})
}

// window returns the numbered blocks of the navigation widget; a nil block
// stands for a "..." gap. Short listings show every page; longer ones show
// the first and last two pages around a slider of onEachSide pages.
func window(current, last int) [][]int {
	if last < onEachSide*2+8 {
		return [][]int{pageRange(1, last)}
	}

	size := onEachSide + 4
	start := pageRange(1, 2)
	finish := pageRange(last-1, last)

	switch {
	case current <= size:
		return [][]int{pageRange(1, size+onEachSide), nil, finish}
	case current > last-size:
		return [][]int{start, nil, pageRange(last-(size+onEachSide-1), last)}
	default:
		return [][]int{start, nil, pageRange(current-onEachSide, current+onEachSide), nil, finish}
	}
}

func pageRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}
