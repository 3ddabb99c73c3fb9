package pagination

import (
	"strconv"
	"strings"

	"task-manager-api.com/task-manager-api/internal/constants"
)

// Params is a page request in the API's convention: Page is zero-based.
type Params struct {
	Page    int
	PerPage int
}

// ParseParams never fails: missing, non-numeric or out-of-range values fall
// back to the defaults. PerPage has no upper bound.
func ParseParams(page, perPage string) Params {
	p := Params{Page: constants.DefaultPage, PerPage: constants.DefaultPerPage}

	if n, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && n >= 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(perPage)); err == nil && n > 0 {
		p.PerPage = n
	}

	return p
}

// ToStorePage maps the zero-based page callers send to the one-based page
// number the store and the envelope use.
func ToStorePage(page int) int {
	return page + 1
}

// FromStorePage is the inverse of ToStorePage.
func FromStorePage(storePage int) int {
	return storePage - 1
}

func (p Params) StorePage() int {
	return ToStorePage(p.Page)
}

func (p Params) Offset() int {
	return (p.StorePage() - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}
