package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

const pageParam = "page"

type queryParam struct {
	key   string
	value string
}

// URLBuilder renders navigation links for a listing. It keeps every query
// parameter of the original request except page, in request order, and
// appends page last.
type URLBuilder struct {
	path      string
	query     []queryParam
	zeroBased bool
}

// NewURLBuilder takes the raw query string of the request. A key given more
// than once keeps its first position and its last value.
func NewURLBuilder(path, rawQuery string) URLBuilder {
	var params []queryParam
	index := make(map[string]int)

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			key = rawKey
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			value = rawValue
		}
		if key == "" || key == pageParam {
			continue
		}

		if i, ok := index[key]; ok {
			params[i].value = value
			continue
		}
		index[key] = len(params)
		params = append(params, queryParam{key: key, value: value})
	}

	return URLBuilder{path: path, query: params}
}

// ZeroBased makes links carry the zero-based page the listing endpoint
// accepts, so they can be followed as-is. By default links carry the
// one-based page number.
func (b URLBuilder) ZeroBased() URLBuilder {
	b.zeroBased = true
	return b
}

func (b URLBuilder) Path() string {
	return b.path
}

// URL links to the given one-based store page.
func (b URLBuilder) URL(storePage int) string {
	page := storePage
	if b.zeroBased {
		page = FromStorePage(storePage)
	}

	var sb strings.Builder
	sb.WriteString(b.path)
	sb.WriteByte('?')
	for _, p := range b.query {
		sb.WriteString(rawURLEncode(p.key))
		sb.WriteByte('=')
		sb.WriteString(rawURLEncode(p.value))
		sb.WriteByte('&')
	}
	sb.WriteString(pageParam)
	sb.WriteByte('=')
	sb.WriteString(strconv.Itoa(page))

	return sb.String()
}

// rawURLEncode percent-encodes everything outside the RFC 3986 unreserved
// set, so a space becomes %20.
func rawURLEncode(s string) string {
	const hex = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0f])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
