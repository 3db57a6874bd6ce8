package aliexpress

import (
	"slices"
	"strings"
)

// Assemble builds the request URL for fully signed params. Path-style
// methods are appended to the rest gateway and dropped from the query;
// legacy methods go to the sync gateway as a method= parameter. Every
// present parameter follows in ascending key order.
func (c *Client) Assemble(params Params) string {
	return assemble(c.syncURL, c.restURL, params)
}

func assemble(syncURL, restURL string, params Params) string {
	values := params.present()

	base := syncURL
	if m, ok := params["method"].(string); ok && isPathMethod(m) {
		base = restURL + m
		delete(values, "method")
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString(base)
	for i, k := range keys {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(escapeComponent(values[k]))
	}

	return b.String()
}

const upperhex = "0123456789ABCDEF"

// escapeComponent percent-encodes s leaving only the URI component
// unreserved set (A-Z a-z 0-9 - _ . ! ~ * ' ( )) intact. Neither
// url.QueryEscape (space as +) nor url.PathEscape (keeps & = + : @) match it.
func escapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
