// Package http implements a small text-based request/response protocol on
// top of plain TCP. It is not HTTP: frames carry no protocol version and no
// content length, a connection serves exactly one exchange, and the body is
// everything after the blank line up to the end of the stream.
package http

import "strings"

const (
	// MaxMessageSize bounds how many bytes a single frame may occupy on the
	// wire. Reads past this limit are truncated.
	MaxMessageSize = 2 * 1024 * 1024 // 2MB
)

// Method is the closed set of request methods. Matching is exact and
// case-sensitive: "get" is not a method.
type Method string

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
)

var methods = [...]Method{
	MethodGet,
	MethodHead,
	MethodPost,
	MethodPut,
	MethodPatch,
	MethodDelete,
	MethodOptions,
}

// ParseMethod maps a token to its Method. An unrecognized token is a
// *ParseError, never a default.
func ParseMethod(token string) (Method, error) {
	for _, m := range methods {
		if string(m) == token {
			return m, nil
		}
	}
	return "", &ParseError{What: "method", Input: token}
}

// Header is a single key/value pair. Messages carry headers as a slice, not
// a map: duplicates are preserved and order survives a round-trip.
type Header struct {
	Key   string
	Value string
}

func headersEqual(a, b []Header) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// parseHeaders decodes the header lines between the start line and the
// blank separator. A line without a colon is malformed.
func parseHeaders(lines []string) ([]Header, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	headers := make([]Header, 0, len(lines))
	for _, line := range lines {
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, &ParseError{What: "header line", Input: line}
		}
		value = strings.TrimPrefix(value, " ")
		headers = append(headers, Header{Key: key, Value: value})
	}
	return headers, nil
}

func encodeHeaders(b *strings.Builder, headers []Header) {
	for _, h := range headers {
		b.WriteString(h.Key)
		b.WriteString(": ")
		b.WriteString(h.Value)
		b.WriteByte('\n')
	}
}

func headersSize(headers []Header) int {
	n := 0
	for _, h := range headers {
		n += len(h.Key) + len(h.Value) + 3
	}
	return n
}
