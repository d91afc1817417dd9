package http

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Response is one reply message.
type Response struct {
	Status  StatusCode
	Headers []Header
	Body    string
}

// HeaderValue returns the value of the first header with the given key.
func (res *Response) HeaderValue(key string) (string, bool) {
	for _, h := range res.Headers {
		if h.Key == key {
			return h.Value, true
		}
	}
	return "", false
}

// Equal reports structural equality, with headers compared as ordered
// sequences.
func (res *Response) Equal(other *Response) bool {
	return res.Status == other.Status &&
		headersEqual(res.Headers, other.Headers) &&
		res.Body == other.Body
}

// Encode renders the response frame. The status line carries the numeric
// code and its canonical reason phrase, e.g. "404 Not Found".
func (res *Response) Encode() []byte {
	reason := res.Status.Reason()

	var b strings.Builder
	b.Grow(len(reason) + headersSize(res.Headers) + len(res.Body) + 8)

	b.WriteString(strconv.Itoa(int(res.Status)))
	b.WriteByte(' ')
	b.WriteString(reason)
	b.WriteByte('\n')
	encodeHeaders(&b, res.Headers)
	b.WriteByte('\n')
	b.WriteString(res.Body)

	return []byte(b.String())
}

// Write encodes the response onto w in a single write.
func (res *Response) Write(w io.Writer) error {
	if _, err := w.Write(res.Encode()); err != nil {
		return fmt.Errorf("http: write response: %w", err)
	}
	return nil
}

// ReadResponse consumes r to EOF and decodes the result as a response
// frame.
func ReadResponse(r io.Reader) (Response, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxMessageSize))
	if err != nil {
		return Response{}, fmt.Errorf("http: read response: %w", err)
	}
	return ParseResponse(string(data))
}

// ParseResponse decodes a complete response frame. The numeric code is
// authoritative: the reason phrase on the wire is ignored and restored from
// the status table, so round-tripping is exact.
func ParseResponse(frame string) (Response, error) {
	head, body, found := strings.Cut(frame, "\n\n")
	if !found {
		return Response{}, &ParseError{What: "frame", Input: ""}
	}

	lines := strings.Split(head, "\n")
	status, err := parseStatusLine(lines[0])
	if err != nil {
		return Response{}, err
	}

	headers, err := parseHeaders(lines[1:])
	if err != nil {
		return Response{}, err
	}

	return Response{
		Status:  status,
		Headers: headers,
		Body:    body,
	}, nil
}

func parseStatusLine(line string) (StatusCode, error) {
	token, _, _ := strings.Cut(line, " ")
	n, err := strconv.ParseUint(token, 10, 16)
	if err != nil {
		return 0, &ParseError{What: "status line", Input: line}
	}
	status := StatusCode(n)
	if !status.Valid() {
		return 0, &ParseError{What: "status line", Input: line}
	}
	return status, nil
}
