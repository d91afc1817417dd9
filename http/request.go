package http

import (
	"fmt"
	"io"
	"strings"
)

// Request is one inbound or outbound request message. Values are built per
// call and never mutated after they hit the wire.
type Request struct {
	Method   Method
	Endpoint string
	Headers  []Header
	Body     string
}

// HeaderValue returns the value of the first header with the given key.
func (req *Request) HeaderValue(key string) (string, bool) {
	for _, h := range req.Headers {
		if h.Key == key {
			return h.Value, true
		}
	}
	return "", false
}

// Equal reports structural equality, with headers compared as ordered
// sequences. A nil header slice equals an empty one.
func (req *Request) Equal(other *Request) bool {
	return req.Method == other.Method &&
		req.Endpoint == other.Endpoint &&
		headersEqual(req.Headers, other.Headers) &&
		req.Body == other.Body
}

// Encode renders the request frame:
//
//	METHOD ENDPOINT\n
//	Key: Value\n        (zero or more)
//	\n
//	BODY                (verbatim)
func (req *Request) Encode() []byte {
	var b strings.Builder
	b.Grow(len(req.Method) + len(req.Endpoint) + headersSize(req.Headers) + len(req.Body) + 3)

	b.WriteString(string(req.Method))
	b.WriteByte(' ')
	b.WriteString(req.Endpoint)
	b.WriteByte('\n')
	encodeHeaders(&b, req.Headers)
	b.WriteByte('\n')
	b.WriteString(req.Body)

	return []byte(b.String())
}

// Write encodes the request onto w in a single write.
func (req *Request) Write(w io.Writer) error {
	if _, err := w.Write(req.Encode()); err != nil {
		return fmt.Errorf("http: write request: %w", err)
	}
	return nil
}

// ReadRequest consumes r to EOF and decodes the result as a request frame.
// The sender signals the end of the frame by closing its write side.
func ReadRequest(r io.Reader) (Request, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxMessageSize))
	if err != nil {
		return Request{}, fmt.Errorf("http: read request: %w", err)
	}
	return ParseRequest(string(data))
}

// ParseRequest decodes a complete request frame. The body is the verbatim
// remainder after the first blank line; delimiters inside it carry no
// meaning.
func ParseRequest(frame string) (Request, error) {
	head, body, found := strings.Cut(frame, "\n\n")
	if !found {
		return Request{}, &ParseError{What: "frame", Input: ""}
	}

	lines := strings.Split(head, "\n")
	token, endpoint, ok := strings.Cut(lines[0], " ")
	if !ok {
		return Request{}, &ParseError{What: "request line", Input: lines[0]}
	}
	method, err := ParseMethod(token)
	if err != nil {
		return Request{}, err
	}

	headers, err := parseHeaders(lines[1:])
	if err != nil {
		return Request{}, err
	}

	return Request{
		Method:   method,
		Endpoint: endpoint,
		Headers:  headers,
		Body:     body,
	}, nil
}
