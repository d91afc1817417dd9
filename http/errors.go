package http

import (
	"errors"
	"fmt"
)

// ErrMalformed is the target for all decode failures. Use
// errors.Is(err, ErrMalformed) to tell a bad frame apart from socket
// trouble.
var ErrMalformed = errors.New("http: malformed message")

// ParseError reports which part of a frame failed to decode and the
// offending input.
type ParseError struct {
	What  string // "method", "status line", "header line", "frame"
	Input string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("http: malformed %s", e.What)
	}
	return fmt.Sprintf("http: malformed %s: %q", e.What, e.Input)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}
