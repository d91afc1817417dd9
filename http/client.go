package http

import (
	"fmt"
	"net"
	"time"
)

// Client performs single-shot request/response exchanges. Every Send dials
// a fresh connection; there is no pooling and no retry.
type Client struct {
	// DialTimeout bounds the connect. Zero means the OS default.
	DialTimeout time.Duration
	// ReadTimeout bounds the wait for the full reply. Zero means no
	// deadline.
	ReadTimeout time.Duration
}

// DefaultClient is used by the package-level Send.
var DefaultClient = &Client{}

// Send dials addr, writes the encoded request, half-closes the write side
// to mark the end of the frame, then blocks until the peer closes and
// decodes the reply. A malformed reply satisfies
// errors.Is(err, ErrMalformed); everything else is socket trouble.
func (c *Client) Send(req *Request, addr string) (Response, error) {
	dialer := net.Dialer{Timeout: c.DialTimeout}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return Response{}, fmt.Errorf("http: connect %s: %w", addr, err)
	}
	defer conn.Close()

	if err := req.Write(conn); err != nil {
		return Response{}, err
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		tc.CloseWrite()
	}

	if c.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(c.ReadTimeout))
	}

	return ReadResponse(conn)
}

// Send performs a one-shot exchange with the default client.
func Send(req *Request, addr string) (Response, error) {
	return DefaultClient.Send(req, addr)
}
