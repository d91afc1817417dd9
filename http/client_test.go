package http

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConnectFailure(t *testing.T) {
	// Grab a port that is guaranteed to be closed.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	_, err = Send(&Request{Method: MethodGet, Endpoint: "/"}, addr)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestClientMalformedReplySurfacesParseError(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		io.Copy(io.Discard, conn)
		conn.Write([]byte("no status line here"))
	}()

	client := &Client{ReadTimeout: 2 * time.Second}
	_, err = client.Send(&Request{Method: MethodGet, Endpoint: "/"}, listener.Addr().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestClientSendsWellFormedFrame(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	frames := make(chan string, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		raw, _ := io.ReadAll(conn)
		frames <- string(raw)
		res := Response{Status: StatusOK}
		res.Write(conn)
	}()

	req := Request{
		Method:   MethodPost,
		Endpoint: "/echo",
		Headers:  []Header{{Key: "host", Value: "localhost:8000"}},
		Body:     "Hello, ",
	}
	res, err := Send(&req, listener.Addr().String())
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)

	assert.Equal(t, "POST /echo\nhost: localhost:8000\n\nHello, ", <-frames)
}
