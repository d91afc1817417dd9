package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/flintlabs/flint/http"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)
	logger = otelslog.NewLogger(scopeName)

	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
)

func init() {
	var err error
	requestCount, err = meter.Int64Counter("flint.server.requests",
		metric.WithDescription("Requests answered, by path, method and status"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}
	requestDuration, err = meter.Float64Histogram("flint.server.request.duration",
		metric.WithDescription("Time from accept to response written"),
		metric.WithUnit("s"))
	if err != nil {
		panic(err)
	}
}

// Server accepts connections and serves one request/response exchange per
// connection. The accept loop never blocks on a connection: every accepted
// conn gets its own goroutine that reads the frame, dispatches it through
// the router, writes the reply and closes.
type Server struct {
	Router *Router

	// ReadTimeout and WriteTimeout bound the per-connection socket I/O.
	// Zero means no deadline.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	mu       sync.Mutex
	listener net.Listener
	conns    sync.WaitGroup
}

func NewServer(router *Router) *Server {
	return &Server{
		Router: router,
	}
}

// ListenAndServe binds addr and serves until the listener fails or ctx is
// canceled. A bind failure is returned immediately; it is the one fatal
// setup error.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("http: bind %s: %w", addr, err)
	}

	stop := context.AfterFunc(ctx, func() {
		listener.Close()
	})
	defer stop()

	return s.Serve(listener)
}

// Serve runs the accept loop on an existing listener. It returns nil once
// the listener is closed. Accept errors other than closure are logged and
// do not stop the loop.
func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			logger.Error("accept failed", "error", err)
			continue
		}

		s.conns.Add(1)
		go func() {
			defer s.conns.Done()
			s.serveConn(conn)
		}()
	}
}

// Shutdown closes the listener and waits for in-flight connections to
// finish, or for ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener.Close()
	}

	done := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// serveConn drives one connection through read, dispatch, write, close.
// A malformed frame is answered with a 400 on the same connection; a
// socket-level failure abandons only this connection.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	connID := uuid.NewString()

	ctx, span := tracer.Start(context.Background(), "flint.request",
		trace.WithAttributes(
			attribute.String("conn.id", connID),
			attribute.String("peer.addr", conn.RemoteAddr().String()),
		))
	defer span.End()

	if s.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.ReadTimeout))
	}

	req, err := ReadRequest(conn)

	var res Response
	switch {
	case err == nil:
		res = s.dispatch(ctx, &req)
	case errors.Is(err, ErrMalformed):
		logger.DebugContext(ctx, "malformed request", "conn_id", connID, "error", err)
		res = Response{Status: StatusBadRequest, Body: err.Error()}
	default:
		logger.ErrorContext(ctx, "request read failed", "conn_id", connID, "error", err)
		return
	}

	if s.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(s.WriteTimeout))
	}
	if err := res.Write(conn); err != nil {
		logger.ErrorContext(ctx, "response write failed", "conn_id", connID, "error", err)
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("method", string(req.Method)),
		attribute.String("path", req.Endpoint),
		attribute.Int("status", int(res.Status)),
	)
	requestCount.Add(ctx, 1, attrs)
	requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	span.SetAttributes(attribute.Int("status", int(res.Status)))
}

// dispatch resolves and runs the handler. A panicking handler is contained
// here: the connection gets a 500 and the rest of the server is untouched.
func (s *Server) dispatch(ctx context.Context, req *Request) (res Response) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "handler panic",
				"method", string(req.Method),
				"path", req.Endpoint,
				"panic", r)
			res = Response{
				Status: StatusInternalServerError,
				Body:   StatusInternalServerError.Reason(),
			}
		}
	}()

	return s.Router.Resolve(req)(req)
}
