package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
	"time"
)

// Option configures a Server at Start time.
type Option func(*Server)

// WithLogger routes server and connection logs through logger instead of
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithIdleTimeout overrides how long a persistent connection may sit idle
// between requests before it is dropped.
func WithIdleTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.idleTimeout = timeout
	}
}

// Server owns a TCP listener and serves every accepted connection on its
// own goroutine.
type Server struct {
	listener    net.Listener
	newHandler  HandlerFactory
	logger      *slog.Logger
	idleTimeout time.Duration

	running atomic.Bool
	done    chan struct{}
}

// Start binds addr and begins accepting connections, serving each with a
// fresh handler from newHandler. The returned server is already running;
// stop it with Shutdown. The context is handed to every handler call.
func Start(ctx context.Context, addr string, newHandler HandlerFactory, opts ...Option) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("http: bind %s: %w", addr, err)
	}

	s := &Server{
		listener:    listener,
		newHandler:  newHandler,
		logger:      slog.Default(),
		idleTimeout: DefaultIdleTimeout,
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.running.Store(true)
	go s.acceptLoop(ctx)

	return s, nil
}

// acceptLoop blocks in Accept until the listener closes. Shutdown closes
// the listener, which unblocks the pending Accept with net.ErrClosed.
func (s *Server) acceptLoop(ctx context.Context) {
	defer close(s.done)

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.running.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Error("accept failed", "error", err)
			return
		}

		go s.serveConn(ctx, conn)
	}
}

// Shutdown stops accepting connections and waits for the accept loop to
// exit or for ctx to expire. In-flight connections are not awaited; each
// ends on its own once the peer closes or its idle timeout fires. Repeat
// calls are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	closeErr := s.listener.Close()

	select {
	case <-s.done:
		return closeErr
	case <-ctx.Done():
		return errors.Join(closeErr, ctx.Err())
	}
}

// Addr reports the listener's bound address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Port reports the bound TCP port, handy after a ":0" ephemeral bind.
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Running reports whether Shutdown has been called yet. It stays true if
// the accept loop dies on its own; watch Done for that.
func (s *Server) Running() bool {
	return s.running.Load()
}

// Done is closed once the accept loop exits, whether through Shutdown or an
// accept failure.
func (s *Server) Done() <-chan struct{} {
	return s.done
}
