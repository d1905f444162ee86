// Package http implements a minimal HTTP/1.1 server: a wire codec for
// requests and responses, and the listener plus per-connection lifecycle
// around it. Bodies are framed by Content-Length only.
package http

import (
	"context"
	"time"
)

const (
	DefaultReadBufferSize  = 4096
	DefaultWriteBufferSize = 4096

	// DefaultIdleTimeout bounds how long a persistent connection may sit
	// between requests before the server abandons it.
	DefaultIdleTimeout = 5 * time.Second
)

// Handler turns a parsed request into the response to write back. The
// server builds one Handler per connection, so an implementation only has
// to be safe for the sequential requests of a single connection.
type Handler interface {
	Handle(ctx context.Context, req *Request) *Response
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, req *Request) *Response

func (f HandlerFunc) Handle(ctx context.Context, req *Request) *Response {
	return f(ctx, req)
}

// HandlerFactory builds the Handler used for a single connection.
type HandlerFactory func() Handler
