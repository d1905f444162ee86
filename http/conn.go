package http

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// serveConn owns one accepted connection: parse a request, hand it to the
// handler, write the response, repeat until the connection ends. The
// handler is built fresh for this connection, so handler state is never
// shared across connections.
//
// Malformed input drops the connection without writing an error response.
func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	logger := s.logger.With("conn_id", uuid.NewString(), "remote_addr", conn.RemoteAddr().String())
	logger.Debug("connection accepted")

	handler := s.newHandler()
	br := bufio.NewReaderSize(conn, DefaultReadBufferSize)
	bw := bufio.NewWriterSize(conn, DefaultWriteBufferSize)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(s.idleTimeout)); err != nil {
			logger.Error("set read deadline failed", "error", err)
			return
		}

		req, err := ReadRequest(br)
		if err != nil {
			switch {
			case errors.Is(err, ErrMalformedRequest):
				logger.Warn("dropping connection", "error", err)
			case errors.Is(err, io.EOF):
				logger.Debug("connection closed by peer")
			case errors.Is(err, os.ErrDeadlineExceeded):
				logger.Debug("connection idle timeout")
			default:
				logger.Error("read request failed", "error", err)
			}
			return
		}

		res := handler.Handle(ctx, req)

		if _, err := bw.Write(res.Bytes()); err != nil {
			logger.Error("write response failed", "error", err)
			return
		}
		if err := bw.Flush(); err != nil {
			logger.Error("flush response failed", "error", err)
			return
		}

		if value, found := req.Headers.Get("Connection"); found && strings.EqualFold(value, "close") {
			logger.Debug("connection closed on request")
			return
		}
	}
}
