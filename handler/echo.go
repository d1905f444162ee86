package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/flintlabs/flint/compress"
	"github.com/flintlabs/flint/http"
)

// handleEcho answers with everything after the /echo/ prefix. When the
// client accepts gzip the body is compressed and Content-Encoding is set;
// a compression failure falls back to the identity body.
func handleEcho(ctx context.Context, req *http.Request) *http.Response {
	body := []byte(strings.TrimPrefix(req.Target, "/echo/"))

	res := http.NewResponse(http.StatusOK)
	res.Headers.Set("Content-Type", "text/plain")

	if acceptsGzip(req) {
		encoded, err := compress.Gzip(body)
		if err != nil {
			logger.WarnContext(ctx, "gzip encoding failed, sending identity", "error", err)
		} else {
			res.Headers.Set("Content-Encoding", "gzip")
			body = encoded
		}
	}

	// Content-Length reflects the bytes actually sent, so it is set after
	// any encoding.
	res.Headers.Set("Content-Length", strconv.Itoa(len(body)))
	res.Body = body

	return res
}

// acceptsGzip reports whether the comma-separated Accept-Encoding list
// contains exactly "gzip". No q-values, no case folding.
func acceptsGzip(req *http.Request) bool {
	value, found := req.Headers.Get("Accept-Encoding")
	if !found {
		return false
	}

	for _, encoding := range strings.Split(value, ",") {
		if strings.TrimSpace(encoding) == "gzip" {
			return true
		}
	}

	return false
}
