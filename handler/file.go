package handler

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flintlabs/flint/http"
)

// handleFile serves GET and POST under /files/. Every failure maps to 404;
// the endpoint reveals nothing about why a path cannot be served.
func (router *Router) handleFile(ctx context.Context, req *http.Request) *http.Response {
	if router.config.Directory == "" {
		return http.NotFound()
	}

	name := strings.TrimPrefix(req.Target, "/files/")
	path := filepath.Join(router.config.Directory, name)

	switch req.Method {
	case http.MethodGet:
		return router.getFile(ctx, path)
	case http.MethodPost:
		return router.postFile(ctx, path, req.Body)
	default:
		return http.NotFound()
	}
}

func (router *Router) getFile(ctx context.Context, path string) *http.Response {
	content, err := router.fs.ReadFile(path)
	if err != nil {
		logger.DebugContext(ctx, "file read failed", "path", path, "error", err)
		return http.NotFound()
	}

	res := http.NewResponse(http.StatusOK)
	res.Headers.Set("Content-Type", "application/octet-stream")
	res.Headers.Set("Content-Length", strconv.Itoa(len(content)))
	res.Body = content

	return res
}

func (router *Router) postFile(ctx context.Context, path string, content []byte) *http.Response {
	if err := router.fs.WriteFile(path, content); err != nil {
		logger.WarnContext(ctx, "file write failed", "path", path, "error", err)
		return http.NotFound()
	}

	body := "Uploaded successfully"
	res := http.NewResponse(http.StatusCreated)
	res.Headers.Set("Content-Type", "text/plain")
	res.Headers.Set("Content-Length", strconv.Itoa(len(body)))
	res.Body = []byte(body)

	return res
}
