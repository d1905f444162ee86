// Package handler implements the endpoints served on top of the http core:
// target-based dispatch plus the echo, user-agent and file routes.
package handler

import (
	"context"
	"strings"

	"github.com/flintlabs/flint/filesystem"
	"github.com/flintlabs/flint/http"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const name = "github.com/flintlabs/flint/handler"

var (
	tracer     = otel.Tracer(name)
	meter      = otel.Meter(name)
	logger     = otelslog.NewLogger(name)
	requestCnt metric.Int64Counter
)

func init() {
	var err error
	requestCnt, err = meter.Int64Counter("http.server.requests",
		metric.WithDescription("The number of handled requests by route and status"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}
}

// Config carries the endpoint settings. Directory is the base directory for
// the /files/ routes; when empty those routes answer 404.
type Config struct {
	Directory string
}

// Router dispatches requests on their raw target. The server builds one per
// connection, so construction stays cheap.
type Router struct {
	config Config
	fs     filesystem.Filesystem
}

func NewRouter(config Config) *Router {
	return &Router{
		config: config,
		fs:     filesystem.NewLocalFileSystem(),
	}
}

// Handle implements the server's handler contract.
func (router *Router) Handle(ctx context.Context, req *http.Request) *http.Response {
	spanCtx, span := tracer.Start(ctx, "handle request", trace.WithAttributes(
		attribute.String("http.method", string(req.Method)),
		attribute.String("http.target", req.Target),
	))
	defer span.End()

	var (
		route string
		res   *http.Response
	)
	switch {
	case req.Target == "/":
		route = "/"
		res = http.NewResponse(http.StatusOK)
	case strings.HasPrefix(req.Target, "/echo/"):
		route = "/echo/"
		res = handleEcho(spanCtx, req)
	case req.Target == "/user-agent":
		route = "/user-agent"
		res = handleUserAgent(req)
	case strings.HasPrefix(req.Target, "/files/"):
		route = "/files/"
		res = router.handleFile(spanCtx, req)
	default:
		route = "unmatched"
		res = http.NotFound()
	}

	routeAttr := attribute.String("http.route", route)
	statusAttr := attribute.Int("http.status", res.Status)
	span.SetAttributes(routeAttr, statusAttr)
	requestCnt.Add(spanCtx, 1, metric.WithAttributes(routeAttr, statusAttr))
	logger.DebugContext(spanCtx, "request handled",
		"method", req.Method, "target", req.Target, "status", res.Status)

	return res
}
