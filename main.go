package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/flintlabs/flint/config"
	"github.com/flintlabs/flint/handler"
	"github.com/flintlabs/flint/http"
	"github.com/flintlabs/flint/telemetry"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const (
	serviceName     = "flint"
	serviceVersion  = "0.1.0"
	shutdownTimeout = 5 * time.Second
)

var logger = otelslog.NewLogger(serviceName)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) (err error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, serviceName, serviceVersion)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, shutdownTelemetry(context.Background()))
	}()

	factory := func() http.Handler {
		return handler.NewRouter(handler.Config{Directory: cfg.Directory})
	}

	server, err := http.Start(ctx, cfg.Addr, factory,
		http.WithLogger(logger),
		http.WithIdleTimeout(cfg.IdleTimeout),
	)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "listening and serving", "addr", server.Addr().String())

	select {
	case <-server.Done():
		// Accept loop died on its own; fall through to Shutdown for the
		// listener cleanup.
	case <-ctx.Done():
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
