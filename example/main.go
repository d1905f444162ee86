// A minimal embedding of the server core: one custom handler, no router
// and no telemetry pipeline.
package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"

	"github.com/flintlabs/flint/http"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	factory := func() http.Handler {
		return http.HandlerFunc(func(ctx context.Context, req *http.Request) *http.Response {
			roll := 1 + rand.Intn(6)

			body := []byte(strconv.Itoa(roll) + "\n")
			res := http.NewResponse(http.StatusOK)
			res.Headers.Set("Content-Type", "text/plain")
			res.Headers.Set("Content-Length", strconv.Itoa(len(body)))
			res.Body = body
			return res
		})
	}

	server, err := http.Start(ctx, "0.0.0.0:8080", factory)
	if err != nil {
		return err
	}

	log.Printf("Listening and serving on: %s", server.Addr())

	select {
	case <-server.Done():
	case <-ctx.Done():
		stop()
	}

	return server.Shutdown(context.Background())
}
