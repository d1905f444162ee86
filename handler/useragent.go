package handler

import (
	"strconv"

	"github.com/flintlabs/flint/http"
)

// handleUserAgent reflects the request's User-Agent header, or "Unknown"
// when the client sent none.
func handleUserAgent(req *http.Request) *http.Response {
	agent, found := req.Headers.Get("User-Agent")
	if !found {
		agent = "Unknown"
	}

	res := http.NewResponse(http.StatusOK)
	res.Headers.Set("Content-Type", "text/plain")
	res.Headers.Set("Content-Length", strconv.Itoa(len(agent)))
	res.Body = []byte(agent)

	return res
}
