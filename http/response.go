package http

import (
	"bytes"
	"fmt"
	"slices"
)

const protoHTTP11 = "HTTP/1.1"

// Response is what a Handler produces for one request. Headers written
// through Set come out lowercased; Bytes emits them in sorted order so the
// serialization is deterministic.
type Response struct {
	Proto   string
	Status  int
	Reason  string
	Headers Headers
	Body    []byte
}

// NewResponse returns an HTTP/1.1 response with the given status, its
// standard reason phrase, no headers and no body.
func NewResponse(status int) *Response {
	return &Response{
		Proto:   protoHTTP11,
		Status:  status,
		Reason:  StatusText(status),
		Headers: make(Headers),
	}
}

// NotFound returns an empty 404 response.
func NotFound() *Response {
	return NewResponse(StatusNotFound)
}

// Bytes serializes the response into wire format: status line, headers in
// sorted order, a blank line, then the body verbatim.
func (res *Response) Bytes() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s %d %s\r\n", res.Proto, res.Status, res.Reason)

	keys := make([]string, 0, len(res.Headers))
	for key := range res.Headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Fprintf(&buf, "%s: %s\r\n", key, res.Headers[key])
	}

	buf.WriteString("\r\n")
	buf.Write(res.Body)

	return buf.Bytes()
}
