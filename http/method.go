package http

import (
	"fmt"
	"strings"
)

// Method is one of the request methods the server understands.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// ParseMethod normalizes a request-line method token to upper-case.
// Anything but GET, POST, PUT or DELETE is a malformed request.
func ParseMethod(token string) (Method, error) {
	switch method := Method(strings.ToUpper(token)); method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return method, nil
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrMalformedRequest, token)
	}
}
