package http

import "errors"

// ErrMalformedRequest wraps every request parse failure so callers can
// classify them with errors.Is. A cleanly closed stream is reported as a
// bare io.EOF instead, never as a parse error.
var ErrMalformedRequest = errors.New("http: malformed request")
