package http

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Request is a single parsed HTTP request. It is not mutated after
// ReadRequest constructs it; Body holds exactly Content-Length bytes, or
// none when the header is absent.
type Request struct {
	Method  Method
	Target  string
	Proto   string
	Headers Headers
	Body    []byte
}

// ReadRequest parses one request from r. It returns io.EOF when the peer
// closed the stream before sending another request line, which is how a
// persistent connection normally ends. Every malformed input wraps
// ErrMalformedRequest; other failures are plain read errors.
func ReadRequest(r *bufio.Reader) (*Request, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("http: read request line: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, io.EOF
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: request line %q: missing %s", ErrMalformedRequest, line, missingPart(len(fields)))
	}

	method, err := ParseMethod(fields[0])
	if err != nil {
		return nil, err
	}

	headers, err := readHeaders(r)
	if err != nil {
		return nil, err
	}

	body, err := readBody(r, headers)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method:  method,
		Target:  fields[1],
		Proto:   fields[2],
		Headers: headers,
		Body:    body,
	}, nil
}

func missingPart(fields int) string {
	switch fields {
	case 0:
		return "method"
	case 1:
		return "target"
	default:
		return "version"
	}
}

// readHeaders consumes header lines up to and including the blank line.
// Hitting end of stream ends the header block the same way a blank line
// does.
func readHeaders(r *bufio.Reader) (Headers, error) {
	headers := make(Headers)

	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("http: read header line: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: header line %q: missing colon", ErrMalformedRequest, line)
		}
		headers.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return headers, nil
}

// readBody reads exactly Content-Length bytes, or nothing when the header
// is absent.
func readBody(r *bufio.Reader, headers Headers) ([]byte, error) {
	value, found := headers.Get("Content-Length")
	if !found {
		return nil, nil
	}

	length, err := strconv.Atoi(value)
	if err != nil || length < 0 {
		return nil, fmt.Errorf("%w: invalid content-length %q", ErrMalformedRequest, value)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: body truncated before %d bytes", ErrMalformedRequest, length)
		}
		return nil, fmt.Errorf("http: read body: %w", err)
	}

	return body, nil
}
