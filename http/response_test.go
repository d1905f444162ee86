package http

import "testing"

func TestResponseBytes(t *testing.T) {
	res := NewResponse(StatusOK)
	res.Headers.Set("Content-Type", "text/plain")
	res.Headers.Set("Content-Length", "5")
	res.Body = []byte("Hello")

	expected := "HTTP/1.1 200 OK\r\ncontent-length: 5\r\ncontent-type: text/plain\r\n\r\nHello"
	if got := string(res.Bytes()); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestResponseBytesNoHeaders(t *testing.T) {
	res := NewResponse(StatusOK)

	expected := "HTTP/1.1 200 OK\r\n\r\n"
	if got := string(res.Bytes()); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestResponseBytesSortedHeaders(t *testing.T) {
	res := NewResponse(StatusCreated)
	res.Headers.Set("Zulu", "3")
	res.Headers.Set("alpha", "1")
	res.Headers.Set("Mike", "2")

	expected := "HTTP/1.1 201 Created\r\nalpha: 1\r\nmike: 2\r\nzulu: 3\r\n\r\n"
	if got := string(res.Bytes()); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestNotFound(t *testing.T) {
	res := NotFound()

	if res.Status != StatusNotFound {
		t.Errorf("expected %d, got %d", StatusNotFound, res.Status)
	}
	if res.Reason != "Not Found" {
		t.Errorf("expected Not Found, got %s", res.Reason)
	}

	expected := "HTTP/1.1 404 Not Found\r\n\r\n"
	if got := string(res.Bytes()); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{StatusOK, "OK"},
		{StatusCreated, "Created"},
		{StatusNotFound, "Not Found"},
		{418, "Unknown Status Code"},
	}

	for _, tt := range tests {
		if got := StatusText(tt.status); got != tt.expected {
			t.Errorf("StatusText(%d): expected %s, got %s", tt.status, tt.expected, got)
		}
	}
}

func BenchmarkResponseBytes(b *testing.B) {
	res := NewResponse(StatusOK)
	res.Headers.Set("Content-Type", "text/plain")
	res.Headers.Set("Content-Length", "11")
	res.Body = []byte("Hello World")

	for b.Loop() {
		if len(res.Bytes()) == 0 {
			b.Error("empty serialization")
		}
	}
}
