package http

import "testing"

func TestHeadersCaseInsensitive(t *testing.T) {
	headers := make(Headers)
	headers.Set("Content-Type", "text/plain")

	for _, key := range []string{"content-type", "Content-Type", "CONTENT-TYPE", "cOnTeNt-TyPe"} {
		value, found := headers.Get(key)
		if !found {
			t.Errorf("expected %q to be found", key)
		}
		if value != "text/plain" {
			t.Errorf("expected text/plain, got %s", value)
		}
	}
}

func TestHeadersOverwrite(t *testing.T) {
	headers := make(Headers)
	headers.Set("Accept", "text/html")
	headers.Set("ACCEPT", "application/json")

	if len(headers) != 1 {
		t.Errorf("expected 1 header, got %d", len(headers))
	}

	value, found := headers.Get("accept")
	if !found {
		t.Error("accept header not found")
	}
	if value != "application/json" {
		t.Errorf("expected application/json, got %s", value)
	}
}

func TestHeadersHas(t *testing.T) {
	headers := make(Headers)
	headers.Set("Host", "localhost")

	if !headers.Has("HOST") {
		t.Error("expected HOST to be present")
	}
	if headers.Has("User-Agent") {
		t.Error("expected User-Agent to be absent")
	}
}
