package compress

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/flintlabs/flint/test"
)

func TestGzipMagicBytes(t *testing.T) {
	encoded, err := Gzip([]byte("abc"))
	test.NoError(t, err)

	if len(encoded) < 2 {
		t.Fatalf("encoded frame too short: %d bytes", len(encoded))
	}
	if encoded[0] != 0x1f || encoded[1] != 0x8b {
		t.Errorf("expected gzip magic bytes, got % x", encoded[:2])
	}
}

func TestGzipRoundTrip(t *testing.T) {
	original := []byte("The quick brown fox jumps over the lazy dog")

	encoded, err := Gzip(original)
	if err != nil {
		t.Fatal(err)
	}

	r, err := gzip.NewReader(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("gzip.NewReader failed: %v", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	test.NoError(t, r.Close())

	if !bytes.Equal(decoded, original) {
		t.Errorf("expected %q, got %q", original, decoded)
	}
}

func TestGzipEmptyInput(t *testing.T) {
	encoded, err := Gzip(nil)
	if err != nil {
		t.Fatal(err)
	}

	r, err := gzip.NewReader(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("empty input should still be a valid gzip frame: %v", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	test.Equal(t, 0, len(decoded))
}
