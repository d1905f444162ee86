package compress

import (
	"bytes"
	"compress/gzip"
	"fmt"
)

// Gzip compresses data as a single gzip member at the default compression
// level.
func Gzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: gzip write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: gzip close: %w", err)
	}

	return buf.Bytes(), nil
}
