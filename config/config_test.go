package config

import (
	"testing"
	"time"

	"github.com/flintlabs/flint/http"
	"github.com/flintlabs/flint/test"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	test.NoError(t, err)

	test.Equal(t, "127.0.0.1:4221", cfg.Addr)
	test.Equal(t, "", cfg.Directory)
	test.Equal(t, http.DefaultIdleTimeout, cfg.IdleTimeout)
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"-addr", "0.0.0.0:8080", "-directory", "/tmp/files", "-idle-timeout", "30s"})
	test.NoError(t, err)

	test.Equal(t, "0.0.0.0:8080", cfg.Addr)
	test.Equal(t, "/tmp/files", cfg.Directory)
	test.Equal(t, 30*time.Second, cfg.IdleTimeout)
}

func TestParseDirectoryShorthand(t *testing.T) {
	cfg, err := Parse([]string{"-d", "/srv/data"})
	test.NoError(t, err)

	test.Equal(t, "/srv/data", cfg.Directory)
}

func TestParseUnknownFlag(t *testing.T) {
	if _, err := Parse([]string{"-bogus"}); err == nil {
		t.Error("expected an error for an unknown flag")
	}
}

func TestParseMissingValue(t *testing.T) {
	if _, err := Parse([]string{"-addr"}); err == nil {
		t.Error("expected an error for a flag without a value")
	}
}
