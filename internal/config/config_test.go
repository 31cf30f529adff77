package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ALUGA_API_URL", "")
	t.Setenv("ALUGA_HTTP_TIMEOUT_MS", "")
	t.Setenv("ALUGA_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	cfg := Load()
	if cfg.APIURL != "http://localhost:3000" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.ConfigDir != filepath.Join("/tmp/xdg", "alugaaqui") {
		t.Fatalf("ConfigDir = %q", cfg.ConfigDir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ALUGA_API_URL", "https://api.alugaaqui.com")
	t.Setenv("ALUGA_HTTP_TIMEOUT_MS", "1500")
	t.Setenv("ALUGA_CONFIG_DIR", "/var/lib/aluga")

	cfg := Load()
	if cfg.APIURL != "https://api.alugaaqui.com" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 1500*time.Millisecond {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.ConfigDir != "/var/lib/aluga" {
		t.Fatalf("ConfigDir = %q", cfg.ConfigDir)
	}
}

func TestGetEnvIntBadValue(t *testing.T) {
	t.Setenv("ALUGA_HTTP_TIMEOUT_MS", "not-a-number")

	if got := getEnvInt("ALUGA_HTTP_TIMEOUT_MS", 30000); got != 30000 {
		t.Fatalf("got %d, want fallback", got)
	}
}
