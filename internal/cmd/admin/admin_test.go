package admin

import (
	"context"
	"flag"
	"strings"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8082" {
		t.Fatalf("http_addr = %q, want %q", cfg.HTTPAddr, "localhost:8082")
	}
	if cfg.DefaultLocale != "ES" {
		t.Fatalf("default_locale = %q, want %q", cfg.DefaultLocale, "ES")
	}
	if cfg.LocalesDir != "" {
		t.Fatalf("locales_dir = %q, want empty", cfg.LocalesDir)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("shutdown_timeout = %s, want %s", cfg.ShutdownTimeout, 5*time.Second)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("FLEETDESK_ADMIN_HTTP_ADDR", "env-admin:9000")
	t.Setenv("FLEETDESK_ADMIN_DEFAULT_LOCALE", "EN")
	t.Setenv("FLEETDESK_ADMIN_LOCALES_DIR", "/etc/fleetdesk/locales")

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "flag-admin:9001", "-shutdown-timeout", "2s"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-admin:9001" {
		t.Fatalf("http_addr = %q, want %q", cfg.HTTPAddr, "flag-admin:9001")
	}
	if cfg.DefaultLocale != "EN" {
		t.Fatalf("default_locale = %q, want %q", cfg.DefaultLocale, "EN")
	}
	if cfg.LocalesDir != "/etc/fleetdesk/locales" {
		t.Fatalf("locales_dir = %q, want %q", cfg.LocalesDir, "/etc/fleetdesk/locales")
	}
	if cfg.ShutdownTimeout != 2*time.Second {
		t.Fatalf("shutdown_timeout = %s, want %s", cfg.ShutdownTimeout, 2*time.Second)
	}
}

func TestParseConfigRejectsUnsupportedLocale(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-locale", "FR"}); err == nil {
		t.Fatal("expected unsupported locale error")
	}
}

func TestRunFailsOnBadLocalesDir(t *testing.T) {
	cfg := Config{HTTPAddr: "127.0.0.1:0", DefaultLocale: "ES", LocalesDir: t.TempDir(), ShutdownTimeout: time.Second}
	err := Run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "init admin server") {
		t.Fatalf("err = %v, want init error", err)
	}
}

func TestRunRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := Config{HTTPAddr: "127.0.0.1:0", DefaultLocale: "pt-BR", ShutdownTimeout: time.Second}
	if err := Run(ctx, cfg); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
