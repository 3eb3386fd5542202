// Package admin parses admin command flags and launches the admin console.
package admin

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/fleetdesk/internal/platform/cmd"
	platformi18n "github.com/louisbranch/fleetdesk/internal/platform/i18n"
	"github.com/louisbranch/fleetdesk/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr        string        `env:"FLEETDESK_ADMIN_HTTP_ADDR" envDefault:"localhost:8082"`
	DefaultLocale   string        `env:"FLEETDESK_ADMIN_DEFAULT_LOCALE" envDefault:"ES"`
	LocalesDir      string        `env:"FLEETDESK_ADMIN_LOCALES_DIR"`
	ShutdownTimeout time.Duration `env:"FLEETDESK_ADMIN_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DefaultLocale, "locale", cfg.DefaultLocale, "Initial active locale (ES, EN or PT)")
	fs.StringVar(&cfg.LocalesDir, "locales-dir", cfg.LocalesDir, "Directory of locale JSON catalogs (default: embedded)")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, ok := platformi18n.ParseLocale(cfg.DefaultLocale); !ok {
		return Config{}, fmt.Errorf("unsupported locale %q", cfg.DefaultLocale)
	}
	return cfg, nil
}

// Run starts the admin console.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceAdmin, entrypoint.RunOptions{ShutdownTimeout: cfg.ShutdownTimeout}, func(ctx context.Context) error {
		locale, ok := platformi18n.ParseLocale(cfg.DefaultLocale)
		if !ok {
			return fmt.Errorf("unsupported locale %q", cfg.DefaultLocale)
		}
		server, err := admin.NewServer(ctx, admin.Config{
			HTTPAddr:        cfg.HTTPAddr,
			DefaultLocale:   locale,
			LocalesDir:      cfg.LocalesDir,
			ShutdownTimeout: cfg.ShutdownTimeout,
		})
		if err != nil {
			return fmt.Errorf("init admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}
