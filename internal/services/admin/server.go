package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	platformi18n "github.com/louisbranch/fleetdesk/internal/platform/i18n"
	"github.com/louisbranch/fleetdesk/internal/platform/timeouts"
	"github.com/louisbranch/fleetdesk/internal/services/admin/pages"
)

// Config defines the inputs for the admin console process.
type Config struct {
	HTTPAddr string
	// DefaultLocale seeds the active locale. Empty means platformi18n.Default().
	DefaultLocale platformi18n.Locale
	// LocalesDir loads dictionaries from disk instead of the embedded set.
	LocalesDir      string
	ShutdownTimeout time.Duration
}

// Server hosts the admin console.
type Server struct {
	httpAddr        string
	httpServer      *http.Server
	handler         *Handler
	resolver        *platformi18n.Resolver
	shutdownTimeout time.Duration

	stopWatch func()
	watchDone chan struct{}
	closeOnce sync.Once
}

// NewServer loads dictionaries and page units and prepares the HTTP server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	locale := config.DefaultLocale
	if locale == "" {
		locale = platformi18n.Default()
	}
	if !locale.IsSupported() {
		return nil, fmt.Errorf("default locale %q is not supported", locale)
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = timeouts.Shutdown
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bundle, err := platformi18n.LoadBundle(config.LocalesDir)
	if err != nil {
		return nil, fmt.Errorf("load locale catalogs: %w", err)
	}
	for gapLocale, keys := range platformi18n.CatalogGaps(bundle) {
		log.Printf("locale catalog %s is missing %d keys: %s", gapLocale, len(keys), strings.Join(keys, ", "))
	}
	resolver := platformi18n.NewResolver(bundle, platformi18n.NewActiveLocale(locale))

	router, err := pages.NewRouter(nil)
	if err != nil {
		return nil, fmt.Errorf("load page units: %w", err)
	}

	handler := newHandler(resolver, router)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler.routes(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	httpServer.RegisterOnShutdown(handler.closeStreams)

	server := &Server{
		httpAddr:        httpAddr,
		httpServer:      httpServer,
		handler:         handler,
		resolver:        resolver,
		shutdownTimeout: config.ShutdownTimeout,
	}
	server.watchLocale()
	return server, nil
}

// watchLocale logs every active locale change.
func (s *Server) watchLocale() {
	updates, cancel := s.resolver.Subscribe()
	s.stopWatch = cancel
	s.watchDone = make(chan struct{})
	go func() {
		defer close(s.watchDone)
		for locale := range updates {
			log.Printf("active locale %s", locale)
		}
	}()
}

// Resolver exposes the server's translation resolver.
func (s *Server) Resolver() *platformi18n.Resolver {
	return s.resolver
}

// ListenAndServe serves HTTP until ctx ends, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		s.handler.closeStreams()
		if s.stopWatch != nil {
			s.stopWatch()
			<-s.watchDone
		}
	})
}
