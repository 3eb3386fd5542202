package admin

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/louisbranch/fleetdesk/internal/platform/httpx"
	platformi18n "github.com/louisbranch/fleetdesk/internal/platform/i18n"
	"github.com/louisbranch/fleetdesk/internal/platform/timeouts"
	admini18n "github.com/louisbranch/fleetdesk/internal/services/admin/i18n"
	"github.com/louisbranch/fleetdesk/internal/services/admin/routepath"
	"github.com/louisbranch/fleetdesk/internal/services/admin/routes"
	"github.com/louisbranch/fleetdesk/internal/services/admin/templates"
	"github.com/louisbranch/fleetdesk/internal/services/admin/transport/httpmux"
	"github.com/louisbranch/fleetdesk/internal/services/shared/htmx"
	"github.com/louisbranch/fleetdesk/internal/services/shared/route"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:embed static
var staticAssets embed.FS

// Handler routes admin console requests.
type Handler struct {
	resolver  *platformi18n.Resolver
	router    *routes.Router
	keepAlive time.Duration

	closing   chan struct{}
	closeOnce sync.Once
}

// NewHandler builds the admin HTTP handler.
func NewHandler(resolver *platformi18n.Resolver, router *routes.Router) http.Handler {
	return newHandler(resolver, router).routes()
}

func newHandler(resolver *platformi18n.Resolver, router *routes.Router) *Handler {
	return &Handler{
		resolver:  resolver,
		router:    router,
		keepAlive: timeouts.EventStreamKeepAlive,
		closing:   make(chan struct{}),
	}
}

// closeStreams ends open event streams so shutdown can drain connections.
func (h *Handler) closeStreams() {
	h.closeOnce.Do(func() {
		close(h.closing)
	})
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	rootMux := http.NewServeMux()
	staticFS, err := fs.Sub(staticAssets, "static")
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
	} else {
		httpmux.MountStatic(rootMux, staticFS, withStaticHeaders)
	}
	httpmux.MountHealth(rootMux)

	adminMux := http.NewServeMux()
	adminMux.Handle(routepath.Locale, http.HandlerFunc(h.handleLocale))
	adminMux.Handle(routepath.LocaleEvents, httpx.Chain(http.HandlerFunc(h.handleLocaleEvents), httpx.RequireMethod(http.MethodGet)))
	adminMux.Handle(routepath.Root, httpx.Chain(http.HandlerFunc(h.handlePage), httpx.RequireMethod(http.MethodGet, http.MethodHead)))
	httpmux.MountAdminRoutes(rootMux, adminMux)

	return httpx.Chain(rootMux,
		httpx.Instrument("admin"),
		httpx.RequestID("admin"),
		httpx.RecoverPanic(),
	)
}

func withStaticHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		next.ServeHTTP(w, r)
	})
}

// handlePage navigates to the requested path and renders the resolved unit.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	if route.RedirectTrailingSlash(w, r) {
		return
	}
	ctx := r.Context()
	nav := navigationFromRequest(r)
	res, err := h.router.Navigate(ctx, nav)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Printf("navigate %s request_id=%s: %v", nav.Path, r.Header.Get(httpx.RequestIDHeader), err)
	}

	tr, preview := admini18n.RequestTranslator(r, h.resolver)
	page := templates.PageContext{
		Lang:         tr.Locale(),
		Active:       h.resolver.Locale(),
		Preview:      preview,
		Loc:          tr,
		CurrentPath:  route.CanonicalPath(r.URL.Path),
		CurrentQuery: r.URL.RawQuery,
		RouteName:    res.Entry.Name,
		TitleKey:     res.Unit.TitleKey(),
		Scroll:       res.Scroll,
		RequestID:    r.Header.Get(httpx.RequestIDHeader),
	}
	annotateSpan(ctx, res)

	if scroll, err := json.Marshal(res.Scroll); err == nil {
		w.Header().Set(HeaderScrollTarget, string(scroll))
	}
	admini18n.SetContentLanguage(w, page.Lang)
	htmx.RenderPage(w, r, templates.Layout(page, res.Unit.Component(tr)), res.Status, htmx.TitleTag(templates.PageTitle(page)))
}

func annotateSpan(ctx context.Context, res routes.Resolution) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("fleetdesk.route", res.Entry.Name),
		attribute.String("fleetdesk.page", res.Unit.Name()),
		attribute.String("fleetdesk.scroll", string(res.Scroll.Kind)),
	)
}
