package httpmux

import (
	"io/fs"
	"net/http"

	"github.com/louisbranch/fleetdesk/internal/services/admin/routepath"
)

// MountStatic wires static asset serving into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, withStaticHeaders func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if withStaticHeaders != nil {
		staticHandler = withStaticHeaders(staticHandler)
	}
	rootMux.Handle(routepath.StaticPrefix, staticHandler)
}

// MountHealth answers liveness probes.
func MountHealth(rootMux *http.ServeMux) {
	if rootMux == nil {
		return
	}
	rootMux.HandleFunc(routepath.Healthz, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
}

// MountAdminRoutes mounts admin application routes under root path.
func MountAdminRoutes(rootMux *http.ServeMux, adminMux http.Handler) {
	if rootMux == nil || adminMux == nil {
		return
	}
	rootMux.Handle(routepath.Root, adminMux)
}
