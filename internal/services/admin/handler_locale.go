package admin

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/louisbranch/fleetdesk/internal/platform/errors"
	"github.com/louisbranch/fleetdesk/internal/platform/httpx"
	platformi18n "github.com/louisbranch/fleetdesk/internal/platform/i18n"
	admini18n "github.com/louisbranch/fleetdesk/internal/services/admin/i18n"
	"github.com/louisbranch/fleetdesk/internal/services/admin/routepath"
	"github.com/louisbranch/fleetdesk/internal/services/admin/templates"
)

// localeState is the JSON view of the active locale.
type localeState struct {
	Locale    platformi18n.Locale `json:"locale"`
	Supported []string            `json:"supported"`
	Suggested string              `json:"suggested,omitempty"`
}

func (h *Handler) handleLocale(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.handleLocaleGet(w, r)
	case http.MethodPost:
		h.handleLocaleSwitch(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleLocaleGet(w http.ResponseWriter, r *http.Request) {
	state := localeState{
		Locale:    h.resolver.Locale(),
		Supported: platformi18n.SupportedCodes(),
	}
	if suggested, ok := admini18n.SuggestedLocale(r); ok {
		state.Suggested = string(suggested)
	}
	if err := httpx.WriteJSON(w, http.StatusOK, state); err != nil {
		log.Printf("write locale state: %v", err)
	}
}

// handleLocaleSwitch is the only writer of the active locale.
func (h *Handler) handleLocaleSwitch(w http.ResponseWriter, r *http.Request) {
	if !isSameOrigin(r) {
		tr, _ := admini18n.RequestTranslator(r, h.resolver)
		http.Error(w, templates.T(tr, CrossOriginKey), http.StatusForbidden)
		return
	}
	locale, err := admini18n.FormLocale(r)
	if err != nil {
		tr, _ := admini18n.RequestTranslator(r, h.resolver)
		message := templates.T(tr, apperrors.LocalizationKey(err))
		http.Error(w, message, apperrors.HTTPStatus(err))
		return
	}
	h.resolver.SetLocale(locale)
	httpx.WriteRedirect(w, r, returnPath(r))
}

// returnPath derives a local redirect target from a same-host Referer,
// dropping any lang preview parameter so the new active locale shows.
func returnPath(r *http.Request) string {
	referer := strings.TrimSpace(r.Referer())
	if referer == "" {
		return routepath.Root
	}
	parsed, err := url.Parse(referer)
	if err != nil {
		return routepath.Root
	}
	if parsed.Host != "" && !strings.EqualFold(parsed.Host, r.Host) {
		return routepath.Root
	}
	// Browsers read "/\host" like "//host".
	if !strings.HasPrefix(parsed.Path, "/") || strings.HasPrefix(parsed.Path, "//") || strings.Contains(parsed.Path, "\\") {
		return routepath.Root
	}
	if strings.HasPrefix(parsed.Path, routepath.Locale) {
		return routepath.Root
	}
	query := parsed.Query()
	query.Del(admini18n.LangParam)
	target := parsed.Path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

// handleLocaleEvents streams active locale changes as server-sent events,
// starting with the current value.
func (h *Handler) handleLocaleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	updates, cancel := h.resolver.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-h.closing:
			return
		case locale, ok := <-updates:
			if !ok {
				return
			}
			payload, err := json.Marshal(localeState{Locale: locale, Supported: platformi18n.SupportedCodes()})
			if err != nil {
				log.Printf("encode locale event: %v", err)
				return
			}
			if _, err := fmt.Fprintf(w, "event: locale\ndata: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
