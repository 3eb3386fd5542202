package httpx

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mark := func(label string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called += label
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mark("1"), nil, mark("2"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestChainWithNilHandlerIsNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Chain(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRequireMethod(t *testing.T) {
	t.Parallel()

	h := RequireMethod(http.MethodGet, http.MethodHead)(noContent())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("HEAD status = %d, want %d", rr.Code, http.StatusNoContent)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
}

func TestRequestIDAddsHeaderWhenMissing(t *testing.T) {
	t.Parallel()

	h := RequestID("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get(RequestIDHeader), "admin-") {
			t.Errorf("request id = %q, want admin- prefix", r.Header.Get(RequestIDHeader))
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.HasPrefix(rr.Header().Get(RequestIDHeader), "admin-") {
		t.Fatalf("response request id = %q", rr.Header().Get(RequestIDHeader))
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	RequestID("")(noContent()).ServeHTTP(rr, req)
	if got := rr.Header().Get(RequestIDHeader); got != "req-42" {
		t.Fatalf("request id = %q, want %q", got, "req-42")
	}
}

func TestRecoverPanicLogsRequestContext(t *testing.T) {
	prevWriter := log.Writer()
	defer log.SetOutput(prevWriter)
	var buffer bytes.Buffer
	log.SetOutput(&buffer)

	h := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	logLine := buffer.String()
	for _, marker := range []string{"panic recovered", "path=/panic", "request_id=req-123"} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("panic log missing marker %q: %q", marker, logLine)
		}
	}
}

func TestInstrumentPassesThrough(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Instrument("admin")(noContent()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestWriteJSONSetsContentTypeAndBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteJSON(rr, http.StatusAccepted, map[string]string{"locale": "ES"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"locale":"ES"}` {
		t.Fatalf("body = %q", got)
	}
	if err := WriteJSON(nil, http.StatusOK, nil); err == nil {
		t.Fatal("expected nil writer error")
	}
}

func TestWriteRedirect(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteRedirect(rr, httptest.NewRequest(http.MethodPost, "/locale", nil), "/admin")
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/admin" {
		t.Fatalf("status=%d location=%q", rr.Code, rr.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodPost, "/locale", nil)
	req.Header.Set(htmxHeader, "true")
	rr = httptest.NewRecorder()
	WriteRedirect(rr, req, "/admin")
	if rr.Code != http.StatusOK || rr.Header().Get(htmxRedirectHeader) != "/admin" {
		t.Fatalf("status=%d hx-redirect=%q", rr.Code, rr.Header().Get(htmxRedirectHeader))
	}

	rr = httptest.NewRecorder()
	WriteRedirect(rr, nil, "/")
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/" {
		t.Fatalf("nil request status=%d location=%q", rr.Code, rr.Header().Get("Location"))
	}
}
