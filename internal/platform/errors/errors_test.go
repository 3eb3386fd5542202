package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: EK(KindInvalidInput, "", "bad locale"), want: http.StatusBadRequest},
		{name: "not found", err: EK(KindNotFound, "", "no route"), want: http.StatusNotFound},
		{name: "unavailable", err: EK(KindUnavailable, "", "page load"), want: http.StatusServiceUnavailable},
		{name: "unknown kind", err: EK(KindUnknown, "", "boom"), want: http.StatusInternalServerError},
		{name: "untyped", err: stderrors.New("plain"), want: http.StatusInternalServerError},
		{name: "wrapped typed", err: fmt.Errorf("navigate: %w", EK(KindNotFound, "", "no route")), want: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q, want empty", got)
	}
	if got := LocalizationKey(stderrors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
	err := fmt.Errorf("outer: %w", EK(KindUnavailable, "  errors.page_unavailable ", "load failed"))
	if got := LocalizationKey(err); got != "errors.page_unavailable" {
		t.Fatalf("LocalizationKey() = %q, want %q", got, "errors.page_unavailable")
	}
}

func TestWrapKeepsCauseInChain(t *testing.T) {
	t.Parallel()

	err := Wrap(KindUnavailable, "errors.page_unavailable", "load page admin-vehicles", context.DeadlineExceeded)
	if !stderrors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped cause in chain: %v", err)
	}
	if got, want := err.Error(), "load page admin-vehicles: context deadline exceeded"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if KindOf(err) != KindUnavailable {
		t.Fatalf("KindOf() = %q, want %q", KindOf(err), KindUnavailable)
	}
}

func TestErrorFallsBackToKind(t *testing.T) {
	t.Parallel()

	if got := (Error{Kind: KindNotFound}).Error(); got != "not_found" {
		t.Fatalf("Error() = %q, want %q", got, "not_found")
	}
}
