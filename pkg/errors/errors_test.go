package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestErrorTypes verifies all error types are created correctly and implement
// the error interface.
func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "configuration without cause",
			err:  NewConfiguration("duplicate probe names", nil),
			want: "duplicate probe names",
		},
		{
			name: "configuration with cause",
			err:  NewConfiguration("invalid catalog", errors.New("db, DB")),
			want: "invalid catalog: db, DB",
		},
		{
			name: "temporary without cause",
			err:  NewTemporary("cache unreachable", nil),
			want: "cache unreachable",
		},
		{
			name: "temporary with cause",
			err:  NewTemporary("cache unreachable", errors.New("dial tcp: refused")),
			want: "cache unreachable: dial tcp: refused",
		},
		{
			name: "not found",
			err:  NewNotFound("probe", "disk"),
			want: `probe "disk" not found`,
		},
		{
			name: "not found with cause",
			err:  NewNotFoundWithCause("cache key", "probe:db", errors.New("expired")),
			want: `cache key "probe:db" not found: expired`,
		},
		{
			name: "timeout",
			err:  NewTimeout("probe timed out", nil),
			want: "probe timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")

	tests := []struct {
		name string
		err  error
	}{
		{"configuration", NewConfiguration("cfg", cause)},
		{"temporary", NewTemporary("tmp", cause)},
		{"not found", NewNotFoundWithCause("probe", "db", cause)},
		{"timeout", NewTimeout("slow", cause)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, cause) {
				t.Errorf("errors.Is(%v, cause) = false, want true", tt.err)
			}
		})
	}
}

func TestTypeChecking(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"configuration matches", NewConfiguration("x", nil), IsConfiguration, true},
		{"configuration mismatch", NewTemporary("x", nil), IsConfiguration, false},
		{"temporary matches", NewTemporary("x", nil), IsTemporary, true},
		{"not found matches", NewNotFound("probe", "db"), IsNotFound, true},
		{"timeout matches", NewTimeout("x", nil), IsTimeout, true},
		{"timeout mismatch", NewNotFound("probe", "db"), IsTimeout, false},
		{"wrapped configuration", fmt.Errorf("outer: %w", NewConfiguration("x", nil)), IsConfiguration, true},
		{"plain error", errors.New("plain"), IsTemporary, false},
		{"nil error", nil, IsConfiguration, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestNotFoundAccessors(t *testing.T) {
	err := NewNotFound("cache key", "probe:db")

	var nfe *NotFoundError
	if !As(err, &nfe) {
		t.Fatal("expected NotFoundError")
	}
	if nfe.Resource() != "cache key" {
		t.Errorf("Resource() = %q, want %q", nfe.Resource(), "cache key")
	}
	if nfe.ID() != "probe:db" {
		t.Errorf("ID() = %q, want %q", nfe.ID(), "probe:db")
	}
}

func TestWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"preserves configuration", NewConfiguration("cfg", nil), IsConfiguration},
		{"preserves temporary", NewTemporary("tmp", nil), IsTemporary},
		{"preserves not found", NewNotFound("probe", "db"), IsNotFound},
		{"preserves timeout", NewTimeout("slow", nil), IsTimeout},
		{"unclassified becomes temporary", errors.New("plain"), IsTemporary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, "context")
			if !tt.check(wrapped) {
				t.Errorf("Wrap() lost the error type: %v", wrapped)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("Wrap() lost the error chain: %v", wrapped)
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(NewTimeout("slow", nil), "probe %q", "db")
	if !IsTimeout(err) {
		t.Errorf("Wrapf() lost the timeout type: %v", err)
	}
	if !strings.Contains(err.Error(), `probe "db"`) {
		t.Errorf("Wrapf() message = %q, want formatted context", err.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "context"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := Wrapf(nil, "context %d", 1); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

// TestHTTPStatusCode verifies HTTP status code mapping.
func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, http.StatusOK},
		{"not found", NewNotFound("probe", "db"), http.StatusNotFound},
		{"configuration", NewConfiguration("dup", nil), http.StatusInternalServerError},
		{"timeout", NewTimeout("slow", nil), http.StatusGatewayTimeout},
		{"temporary", NewTemporary("down", nil), http.StatusServiceUnavailable},
		{"unknown", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusCode(tt.err); got != tt.want {
				t.Errorf("HTTPStatusCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteHTTPError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteHTTPError(rec, NewTemporary("cache unreachable", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rec.Body.String(), "cache unreachable") {
		t.Errorf("body = %q, want error message", rec.Body.String())
	}

	// nil error writes nothing
	rec = httptest.NewRecorder()
	WriteHTTPError(rec, nil)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}
