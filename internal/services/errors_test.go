package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"krokindex/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalService, "remote", "list", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"remote", "list", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestTransportMarker(t *testing.T) {
	if got := services.TransportMarker(fmt.Errorf("get: %w", context.DeadlineExceeded)); got != services.ErrTimeout {
		t.Fatalf("deadline: got %v", got)
	}
	if got := services.TransportMarker(timeoutErr{}); got != services.ErrTimeout {
		t.Fatalf("net timeout: got %v", got)
	}
	if got := services.TransportMarker(errors.New("connection refused")); got != services.ErrTransient {
		t.Fatalf("refused: got %v", got)
	}
}

func TestHintFollowsMarker(t *testing.T) {
	notFound := services.Wrap(services.ErrNotFound, "remote", "list", "404", nil)
	if hint := services.Hint(notFound); !strings.Contains(hint, "repository") {
		t.Fatalf("unexpected hint %q", hint)
	}
	if hint := services.Hint(errors.New("x")); hint != "check network connectivity" {
		t.Fatalf("unexpected default hint %q", hint)
	}
}
