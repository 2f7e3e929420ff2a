package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrExternalService = errors.New("external service error")
	ErrValidation      = errors.New("validation error")
	ErrConfiguration   = errors.New("configuration error")
	ErrNotFound        = errors.New("not found")
	ErrTimeout         = errors.New("timeout")
	ErrTransient       = errors.New("transient failure")
)

// Wrap builds an error message that includes the source and operation while
// tagging it with the provided marker for later classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, source, operation, message string, err error) error {
	detail := buildDetail(source, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// TransportMarker picks the marker for an error returned by a network call:
// deadline and timeout failures map to ErrTimeout, everything else to
// ErrTransient.
func TransportMarker(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return ErrTransient
}

// Hint returns a short operator-facing suggestion for a marked error.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration):
		return "check the configuration file"
	case errors.Is(err, ErrNotFound):
		return "verify the repository and path exist"
	case errors.Is(err, ErrTimeout):
		return "retry later or raise remote.timeout_seconds"
	case errors.Is(err, ErrValidation):
		return "inspect the response payload"
	default:
		return "check network connectivity"
	}
}

func buildDetail(source, operation, message string) string {
	parts := make([]string, 0, 3)
	if source = strings.TrimSpace(source); source != "" {
		parts = append(parts, source)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
