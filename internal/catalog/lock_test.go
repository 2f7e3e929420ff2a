package catalog_test

import (
	"errors"
	"path/filepath"
	"testing"

	"krokindex/internal/catalog"
)

func TestAcquireLockIsExclusive(t *testing.T) {
	output := filepath.Join(t.TempDir(), "master_registry.json")

	first, err := catalog.AcquireLock(output)
	if err != nil {
		t.Fatalf("first AcquireLock: %v", err)
	}
	if first.Path() != output+".lock" {
		t.Fatalf("unexpected lock path %q", first.Path())
	}

	if _, err := catalog.AcquireLock(output); !errors.Is(err, catalog.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	again, err := catalog.AcquireLock(output)
	if err != nil {
		t.Fatalf("AcquireLock after release: %v", err)
	}
	_ = again.Release()
}

func TestReleaseNilLock(t *testing.T) {
	var lock *catalog.Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
