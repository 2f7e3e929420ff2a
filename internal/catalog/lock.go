package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock guards an artifact path against concurrent builds.
type Lock struct {
	path string
	fl   *flock.Flock
}

// LockPath returns the lock file used for an artifact.
func LockPath(outputPath string) string {
	return outputPath + ".lock"
}

// AcquireLock takes a non-blocking lock next to outputPath. It fails with
// ErrLocked when another build holds it.
func AcquireLock(outputPath string) (*Lock, error) {
	path := LockPath(outputPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s is held", ErrLocked, path)
	}
	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}
