package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"krokindex/internal/services/github"
	"krokindex/internal/textutil"
)

// Lister lists a repository directory.
type Lister interface {
	ListDirectory(ctx context.Context, repository, dir string) ([]github.ContentEntry, error)
}

// CheckDirectoryAccess verifies that the directory exists and is readable.
// When writable is set it must also accept new files.
func CheckDirectoryAccess(name, path string, writable bool) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	mode := uint32(unix.R_OK | unix.X_OK)
	label := "read ok"
	if writable {
		mode |= unix.W_OK
		label = "read/write ok"
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, label)}
}

// CheckSourceRoot reports whether a local source tree exists and how many PDF
// files sit below it.
func CheckSourceRoot(name, path string) Result {
	result := CheckDirectoryAccess(name, path, false)
	result.Optional = true
	if !result.Passed {
		return result
	}
	count, err := countPDFs(path)
	if err != nil {
		return Result{Name: name, Optional: true, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	result.Detail = fmt.Sprintf("%s (%d pdf files)", path, count)
	return result
}

func countPDFs(root string) (int, error) {
	count := 0
	err := walkFiles(root, func(name string) {
		if textutil.HasPDFExt(name) {
			count++
		}
	})
	return count, err
}

// CheckRemote lists the remote directory once, bounded by timeout.
func CheckRemote(ctx context.Context, lister Lister, repository, dir string, timeout time.Duration) Result {
	const name = "Remote listing"
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	entries, err := lister.ListDirectory(checkCtx, repository, dir)
	if err != nil {
		return Result{Name: name, Detail: summarizeRemoteError(err)}
	}
	pdfs := 0
	for _, e := range entries {
		if e.IsFile() && textutil.HasPDFExt(e.Name) {
			pdfs++
		}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s/%s (%d pdf files)", repository, dir, pdfs)}
}

// summarizeRemoteError produces a human-readable summary for listing failures.
func summarizeRemoteError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "listing timed out (GitHub API unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "listing timed out (GitHub API unreachable)"
	}
	return err.Error()
}
