package testsupport

import (
	"context"

	"krokindex/internal/services/github"
)

// StaticLister returns a fixed listing and records the last request.
type StaticLister struct {
	Entries []github.ContentEntry
	Err     error

	Calls      int
	Repository string
	Dir        string
}

// ListDirectory implements the remote pass listing interface.
func (l *StaticLister) ListDirectory(ctx context.Context, repository, dir string) ([]github.ContentEntry, error) {
	l.Calls++
	l.Repository = repository
	l.Dir = dir
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Entries, nil
}

// RemoteFile builds a file listing entry with a download URL derived from
// name.
func RemoteFile(name string) github.ContentEntry {
	return github.ContentEntry{
		Name:        name,
		Path:        "Merged/PDF/" + name,
		Type:        github.EntryTypeFile,
		DownloadURL: "https://raw.example/Merged/PDF/" + name,
	}
}
