package export_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"krokindex/internal/catalog"
	"krokindex/internal/export"
)

func sampleEntries() []catalog.Entry {
	return []catalog.Entry{
		{Name: "КРОК 1 (EN)", Source: catalog.SourceRemote, Path: "https://raw.example/a.pdf", ExamType: "Krok English", Level: "КРОК 1", Subject: catalog.RemoteSubject, Type: "booklet"},
		{Name: "ЄДКІ Бакалаври Хірургія - Хірургія 2023", Source: catalog.SourceRegular, Path: "Звичайні Базі/x.pdf", ExamType: "ЄДКІ", Level: "ЄДКІ Бакалаври", Subject: "Хірургія", Type: "base"},
		{Name: "КРОК 2 Терапія", Source: catalog.SourceOlder, Path: "Старше ЦТ/y.pdf", ExamType: "Крок Українська", Level: "КРОК 2", Subject: "Терапія", Type: "booklet"},
	}
}

func TestWriteSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")
	entries := sampleEntries()

	if err := export.WriteSQLite(ctx, path, "run-1", entries); err != nil {
		t.Fatalf("WriteSQLite: %v", err)
	}

	reader, err := export.OpenReader(ctx, path)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer reader.Close()

	got, err := reader.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(got))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}
	runID, err := reader.RunID(ctx)
	if err != nil {
		t.Fatalf("RunID: %v", err)
	}
	if runID != "run-1" {
		t.Fatalf("unexpected run id %q", runID)
	}
}

func TestWriteSQLiteReplacesPreviousExport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.db")

	if err := export.WriteSQLite(ctx, path, "run-1", sampleEntries()); err != nil {
		t.Fatalf("first WriteSQLite: %v", err)
	}
	if err := export.WriteSQLite(ctx, path, "run-2", sampleEntries()[:1]); err != nil {
		t.Fatalf("second WriteSQLite: %v", err)
	}

	reader, err := export.OpenReader(ctx, path)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer reader.Close()
	got, err := reader.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected replaced database with 1 entry, got %d", len(got))
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(files) != 1 {
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.Name())
		}
		t.Fatalf("expected only the database in %s, got %v", dir, names)
	}
}

func TestReaderSearchIgnoresCase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")
	if err := export.WriteSQLite(ctx, path, "run-1", sampleEntries()); err != nil {
		t.Fatalf("WriteSQLite: %v", err)
	}
	reader, err := export.OpenReader(ctx, path)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer reader.Close()

	got, err := reader.Search(ctx, "хірургія")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Subject != "Хірургія" {
		t.Fatalf("unexpected search result %+v", got)
	}

	all, err := reader.Search(ctx, "  ")
	if err != nil {
		t.Fatalf("Search blank: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected blank search to return everything, got %d", len(all))
	}
}

func TestWriteSQLiteEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")
	if err := export.WriteSQLite(ctx, path, "run-1", nil); err != nil {
		t.Fatalf("WriteSQLite: %v", err)
	}
	reader, err := export.OpenReader(ctx, path)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer reader.Close()
	got, err := reader.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestOpenReaderMissingFile(t *testing.T) {
	if _, err := export.OpenReader(context.Background(), filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Fatal("expected error for missing database")
	}
}
