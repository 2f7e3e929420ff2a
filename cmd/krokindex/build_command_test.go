package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"krokindex/internal/catalog"
	"krokindex/internal/export"
)

func TestBuildWritesCatalog(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t,
		"Звичайні Базі/English/PDF Merged/Krok 1/Anatomy/Anatomy all booklets.pdf",
		"Старше ЦТ/ЄДКІ/Бакалаври/Хірургія/pdf/a.pdf",
	)

	out, _, err := runCLI(t, []string{"build"}, env.configPath)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	requireContains(t, out, "indexed 2 files")

	entries, err := catalog.ReadJSON(env.outputPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Source != catalog.SourceRegular || entries[1].Source != catalog.SourceOlder {
		t.Fatalf("unexpected source order: %+v", entries)
	}
	if _, err := os.Stat(catalog.LockPath(env.outputPath)); err != nil {
		t.Fatalf("expected lock file to exist: %v", err)
	}
}

func TestRootCommandDefaultsToBuild(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--offline"}, env.configPath)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "indexed 0 files")

	data, err := os.ReadFile(env.outputPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("expected empty array, got %q", data)
	}
}

func TestBuildOutputFlagAndSQLiteMirror(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mirror", "catalog.db")
	env := setupCLITestEnv(t, withSQLite(dbPath))
	env.seed(t, "Старше ЦТ/Крок 2/Терапія/pdf/a.pdf")
	custom := filepath.Join(t.TempDir(), "out", "catalog.json")

	if _, _, err := runCLI(t, []string{"build", "--output", custom}, env.configPath); err != nil {
		t.Fatalf("build: %v", err)
	}
	entries, err := catalog.ReadJSON(custom)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "КРОК 2 Терапія" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if _, err := os.Stat(env.outputPath); !os.IsNotExist(err) {
		t.Fatalf("expected default output to be untouched, stat err=%v", err)
	}

	reader, err := export.OpenReader(t.Context(), dbPath)
	if err != nil {
		t.Fatalf("open mirror: %v", err)
	}
	defer reader.Close()
	mirrored, err := reader.Entries(t.Context())
	if err != nil {
		t.Fatalf("read mirror: %v", err)
	}
	if len(mirrored) != 1 || mirrored[0] != entries[0] {
		t.Fatalf("mirror mismatch: %+v vs %+v", mirrored, entries)
	}
}

func TestBuildFailsWhileLocked(t *testing.T) {
	env := setupCLITestEnv(t)
	lock, err := catalog.AcquireLock(env.outputPath)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}
	defer lock.Release()

	_, _, err = runCLI(t, []string{"build"}, env.configPath)
	if !errors.Is(err, catalog.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if _, statErr := os.Stat(env.outputPath); !os.IsNotExist(statErr) {
		t.Fatalf("artifact should not be written while locked, stat err=%v", statErr)
	}
}

func TestBuildIncludesRemoteListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"KROK 1 (EN).pdf","type":"file","download_url":"https://raw.example/k1.pdf"}]`))
	}))
	defer server.Close()

	env := setupCLITestEnv(t, withRemoteURL(server.URL))
	out, _, err := runCLI(t, []string{"build"}, env.configPath)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	requireContains(t, out, "indexed 1 files")

	entries, err := catalog.ReadJSON(env.outputPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if len(entries) != 1 || entries[0].ExamType != "Krok English" || entries[0].Level != "КРОК 1" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestBuildReportsUnavailableRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	env := setupCLITestEnv(t, withRemoteURL(server.URL))
	out, stderr, err := runCLI(t, []string{"build"}, env.configPath)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	requireContains(t, out, "Remote listing unavailable")
	requireContains(t, stderr, "remote listing failed")
}
