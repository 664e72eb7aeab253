package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/takuya-okamoto/zumenkan/internal/ingest"
)

func TestIngestRejectsUnsupportedExtension(t *testing.T) {
	c := ingest.NewController(nil, nil, nil, nil, nil, nil)

	for _, name := range []string{"notes.txt", "scan.jpg", "drawing", "archive.zip"} {
		_, err := c.Ingest(context.Background(), ingest.Request{
			Filename: name,
			Data:     strings.NewReader("irrelevant"),
		})
		if err == nil {
			t.Errorf("expected rejection for %q", name)
		}
	}
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	c := ingest.NewController(nil, nil, nil, nil, nil, nil)
	if _, _, err := c.IngestDirectory(context.Background(), "  ", "tester", false, true); err == nil {
		t.Error("expected error for blank root")
	}
}

func TestIngestDirectoryEmptyTreeMatchesNothing(t *testing.T) {
	c := ingest.NewController(nil, nil, nil, nil, nil, nil)
	root := t.TempDir()

	results, stats, err := c.IngestDirectory(context.Background(), root, "tester", false, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
	if stats.Matched != 0 || stats.Succeeded != 0 || stats.Failed != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestWatchRequiresRoot(t *testing.T) {
	if _, _, err := ingest.Watch(context.Background(), ingest.WatchConfig{}, nil); err == nil {
		t.Error("expected error without a root")
	}
}

func TestWatchInitialScanEmitsExistingFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.pdf", "b.tif", "skip.txt", ".hidden.pdf"} {
		if err := writeFile(t, filepath.Join(root, name)); err != nil {
			t.Fatal(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	files, _, err := ingest.Watch(ctx, ingest.WatchConfig{Root: root, InitialScan: true}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		seen[filepath.Base(<-files)] = true
	}
	if !seen["a.pdf"] || !seen["b.tif"] {
		t.Errorf("initial scan missed drawing files: %v", seen)
	}
}

func writeFile(t *testing.T, path string) error {
	t.Helper()
	return os.WriteFile(path, []byte("x"), 0o644)
}
