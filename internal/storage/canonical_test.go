package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/takuya-okamoto/zumenkan/internal/storage"
)

func TestCanonicalName(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	got := storage.CanonicalName(at, "PartDrawing", "NAXT3722D", "山田太郎")
	want := "20260314092653_PartDrawing_NAXT3722D_山田太郎.pdf"
	if got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}

func TestCanonicalNamePlaceholders(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	got := storage.CanonicalName(at, "", "", "")
	want := "20260314092653_unknown_unknown_unknown.pdf"
	if got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}

func TestSanitizeComponent(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"NAXT3722D", "NAXT3722D"},
		{"A/B\\C:D", "A_B_C_D"},
		{"part name", "part_name"},
		{"全角　空白", "全角_空白"},
		{"a  b   c", "a_b_c"},
		{"__trimmed__", "trimmed"},
		{"...", "unknown"},
		{"   ", "unknown"},
		{"rev?<>|2", "rev_2"},
	}
	for _, tc := range cases {
		if got := storage.SanitizeComponent(tc.in); got != tc.want {
			t.Errorf("SanitizeComponent(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeComponentNeverEmitsIllegalRunes(t *testing.T) {
	for _, in := range []string{`a/b:c*d?e"f<g>h|i`, "tab\tand\nnewline", "　"} {
		out := storage.SanitizeComponent(in)
		if strings.ContainsAny(out, `/\:*?"<>| `) {
			t.Errorf("SanitizeComponent(%q) = %q still contains illegal characters", in, out)
		}
		if out == "" {
			t.Errorf("SanitizeComponent(%q) returned empty string", in)
		}
	}
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestRenameCanonicalMovesArtifactAndThumbnail(t *testing.T) {
	s := newTestStore(t)

	artifact := s.NewDrawingPath()
	if err := os.WriteFile(artifact, []byte("pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveThumbnail(artifact, []byte("png")); err != nil {
		t.Fatal(err)
	}

	newPath, renamed, err := s.RenameCanonical(artifact, "20260314092653_PartDrawing_NAXT3722D_unknown.pdf")
	if err != nil {
		t.Fatalf("RenameCanonical: %v", err)
	}
	if !renamed {
		t.Fatal("expected rename to happen")
	}
	if filepath.Base(newPath) != "20260314092653_PartDrawing_NAXT3722D_unknown.pdf" {
		t.Errorf("unexpected new path %q", newPath)
	}
	if _, err := os.Stat(newPath); err != nil {
		t.Errorf("artifact missing at new path: %v", err)
	}
	if _, err := os.Stat(artifact); !os.IsNotExist(err) {
		t.Errorf("artifact still present at old path")
	}
	if _, err := os.Stat(s.ThumbnailFor(newPath)); err != nil {
		t.Errorf("thumbnail did not follow the artifact: %v", err)
	}
}

func TestRenameCanonicalKeepsNameWhenTargetExists(t *testing.T) {
	s := newTestStore(t)

	artifact := s.NewDrawingPath()
	if err := os.WriteFile(artifact, []byte("pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	taken := filepath.Join(s.DrawingsDir(), "taken.pdf")
	if err := os.WriteFile(taken, []byte("other"), 0o644); err != nil {
		t.Fatal(err)
	}

	newPath, renamed, err := s.RenameCanonical(artifact, "taken.pdf")
	if err != nil {
		t.Fatalf("RenameCanonical: %v", err)
	}
	if renamed {
		t.Error("must not overwrite an existing artifact")
	}
	if newPath != artifact {
		t.Errorf("expected current path back, got %q", newPath)
	}
}

func TestReplaceAtomic(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(s.DrawingsDir(), "a.pdf")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := s.ReplaceAtomic(path, func(tmp string) error {
		return os.WriteFile(tmp, []byte("new"), 0o644)
	})
	if err != nil {
		t.Fatalf("ReplaceAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("expected replaced content, got %q", data)
	}

	entries, err := os.ReadDir(s.DrawingsDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestReplaceAtomicKeepsOriginalOnWriteFailure(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(s.DrawingsDir(), "a.pdf")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := s.ReplaceAtomic(path, func(tmp string) error {
		return os.ErrPermission
	})
	if err == nil {
		t.Fatal("expected error")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "old" {
		t.Errorf("original content lost: %q", data)
	}
}
