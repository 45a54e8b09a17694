package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTextMissingFile(t *testing.T) {
	text, err := LoadText(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestLoadTextEmptyPath(t *testing.T) {
	text, err := LoadText("")
	if err != nil || text != "" {
		t.Errorf("empty path: got (%q, %v), want (\"\", nil)", text, err)
	}
}

func TestLoadTextPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")
	if err := os.WriteFile(path, []byte("A short biography."), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	text, err := LoadText(path)
	if err != nil {
		t.Fatalf("LoadText failed: %v", err)
	}
	if text != "A short biography." {
		t.Errorf("unexpected text: %q", text)
	}
}
