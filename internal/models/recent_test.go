package models

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func TestLoadRecentFilesMissing(t *testing.T) {
	r, err := LoadRecentFiles(t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if len(r.Paths) != 0 {
		t.Errorf("Expected empty list, got %v", r.Paths)
	}
}

func TestRecentFilesAddOrder(t *testing.T) {
	r := &RecentFiles{}
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.md")

	r.Add(a)
	r.Add(b)
	r.Add(a)

	if len(r.Paths) != 2 {
		t.Fatalf("Expected 2 entries, got %v", r.Paths)
	}
	if r.Paths[0] != a || r.Paths[1] != b {
		t.Errorf("Expected [a b], got %v", r.Paths)
	}
}

func TestRecentFilesLimit(t *testing.T) {
	r := &RecentFiles{}
	dir := t.TempDir()
	for i := 0; i < MaxRecentFiles+5; i++ {
		r.Add(filepath.Join(dir, fmt.Sprintf("%d.md", i)))
	}
	if len(r.Paths) != MaxRecentFiles {
		t.Errorf("Expected %d entries, got %d", MaxRecentFiles, len(r.Paths))
	}
	if r.Paths[0] != filepath.Join(dir, fmt.Sprintf("%d.md", MaxRecentFiles+4)) {
		t.Errorf("Expected newest first, got %s", r.Paths[0])
	}
}

func TestRecentFilesSaveAndLoad(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	kept := filepath.Join(dataDir, "kept.md")
	gone := filepath.Join(dataDir, "gone.md")
	touch(t, kept)
	touch(t, gone)

	r, err := LoadRecentFiles(configDir)
	if err != nil {
		t.Fatal(err)
	}
	r.Add(kept)
	r.Add(gone)
	if err := r.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadRecentFiles(configDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Paths) != 1 || loaded.Paths[0] != kept {
		t.Errorf("Expected only %s after prune, got %v", kept, loaded.Paths)
	}
}

func TestLoadRecentFilesCorrupt(t *testing.T) {
	configDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(configDir, "recent.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRecentFiles(configDir); err == nil {
		t.Error("Expected error for corrupt file")
	}
}
