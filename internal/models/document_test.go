package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc.HasPath() {
		t.Error("Expected new document to have no path")
	}
	if doc.Name() != UntitledName {
		t.Errorf("Expected name %q, got %q", UntitledName, doc.Name())
	}
	if doc.IsModified("") {
		t.Error("Expected empty content to be unmodified")
	}
	if !doc.IsModified("x") {
		t.Error("Expected content to be modified")
	}
	if err := doc.Save("x"); err == nil {
		t.Error("Expected Save without a path to fail")
	}
}

func TestDocumentSaveAndOpen(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "notes", "todo.md")

	doc := NewDocument()
	if err := doc.SaveAs(path, "# Todo\n"); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	if doc.Path != path || doc.Name() != "todo.md" {
		t.Errorf("Expected document bound to %s, got %s", path, doc.Path)
	}
	if doc.IsModified("# Todo\n") {
		t.Error("Expected saved content to be unmodified")
	}

	if err := doc.Save("# Todo\n- one\n"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reopened, content, err := OpenDocument(path)
	if err != nil {
		t.Fatalf("OpenDocument failed: %v", err)
	}
	if content != "# Todo\n- one\n" {
		t.Errorf("Expected saved content, got %q", content)
	}
	if reopened.IsModified(content) {
		t.Error("Expected freshly opened document to be unmodified")
	}
}

func TestOpenDocumentMissing(t *testing.T) {
	_, _, err := OpenDocument(filepath.Join(t.TempDir(), "missing.md"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed to load file") {
		t.Errorf("Expected wrapped error, got %v", err)
	}
}

func TestHasAllowedExtension(t *testing.T) {
	tests := []struct {
		path     string
		filters  []string
		expected bool
	}{
		{"a.md", DefaultFileFilters, true},
		{"A.MARKDOWN", DefaultFileFilters, true},
		{"notes.txt", DefaultFileFilters, true},
		{"main.go", DefaultFileFilters, false},
		{"README", DefaultFileFilters, false},
		{"main.go", nil, true},
		{"doc.md", []string{".md"}, true},
	}
	for _, tt := range tests {
		if got := HasAllowedExtension(tt.path, tt.filters); got != tt.expected {
			t.Errorf("HasAllowedExtension(%q, %v) = %v, expected %v", tt.path, tt.filters, got, tt.expected)
		}
	}
}

func TestEnsureExtension(t *testing.T) {
	if got := EnsureExtension("notes"); got != "notes.md" {
		t.Errorf("Expected notes.md, got %s", got)
	}
	if got := EnsureExtension("notes.txt"); got != "notes.txt" {
		t.Errorf("Expected notes.txt, got %s", got)
	}
}

func TestDocumentMarkSaved(t *testing.T) {
	doc := &Document{Path: "notes.md"}
	doc.MarkSaved("a\n    b")
	if doc.IsModified("a\n    b") {
		t.Error("Expected marked content to be unmodified")
	}
	if !doc.IsModified("a\n\tb") {
		t.Error("Expected different content to be modified")
	}
}
