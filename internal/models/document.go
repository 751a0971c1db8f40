package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UntitledName is shown for a document that has never been saved
const UntitledName = "Untitled"

// DefaultFileFilters are the extensions offered by the open dialog
var DefaultFileFilters = []string{"md", "markdown", "txt"}

// Document is a markdown file on disk and the content it was last
// loaded from or saved with
type Document struct {
	Path  string
	saved string
}

// NewDocument returns an empty, unsaved document
func NewDocument() *Document {
	return &Document{}
}

// OpenDocument reads the file at path
func OpenDocument(path string) (*Document, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load file: %w", err)
	}
	content := string(data)
	return &Document{Path: path, saved: content}, content, nil
}

// Name returns the file's base name or UntitledName
func (d *Document) Name() string {
	if d.Path == "" {
		return UntitledName
	}
	return filepath.Base(d.Path)
}

// HasPath reports whether the document is bound to a file
func (d *Document) HasPath() bool {
	return d.Path != ""
}

// IsModified reports whether content differs from what is on disk
func (d *Document) IsModified(content string) bool {
	return content != d.saved
}

// MarkSaved records content as matching what is on disk
func (d *Document) MarkSaved(content string) {
	d.saved = content
}

// Save writes content to the document's path
func (d *Document) Save(content string) error {
	if d.Path == "" {
		return fmt.Errorf("document has no file name")
	}
	return d.SaveAs(d.Path, content)
}

// SaveAs writes content to path and binds the document to it
func (d *Document) SaveAs(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	d.Path = path
	d.saved = content
	return nil
}

// HasAllowedExtension reports whether path ends in one of the filter
// extensions, compared case-insensitively. An empty filter list allows all.
func HasAllowedExtension(path string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range filters {
		if strings.EqualFold(strings.TrimPrefix(f, "."), ext) {
			return true
		}
	}
	return false
}

// EnsureExtension appends ".md" when path has no extension
func EnsureExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".md"
	}
	return path
}
