package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("# "+name), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func displays(files []FileEntry) map[string]FileEntry {
	out := make(map[string]FileEntry)
	for _, f := range files {
		out[f.Display] = f
	}
	return out
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"README.md",
		"docs/guide.markdown",
		"docs/notes.txt",
		"main.go",
		".git/HEAD.md",
		"node_modules/pkg/readme.md",
		"vendor/lib/doc.md",
	)

	files, err := ListFiles(root, []string{"md", "markdown", "txt"}, nil, 100)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}

	got := displays(files)
	for _, want := range []string{"README.md", filepath.Join("docs", "guide.markdown"), filepath.Join("docs", "notes.txt")} {
		if _, ok := got[want]; !ok {
			t.Errorf("Expected %s in %v", want, got)
		}
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 files, got %d: %v", len(files), got)
	}
	for _, f := range files {
		if !filepath.IsAbs(f.Path) {
			t.Errorf("Expected absolute path, got %s", f.Path)
		}
	}
}

func TestListFilesRecentFirstAndLimit(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.md", "b.md", "c.md")
	outside := t.TempDir()
	writeFiles(t, outside, "far.md")

	recent := []string{
		filepath.Join(outside, "far.md"),
		filepath.Join(root, "b.md"),
		filepath.Join(root, "gone.md"),
	}
	files, err := ListFiles(root, []string{"md"}, recent, 100)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("Expected 4 unique files, got %d", len(files))
	}
	if !files[0].Recent || files[0].Name != "far.md" || files[1].Name != "b.md" {
		t.Errorf("Expected recent files first, got %+v", files[:2])
	}
	if files[0].Display != files[0].Path {
		t.Errorf("Expected files outside root shown by absolute path, got %s", files[0].Display)
	}

	files, err = ListFiles(root, []string{"md"}, nil, 2)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("Expected limit of 2, got %d", len(files))
	}
}

func TestFilePickerFilterAndSelect(t *testing.T) {
	files := []FileEntry{
		{Path: "/w/alpha.md", Display: "alpha.md", Name: "alpha.md"},
		{Path: "/w/docs/beta.md", Display: "docs/beta.md", Name: "beta.md"},
		{Path: "/w/gamma.txt", Display: "gamma.txt", Name: "gamma.txt"},
	}

	var selected string
	p := NewFilePicker()
	p.Show(files, func(path string) { selected = path })
	if len(p.Matches()) != 3 {
		t.Fatalf("Expected all files before typing, got %v", p.Matches())
	}

	for _, r := range "beta" {
		p.HandleKey(runeKey(r))
	}
	matches := p.Matches()
	if len(matches) != 1 || matches[0] != "/w/docs/beta.md" {
		t.Fatalf("Expected only beta, got %v", matches)
	}

	p.HandleKey(key(tcell.KeyEnter))
	if selected != "/w/docs/beta.md" {
		t.Errorf("Expected beta selected, got %q", selected)
	}
	if p.IsVisible() {
		t.Error("Expected picker hidden after selection")
	}
}

func TestFilePickerEscape(t *testing.T) {
	called := false
	p := NewFilePicker()
	p.Show([]FileEntry{{Path: "/a.md", Display: "a.md", Name: "a.md"}}, func(string) { called = true })
	p.HandleKey(key(tcell.KeyEscape))
	if called || p.IsVisible() {
		t.Error("Expected Esc to close without selecting")
	}
}

func TestFileRowHighlightOffset(t *testing.T) {
	row := &fileRow{
		entry: FileEntry{Display: "docs/beta.md", Name: "beta.md"},
		match: FileMatchResult{MatchResult: MatchResult{Positions: []int{0, 1}}, MatchField: "name"},
	}
	got := row.GetHighlightPositions(0)
	if len(got) != 2 || got[0] != 5 || got[1] != 6 {
		t.Errorf("Expected positions shifted past the directory, got %v", got)
	}
	if row.GetHighlightPositions(1) != nil {
		t.Error("Expected no highlights outside the file column")
	}
}
