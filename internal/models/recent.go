package models

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MaxRecentFiles bounds the recent files list
const MaxRecentFiles = 20

// RecentFiles is the persisted list of recently opened or saved files,
// most recent first
type RecentFiles struct {
	Paths []string `json:"paths"`

	path string
}

// LoadRecentFiles reads recent.json from configDir. A missing file yields
// an empty list.
func LoadRecentFiles(configDir string) (*RecentFiles, error) {
	path := filepath.Join(configDir, "recent.json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RecentFiles{Paths: []string{}, path: path}, nil
		}
		return nil, err
	}

	var r RecentFiles
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	r.path = path

	// Drop entries whose files are gone
	r.Prune()

	return &r, nil
}

func (r *RecentFiles) Save() error {
	if r.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(r.path, data, 0644)
}

// Add moves path to the front of the list
func (r *RecentFiles) Add(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	r.Remove(path)
	r.Paths = append([]string{path}, r.Paths...)
	if len(r.Paths) > MaxRecentFiles {
		r.Paths = r.Paths[:MaxRecentFiles]
	}
}

func (r *RecentFiles) Remove(path string) {
	for i, p := range r.Paths {
		if p == path {
			r.Paths = append(r.Paths[:i], r.Paths[i+1:]...)
			return
		}
	}
}

// Prune removes paths that no longer exist and reports whether any did
func (r *RecentFiles) Prune() bool {
	kept := r.Paths[:0]
	for _, p := range r.Paths {
		if _, err := os.Stat(p); err == nil {
			kept = append(kept, p)
		}
	}
	pruned := len(kept) != len(r.Paths)
	r.Paths = kept
	return pruned
}
