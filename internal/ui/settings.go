package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/eraser-editor/eraser/internal/models"
)

// FilePlaceholder is replaced by the document path in the editor command
const FilePlaceholder = "{file}"

// Settings holds the application UI settings
type Settings struct {
	// Editor is the external editor command line. Use {file} as a
	// placeholder for the file path; without it the path is appended.
	// Default: $VISUAL, then $EDITOR, then "nvim {file}"
	Editor string `json:"editor"`

	// FileFilters lists the extensions offered by the file picker
	FileFilters []string `json:"fileFilters,omitempty"`

	// DefaultFileName seeds the save prompt for a new document
	DefaultFileName string `json:"defaultFileName"`

	// PreviewRatio is the percentage of the width given to the preview
	PreviewRatio int `json:"previewRatio"`

	GitHubURL  string `json:"githubURL"`
	WebsiteURL string `json:"websiteURL"`
}

// DefaultSettings returns the default settings
func DefaultSettings() *Settings {
	return &Settings{
		Editor:          defaultEditor(),
		FileFilters:     append([]string{}, models.DefaultFileFilters...),
		DefaultFileName: models.UntitledName + ".md",
		PreviewRatio:    50,
		GitHubURL:       "https://github.com/eraser-editor/eraser",
		WebsiteURL:      "https://eraser-editor.github.io",
	}
}

func defaultEditor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	return "nvim " + FilePlaceholder
}

// LoadSettings loads the settings from the config directory
func LoadSettings(configDir string) (*Settings, error) {
	settingsPath := filepath.Join(configDir, "settings.json")

	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	settings.normalize()
	return settings, nil
}

// SaveSettings saves the settings to the config directory
func SaveSettings(configDir string, settings *Settings) error {
	settingsPath := filepath.Join(configDir, "settings.json")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(settingsPath, data, 0644)
}

func (s *Settings) normalize() {
	defaults := DefaultSettings()
	if strings.TrimSpace(s.Editor) == "" {
		s.Editor = defaults.Editor
	}
	if len(s.FileFilters) == 0 {
		s.FileFilters = defaults.FileFilters
	}
	if s.DefaultFileName == "" {
		s.DefaultFileName = defaults.DefaultFileName
	}
	if s.PreviewRatio < 10 || s.PreviewRatio > 90 {
		s.PreviewRatio = defaults.PreviewRatio
	}
}

// EditorCommand splits the editor command line and substitutes path for
// the {file} placeholder
func (s *Settings) EditorCommand(path string) (string, []string, error) {
	words, err := shellquote.Split(s.Editor)
	if err != nil {
		return "", nil, fmt.Errorf("invalid editor command %q: %w", s.Editor, err)
	}
	if len(words) == 0 {
		return "", nil, fmt.Errorf("no editor configured")
	}

	substituted := false
	args := make([]string, 0, len(words))
	for _, w := range words[1:] {
		if strings.Contains(w, FilePlaceholder) {
			w = strings.ReplaceAll(w, FilePlaceholder, path)
			substituted = true
		}
		args = append(args, w)
	}
	if !substituted {
		args = append(args, path)
	}
	return words[0], args, nil
}
