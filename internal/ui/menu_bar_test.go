package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func testMenus(ran *[]string) []Menu {
	record := func(name string) func() {
		return func() { *ran = append(*ran, name) }
	}
	return []Menu{
		{Title: "File", Items: []MenuItem{
			{Label: "New", Shortcut: "Ctrl+N", Action: record("new")},
			{Label: "Open...", Action: record("open")},
		}},
		{Title: "View", Items: []MenuItem{
			{Label: "Fullscreen", Action: record("fullscreen")},
		}},
	}
}

func TestMenuBarNavigation(t *testing.T) {
	var ran []string
	m := NewMenuBar(testMenus(&ran))

	if m.HandleKey(key(tcell.KeyDown)) {
		t.Error("Expected closed menu bar to ignore keys")
	}

	m.Open(0)
	m.HandleKey(key(tcell.KeyDown))
	if menu, item := m.Selected(); menu != 0 || item != 1 {
		t.Errorf("Expected File/Open, got %d/%d", menu, item)
	}
	m.HandleKey(key(tcell.KeyDown))
	if _, item := m.Selected(); item != 0 {
		t.Errorf("Expected selection to wrap to 0, got %d", item)
	}

	m.HandleKey(key(tcell.KeyLeft))
	if menu, _ := m.Selected(); menu != 1 {
		t.Errorf("Expected wrap to last menu, got %d", menu)
	}

	m.HandleKey(key(tcell.KeyEnter))
	if len(ran) != 1 || ran[0] != "fullscreen" {
		t.Errorf("Expected fullscreen action, got %v", ran)
	}
	if m.IsOpen() {
		t.Error("Expected menu closed after running an item")
	}
}

func TestMenuBarHotkeyAndEscape(t *testing.T) {
	var ran []string
	m := NewMenuBar(testMenus(&ran))

	m.Open(0)
	m.HandleKey(runeKey('o'))
	if len(ran) != 1 || ran[0] != "open" {
		t.Errorf("Expected open action from hotkey, got %v", ran)
	}

	m.Open(0)
	m.HandleKey(key(tcell.KeyEscape))
	if m.IsOpen() || len(ran) != 1 {
		t.Errorf("Expected Esc to close without running, got %v", ran)
	}
}

func TestMenuBarDraw(t *testing.T) {
	var ran []string
	s := newTestScreen(t, 60, 10)
	m := NewMenuBar(testMenus(&ran))
	m.SetTitle("notes.md - eraser")
	m.Open(0)
	m.Draw(s)

	bar := screenRow(s, 0)
	if !strings.Contains(bar, "File") || !strings.Contains(bar, "View") || !strings.HasSuffix(bar, "notes.md - eraser") {
		t.Errorf("Unexpected menu bar %q", bar)
	}
	if row := screenRow(s, 2); !strings.Contains(row, "New") || !strings.Contains(row, "Ctrl+N") {
		t.Errorf("Expected first dropdown item, got %q", row)
	}
}
