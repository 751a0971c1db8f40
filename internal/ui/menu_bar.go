package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// MenuItem is one entry of a dropdown
type MenuItem struct {
	Label    string
	Shortcut string
	Action   func()
}

// Menu is a titled dropdown on the menu bar
type Menu struct {
	Title string
	Items []MenuItem
}

// MenuBar is the top row of the window. F10 opens it, arrows move between
// menus and items, Enter runs the selected item.
type MenuBar struct {
	menus   []Menu
	title   string
	open    bool
	menuIdx int
	itemIdx int
}

func NewMenuBar(menus []Menu) *MenuBar {
	return &MenuBar{menus: menus}
}

// SetTitle sets the text shown at the right of the bar
func (m *MenuBar) SetTitle(title string) {
	m.title = title
}

func (m *MenuBar) IsOpen() bool {
	return m.open
}

// Open shows the dropdown of the menu at index i
func (m *MenuBar) Open(i int) {
	if i < 0 || i >= len(m.menus) {
		return
	}
	m.open = true
	m.menuIdx = i
	m.itemIdx = 0
}

func (m *MenuBar) Close() {
	m.open = false
}

// Selected returns the highlighted menu and item indexes
func (m *MenuBar) Selected() (menu, item int) {
	return m.menuIdx, m.itemIdx
}

func (m *MenuBar) HandleKey(ev *tcell.EventKey) bool {
	if !m.open {
		return false
	}

	items := m.menus[m.menuIdx].Items
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyF10:
		m.Close()
	case tcell.KeyLeft:
		m.menuIdx = (m.menuIdx + len(m.menus) - 1) % len(m.menus)
		m.itemIdx = 0
	case tcell.KeyRight:
		m.menuIdx = (m.menuIdx + 1) % len(m.menus)
		m.itemIdx = 0
	case tcell.KeyUp:
		if len(items) > 0 {
			m.itemIdx = (m.itemIdx + len(items) - 1) % len(items)
		}
	case tcell.KeyDown:
		if len(items) > 0 {
			m.itemIdx = (m.itemIdx + 1) % len(items)
		}
	case tcell.KeyEnter:
		m.activate(m.itemIdx)
	case tcell.KeyRune:
		// First letter of an item label runs it
		for i, item := range items {
			if first := []rune(item.Label); len(first) > 0 && unicode.ToLower(first[0]) == unicode.ToLower(ev.Rune()) {
				m.activate(i)
				break
			}
		}
	}
	return true // Consume all other keys when open
}

// activate closes the bar before running the action, which may open a dialog
func (m *MenuBar) activate(i int) {
	items := m.menus[m.menuIdx].Items
	if i < 0 || i >= len(items) {
		return
	}
	m.Close()
	if items[i].Action != nil {
		items[i].Action()
	}
}

// titleX returns the column where menu i's title starts
func (m *MenuBar) titleX(i int) int {
	x := 1
	for j := 0; j < i; j++ {
		x += runewidth.StringWidth(m.menus[j].Title) + 3
	}
	return x
}

func (m *MenuBar) Draw(s tcell.Screen) {
	w, _ := s.Size()
	barStyle := tcell.StyleDefault.Background(ColorMenuBg).Foreground(ColorFg)
	activeStyle := tcell.StyleDefault.Background(ColorBlue).Foreground(ColorBgDark).Bold(true)

	for x := 0; x < w; x++ {
		s.SetContent(x, 0, ' ', nil, barStyle)
	}
	for i, menu := range m.menus {
		style := barStyle
		if m.open && i == m.menuIdx {
			style = activeStyle
		}
		drawText(s, m.titleX(i), 0, style, " "+menu.Title+" ")
	}
	if m.title != "" {
		tw := runewidth.StringWidth(m.title)
		if x := w - tw - 1; x > m.titleX(len(m.menus)) {
			drawText(s, x, 0, barStyle.Foreground(ColorDimmed), m.title)
		}
	}

	if m.open {
		m.drawDropdown(s)
	}
}

func (m *MenuBar) drawDropdown(s tcell.Screen) {
	items := m.menus[m.menuIdx].Items
	labelWidth, shortcutWidth := 0, 0
	for _, item := range items {
		labelWidth = max(labelWidth, runewidth.StringWidth(item.Label))
		shortcutWidth = max(shortcutWidth, runewidth.StringWidth(item.Shortcut))
	}
	width := labelWidth + 4
	if shortcutWidth > 0 {
		width += shortcutWidth + 2
	}
	height := len(items) + 2

	x := m.titleX(m.menuIdx)
	style := tcell.StyleDefault.Background(ColorMenuBg).Foreground(ColorFg)
	drawBox(s, x, 1, width, height, style, style.Foreground(ColorFgGutter))

	for i, item := range items {
		rowStyle := style
		if i == m.itemIdx {
			rowStyle = tcell.StyleDefault.Background(ColorBlue).Foreground(ColorBgDark)
			for cx := x + 1; cx < x+width-1; cx++ {
				s.SetContent(cx, 2+i, ' ', nil, rowStyle)
			}
		}
		drawText(s, x+2, 2+i, rowStyle, item.Label)
		if item.Shortcut != "" {
			sx := x + width - 2 - runewidth.StringWidth(item.Shortcut)
			drawText(s, sx, 2+i, rowStyle.Foreground(ColorDimmed), item.Shortcut)
		}
	}
}
