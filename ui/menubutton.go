package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// MenuButton is a styled button with an optional single-key shortcut.
type MenuButton struct {
	label    string
	shortcut rune
	primary  bool
	focused  bool
	onSelect func()
}

// NewMenuButton creates a new menu button. A non-zero shortcut selects the
// button from the keyboard regardless of focus.
func NewMenuButton(label string, shortcut rune, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		shortcut: unicode.ToLower(shortcut),
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// Select runs the button's action.
func (b *MenuButton) Select() {
	if b.onSelect != nil {
		b.onSelect()
	}
}

// HandleKey processes keyboard input. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEnter:
		if b.focused {
			b.Select()
			return true
		}
	case tcell.KeyRune:
		if b.shortcut != 0 && unicode.ToLower(event.Rune()) == b.shortcut {
			b.Select()
			return true
		}
	}
	return false
}

func (b *MenuButton) text() string {
	label := b.label
	if b.shortcut != 0 {
		label = string(unicode.ToUpper(b.shortcut)) + ": " + label
	}
	if b.primary {
		label = "▶ " + label
	}
	return label
}

// Draw renders the button at the given position and returns its width.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.text()
	width := b.Width()

	if b.focused {
		style := tcell.StyleDefault.
			Foreground(MenuColors.ButtonText).
			Background(MenuColors.ButtonFocus)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		drawText(screen, x+1, y, label, style)
		return width
	}

	dimStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	bracketStyle := tcell.StyleDefault.Foreground(MenuColors.Border).Background(MenuColors.CardBG)
	screen.SetContent(x, y, '[', nil, bracketStyle)
	col := drawText(screen, x+1, y, label, dimStyle)
	screen.SetContent(col, y, ']', nil, bracketStyle)
	return width
}

// Width returns the button width.
func (b *MenuButton) Width() int {
	return len([]rune(b.text())) + 2
}
