package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// LevelSlider is a horizontal slider for a small integer range.
type LevelSlider struct {
	label    string
	min      int
	max      int
	value    int
	focused  bool
	format   func(int) string
	onChange func(int)
}

// NewLevelSlider creates a new level slider. The value is shown as a plain
// number unless SetFormat is called.
func NewLevelSlider(label string, min, max, initial int, onChange func(int)) *LevelSlider {
	s := &LevelSlider{
		label:    label,
		min:      min,
		max:      max,
		format:   strconv.Itoa,
		onChange: onChange,
	}
	s.value = s.clamp(initial)
	return s
}

// SetFormat sets how the value is printed next to the bar.
func (s *LevelSlider) SetFormat(format func(int) string) {
	s.format = format
}

// SetFocused sets the focus state.
func (s *LevelSlider) SetFocused(focused bool) {
	s.focused = focused
}

func (s *LevelSlider) clamp(v int) int {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}

func (s *LevelSlider) step(d int) {
	v := s.clamp(s.value + d)
	if v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

// HandleKey processes keyboard input. Returns true if handled.
func (s *LevelSlider) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		s.step(-1)
		return true
	case tcell.KeyRight:
		s.step(1)
		return true
	}
	return false
}

// Draw renders the slider on one row and returns 1.
func (s *LevelSlider) Draw(screen tcell.Screen, x, y, width int) int {
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)

	// ◈ AI speed  ◀ █████░░░░░ ▶ 120ms
	screen.SetContent(x, y, '◈', nil, accentStyle)
	col := drawText(screen, x+2, y, s.label, labelStyle) + 2

	arrowStyle := unselectedStyle
	if s.focused {
		arrowStyle = selectedStyle
	}
	screen.SetContent(col, y, '◀', nil, arrowStyle)
	col += 2

	filled := s.value - s.min + 1
	for i := 0; i < s.max-s.min+1; i++ {
		if i < filled {
			screen.SetContent(col, y, '█', nil, selectedStyle)
		} else {
			screen.SetContent(col, y, '░', nil, unselectedStyle)
		}
		col++
	}
	screen.SetContent(col+1, y, '▶', nil, arrowStyle)
	drawText(screen, col+3, y, s.format(s.value), labelStyle)

	return 1
}

// Value returns the current slider value.
func (s *LevelSlider) Value() int {
	return s.value
}

// SetValue sets the slider value, clamped to the range.
func (s *LevelSlider) SetValue(v int) {
	s.step(s.clamp(v) - s.value)
}
