package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption represents a single radio button option.
type RadioOption struct {
	Label       string
	Description string
}

// RadioSelect is a radio button group. Tab cycles through the options and
// wraps around; the arrow keys move without wrapping.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	onChange func(int)
}

// NewRadioSelect creates a new radio select component.
func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	return &RadioSelect{
		label:    label,
		options:  options,
		selected: initial,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

func (r *RadioSelect) choose(i int) {
	if i == r.selected || i < 0 || i >= len(r.options) {
		return
	}
	r.selected = i
	if r.onChange != nil {
		r.onChange(r.selected)
	}
}

// HandleKey processes keyboard input. Returns true if handled.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyTab:
		r.choose((r.selected + 1) % len(r.options))
		return true
	case tcell.KeyBacktab:
		r.choose((r.selected + len(r.options) - 1) % len(r.options))
		return true
	case tcell.KeyUp:
		r.choose(r.selected - 1)
		return true
	case tcell.KeyDown:
		r.choose(r.selected + 1)
		return true
	}
	return false
}

// Draw renders the group and returns the number of rows used.
func (r *RadioSelect) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)
	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)

	row := y
	screen.SetContent(x, row, '◈', nil, accentStyle)
	drawText(screen, x+2, row, r.label, labelStyle)
	row++

	for i, opt := range r.options {
		col := x + 2

		if i == r.selected {
			col = drawText(screen, col, row, "-->", selectedStyle)
		} else {
			col = drawText(screen, col, row, "   ", bgStyle)
		}
		col++

		style := unselectedStyle
		bullet := '○'
		if i == r.selected {
			bullet = '●'
			style = selectedStyle
			if r.focused {
				style = style.Bold(true)
			}
		}
		screen.SetContent(col, row, bullet, nil, style)
		col = drawText(screen, col+2, row, opt.Label, style)

		if opt.Description != "" && col+1+len([]rune(opt.Description)) <= x+width {
			drawText(screen, col+1, row, opt.Description, hintStyle)
		}
		row++
	}

	return row - y
}

// Selected returns the currently selected index.
func (r *RadioSelect) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RadioSelect) SetSelected(index int) {
	r.choose(index)
}
