package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuCard is a rounded card with a title, drawn over the field.
type MenuCard struct {
	*tview.Box
	title      string
	titleColor tcell.Color
	focused    bool
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{
		Box:        tview.NewBox(),
		title:      title,
		titleColor: MenuColors.Title,
		focused:    true,
	}
}

// SetTitleColor changes the title color, e.g. for alerts.
func (c *MenuCard) SetTitleColor(color tcell.Color) {
	c.titleColor = color
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}

// ContentRect returns the area below the title divider.
func (c *MenuCard) ContentRect() (int, int, int, int) {
	x, y, width, height := c.GetInnerRect()
	return x + 2, y + 6, width - 4, height - 7
}

// Draw renders the card frame and title.
func (c *MenuCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < 5 {
		return
	}

	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	borderStyle := tcell.StyleDefault.Foreground(borderColor).Background(MenuColors.CardBG)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// ╭───╮ │ │ ╰───╯
	screen.SetContent(x, y, '╭', nil, borderStyle)
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}

	if c.title == "" {
		return
	}
	titleStyle := tcell.StyleDefault.Foreground(c.titleColor).Background(MenuColors.CardBG).Bold(true)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)

	// ● TITLE ●
	titleLen := len([]rune(c.title)) + 4
	titleX := x + (width-titleLen)/2
	titleY := y + 2
	screen.SetContent(titleX, titleY, '●', nil, accentStyle)
	for i, ch := range []rune(c.title) {
		screen.SetContent(titleX+2+i, titleY, ch, nil, titleStyle)
	}
	screen.SetContent(titleX+titleLen-1, titleY, '●', nil, accentStyle)

	c.DrawDivider(screen, y+4)
}

// DrawDivider draws a horizontal divider at the given y position.
func (c *MenuCard) DrawDivider(screen tcell.Screen, divY int) {
	x, _, width, _ := c.GetInnerRect()
	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	borderStyle := tcell.StyleDefault.Foreground(borderColor).Background(MenuColors.CardBG)

	screen.SetContent(x, divY, '├', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, divY, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, divY, '┤', nil, borderStyle)
}

// drawText writes s at (x, y) and returns the column after it.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
