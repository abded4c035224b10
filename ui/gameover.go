package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// GameOverUI is the card shown when no placement is left.
type GameOverUI struct {
	*MenuCard
	score   int
	turns   int
	buttons []*MenuButton
	focus   int
}

// NewGameOver creates the game over card with retry and quit actions.
func NewGameOver(onRetry, onQuit func()) *GameOverUI {
	g := &GameOverUI{
		MenuCard: NewMenuCard("GAME OVER!"),
		buttons: []*MenuButton{
			NewMenuButton("Retry", 'r', true, onRetry),
			NewMenuButton("Quit", 'q', false, onQuit),
		},
	}
	g.SetTitleColor(MenuColors.Alert)
	g.buttons[0].SetFocused(true)
	g.SetInputCapture(g.handleKey)
	return g
}

// SetResult sets the final score and turn count shown on the card.
func (g *GameOverUI) SetResult(score, turns int) {
	g.score = score
	g.turns = turns
}

func (g *GameOverUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyTab:
		g.buttons[g.focus].SetFocused(false)
		g.focus = (g.focus + 1) % len(g.buttons)
		g.buttons[g.focus].SetFocused(true)
		return nil
	}
	for _, b := range g.buttons {
		if b.HandleKey(event) {
			return nil
		}
	}
	return event
}

// Draw renders the card with the result and the buttons.
func (g *GameOverUI) Draw(screen tcell.Screen) {
	g.MenuCard.Draw(screen)
	x, y, width, height := g.ContentRect()
	if width < 10 || height < 4 {
		return
	}
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	drawText(screen, x, y, fmt.Sprintf("SCORE: %d", g.score), labelStyle)
	drawText(screen, x, y+1, fmt.Sprintf("PIECES: %d", g.turns), labelStyle)

	col := x
	for _, b := range g.buttons {
		col += b.Draw(screen, col, y+3) + 2
	}
}
