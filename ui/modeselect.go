package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"puyoterm/game"
)

var modeDescriptions = map[game.Kind]string{
	game.Player:   "a/d w ↓ →",
	game.Random:   "uniform",
	game.RuleBase: "3-ply search",
}

// Speed levels map to the delay between animated AI steps.
const (
	minSpeed = 1
	maxSpeed = 10
)

// SpeedToDelay returns the AI step delay in milliseconds for a speed level.
func SpeedToDelay(speed int) int {
	return (maxSpeed - speed) * 25
}

// DelayToSpeed returns the speed level closest to a step delay.
func DelayToSpeed(delayMs int) int {
	speed := maxSpeed - (delayMs+12)/25
	if speed < minSpeed {
		return minSpeed
	}
	if speed > maxSpeed {
		return maxSpeed
	}
	return speed
}

// ModeSelectUI is the card used to pick who controls the pieces.
type ModeSelectUI struct {
	*MenuCard
	modes    *RadioSelect
	speed    *LevelSlider
	onSelect func(kind game.Kind, stepDelayMs int)
	onCancel func()
}

// NewModeSelect creates the mode selection card.
func NewModeSelect(onSelect func(game.Kind, int), onCancel func()) *ModeSelectUI {
	options := make([]RadioOption, len(game.Kinds))
	for i, k := range game.Kinds {
		options[i] = RadioOption{Label: k.Label(), Description: modeDescriptions[k]}
	}
	m := &ModeSelectUI{
		MenuCard: NewMenuCard("Select Mode"),
		modes:    NewRadioSelect("Mode", options, 0, nil),
		speed:    NewLevelSlider("AI speed", minSpeed, maxSpeed, 6, nil),
		onSelect: onSelect,
		onCancel: onCancel,
	}
	m.modes.SetFocused(true)
	m.speed.SetFormat(func(v int) string { return fmt.Sprintf("%dms", SpeedToDelay(v)) })
	m.SetInputCapture(m.handleKey)
	return m
}

// Open shows the card with kind preselected.
func (m *ModeSelectUI) Open(kind game.Kind, stepDelayMs int) {
	for i, k := range game.Kinds {
		if k == kind {
			m.modes.SetSelected(i)
		}
	}
	m.speed.SetValue(DelayToSpeed(stepDelayMs))
}

// Selected returns the highlighted mode.
func (m *ModeSelectUI) Selected() game.Kind {
	return game.Kinds[m.modes.Selected()]
}

func (m *ModeSelectUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEnter:
		if m.onSelect != nil {
			m.onSelect(m.Selected(), SpeedToDelay(m.speed.Value()))
		}
		return nil
	case tcell.KeyEsc:
		if m.onCancel != nil {
			m.onCancel()
		}
		return nil
	}
	if m.modes.HandleKey(event) || m.speed.HandleKey(event) {
		return nil
	}
	return event
}

// Draw renders the card, the mode list, the speed slider and the key help.
func (m *ModeSelectUI) Draw(screen tcell.Screen) {
	m.MenuCard.Draw(screen)
	x, y, width, height := m.ContentRect()
	if width < 10 || height < 6 {
		return
	}
	row := y + m.modes.Draw(screen, x, y, width) + 1
	row += m.speed.Draw(screen, x, row, width) + 1

	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	drawText(screen, x, row, "Tab: Next  ←→: Speed  Enter: Select", hintStyle)
}
