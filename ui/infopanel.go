package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"puyoterm/board"
	"puyoterm/config"
	"puyoterm/game"
	"puyoterm/types"
)

// historyRows is how many turns the panel lists.
const historyRows = 12

// InfoPanel displays the score, the upcoming pairs and the turn history
// alongside the field.
type InfoPanel struct {
	box   *tview.TextView
	cfg   *config.Config
	mode  game.Kind
	board *board.Board
	turns int
	log   []game.Turn
}

// NewInfoPanel creates an empty info panel.
func NewInfoPanel(c *config.Config) *InfoPanel {
	p := &InfoPanel{
		box:  tview.NewTextView(),
		cfg:  c,
		mode: game.Player,
	}
	p.box.SetDynamicColors(true)
	p.box.SetBorder(false)
	p.box.SetTextAlign(tview.AlignLeft)
	return p
}

// Box returns the underlying tview component.
func (p *InfoPanel) Box() *tview.TextView {
	return p.box
}

func (p *InfoPanel) SetMode(kind game.Kind) {
	p.mode = kind
	p.refresh()
}

// SetBoard updates the panel with the board being displayed.
func (p *InfoPanel) SetBoard(b *board.Board, turns int) {
	p.board = b
	p.turns = turns
	p.refresh()
}

// AddTurn appends t to the history.
func (p *InfoPanel) AddTurn(t game.Turn) {
	p.log = append(p.log, t)
	if len(p.log) > historyRows {
		p.log = p.log[len(p.log)-historyRows:]
	}
	p.refresh()
}

// Reset clears the history.
func (p *InfoPanel) Reset() {
	p.log = nil
	p.turns = 0
	p.refresh()
}

func (p *InfoPanel) puyo(c types.Cell) string {
	return fmt.Sprintf("[#%06x]%c[-]", cellColor(p.cfg, c).Hex(), p.cfg.Theme.Symbols.Puyo)
}

func (p *InfoPanel) pair(pr types.Pair) string {
	return p.puyo(pr.Sub) + "\n  " + p.puyo(pr.Center)
}

func (p *InfoPanel) refresh() {
	if p.board == nil {
		p.box.SetText("")
		return
	}
	var sb strings.Builder

	sb.WriteString("[white::b]Game[-:-:-]\n")
	sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	fmt.Fprintf(&sb, "[white]Mode:[-:-:-]   %s\n", p.mode.Label())
	fmt.Fprintf(&sb, "[white]Score:[-:-:-]  %d\n", p.board.Score())
	fmt.Fprintf(&sb, "[white]Chain:[-:-:-]  %d\n", p.board.ChainSize())
	fmt.Fprintf(&sb, "[white]Pieces:[-:-:-] %d\n", p.turns)

	next := p.board.Next()
	sb.WriteString("\n[white::b]Next[-:-:-]\n")
	fmt.Fprintf(&sb, "  %s\n", p.pair(next[0]))
	fmt.Fprintf(&sb, "    [dimgray]then[-] %s%s\n", p.puyo(next[1].Sub), p.puyo(next[1].Center))

	if len(p.log) > 0 {
		sb.WriteString("\n[white::b]Turns[-:-:-]\n")
		sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
		for i, t := range p.log {
			marker := " "
			if i == len(p.log)-1 {
				marker = "[white]>[-]"
			}
			where := fmt.Sprintf("col %d %-5s", t.Move.TargetX+1, t.Move.Rotation)
			if !t.Placed {
				where = "[red]no room[-]   "
			}
			fmt.Fprintf(&sb, "%s[dimgray]%3d.[-] %s", marker, t.Number, where)
			if t.Chain > 0 {
				fmt.Fprintf(&sb, " [yellow]%dx[-] +%d", t.Chain, t.Points)
			}
			sb.WriteByte('\n')
		}
	}

	p.box.SetText(sb.String())
}

// CreateGameLayout creates the main game layout with field and side panel.
func CreateGameLayout(field *FieldUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, field, hint)
	return gameFrame
}

// RebuildNormalLayout restores the normal game layout with field, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, field *FieldUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewInfoPanel(field.cfg)
	infoPanel.log = append(infoPanel.log, historyOf(field.infoPanel)...)
	infoPanel.mode = field.Mode()
	field.infoPanel = infoPanel
	field.refreshHint()

	row := tview.NewFlex().SetDirection(tview.FlexColumn)
	row.AddItem(field.Box, 0, 1, true)
	row.AddItem(infoPanel.Box(), 28, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(row, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

func historyOf(p *InfoPanel) []game.Turn {
	if p == nil {
		return nil
	}
	return p.log
}

// BuildFocusLayout builds the focus mode layout with just the centered field.
func BuildFocusLayout(gameFrame *tview.Flex, field *FieldUI) {
	gameFrame.Clear()
	b := field.session.Board()
	width := b.Width()*2 + 6
	height := b.Height() + spawnRows + 2

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)
	gameFrame.AddItem(Centered(field.Box, width), height, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}

// Centered wraps p in flexible spacers so it keeps a fixed width.
func Centered(p tview.Primitive, width int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(p, width, 0, true)
	centered.AddItem(nil, 0, 1, false)
	return centered
}

// Overlay centers card on top of the page behind it.
func Overlay(card tview.Primitive, width, height int) *tview.Flex {
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(Centered(card, width), height, 0, true).
		AddItem(nil, 0, 1, false)
}
