// Package ui implements the terminal frontend: the field view, the info
// panel and the overlay cards.
package ui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"puyoterm/board"
	"puyoterm/config"
	"puyoterm/engine"
	"puyoterm/game"
	"puyoterm/types"
)

// spawnRows is how many rows above the grid are drawn for the active piece.
const spawnRows = 2

var errCancelled = errors.New("ui: turn cancelled")

// Style slots.
const (
	styleField = iota
	styleFieldAlt
	styleWall
	styleDeathMark
	styleHidden
	styleCount
)

type FieldUI struct {
	Box        *tview.Box
	hint       *tview.TextView
	infoPanel  *InfoPanel
	app        *tview.Application
	cfg        *config.Config
	styles     []tcell.Color
	session    *game.Session
	ais        map[game.Kind]engine.AI
	seed       int64
	onGameOver func(score, turns int)

	mu         sync.Mutex
	kind       game.Kind
	stepDelay  time.Duration
	chainDelay time.Duration
	replay     *board.Board
	replayPass int
	busy       bool
	gen        int
	notice     string
	focusMode  bool
}

// NewField creates the field view for session.
func NewField(app *tview.Application, c *config.Config, session *game.Session, hint *tview.TextView) *FieldUI {
	f := &FieldUI{
		Box:        tview.NewBox(),
		hint:       hint,
		app:        app,
		session:    session,
		ais:        make(map[game.Kind]engine.AI),
		seed:       c.Game.Seed,
		kind:       game.Player,
		stepDelay:  time.Duration(c.Game.StepDelayMs) * time.Millisecond,
		chainDelay: time.Duration(c.Game.ChainDelayMs) * time.Millisecond,
	}
	f.SetConfig(c)
	f.Box.SetDrawFunc(f.draw)
	f.Box.SetInputCapture(f.handleKey)
	session.OnTurn(func(t game.Turn) {
		// Spawn goroutine to avoid deadlock when called from the main thread
		go f.app.QueueUpdateDraw(func() {
			if f.infoPanel != nil {
				f.infoPanel.AddTurn(t)
			}
		})
	})
	return f
}

func (f *FieldUI) SetConfig(c *config.Config) {
	f.styles = make([]tcell.Color, styleCount)
	f.styles[styleField] = tcell.PaletteColor(c.Theme.Colors.Field)
	f.styles[styleFieldAlt] = tcell.PaletteColor(c.Theme.Colors.FieldAlt)
	f.styles[styleWall] = tcell.PaletteColor(c.Theme.Colors.Wall)
	f.styles[styleDeathMark] = tcell.PaletteColor(c.Theme.Colors.DeathMark)
	f.styles[styleHidden] = tcell.PaletteColor(c.Theme.Colors.HiddenRows)
	f.cfg = c
}

// cellColor returns the palette color a puyo of cell c is drawn in.
func cellColor(c *config.Config, cell types.Cell) tcell.Color {
	switch cell {
	case types.Red:
		return tcell.PaletteColor(c.Theme.Colors.Red)
	case types.Green:
		return tcell.PaletteColor(c.Theme.Colors.Green)
	case types.Yellow:
		return tcell.PaletteColor(c.Theme.Colors.Yellow)
	case types.Blue:
		return tcell.PaletteColor(c.Theme.Colors.Blue)
	case types.Purple:
		return tcell.PaletteColor(c.Theme.Colors.Purple)
	case types.Garbage:
		return tcell.PaletteColor(c.Theme.Colors.Garbage)
	default:
		return tcell.PaletteColor(c.Theme.Colors.Wall)
	}
}

// OnGameOver registers the callback run on the main goroutine when the game
// ends.
func (f *FieldUI) OnGameOver(callback func(score, turns int)) {
	f.onGameOver = callback
}

// Mode returns the active control mode.
func (f *FieldUI) Mode() game.Kind {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.kind
}

// StepDelay returns the AI animation delay in milliseconds.
func (f *FieldUI) StepDelay() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int(f.stepDelay / time.Millisecond)
}

// SetMode hands control to kind. AI instances are created on first use and
// kept for later switches.
func (f *FieldUI) SetMode(kind game.Kind, stepDelayMs int) error {
	ai, ok := f.ais[kind]
	if !ok {
		var err error
		ai, err = game.NewAI(kind, f.seed)
		if err != nil {
			return err
		}
		f.ais[kind] = ai
	}

	f.mu.Lock()
	f.kind = kind
	f.stepDelay = time.Duration(stepDelayMs) * time.Millisecond
	f.gen++
	gen := f.gen
	f.replay = nil
	f.replayPass = 0
	f.notice = ""
	startAI := ai != nil
	f.busy = startAI
	f.mu.Unlock()

	f.session.SetAI(ai)
	if f.infoPanel != nil {
		f.infoPanel.SetMode(kind)
	}
	if startAI {
		go f.run(gen, nil)
	}
	f.refreshHint()
	return nil
}

// Retry starts a new game under player control.
func (f *FieldUI) Retry() {
	f.mu.Lock()
	f.gen++
	f.kind = game.Player
	f.replay = nil
	f.busy = false
	f.notice = ""
	f.mu.Unlock()

	f.session.SetAI(nil)
	f.session.Reset(nil)
	if f.infoPanel != nil {
		f.infoPanel.Reset()
		f.infoPanel.SetMode(game.Player)
	}
	f.refreshHint()
}

// current reports whether gen is still the live generation.
func (f *FieldUI) current(gen int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gen == gen
}

// Commit drops the player's piece.
func (f *FieldUI) Commit() {
	f.mu.Lock()
	if f.busy || f.kind != game.Player {
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	turn, err := f.session.Commit()
	if err != nil {
		f.mu.Lock()
		f.notice = "cannot place there"
		f.mu.Unlock()
		f.refreshHint()
		return
	}

	f.mu.Lock()
	f.busy = true
	f.notice = ""
	gen := f.gen
	f.mu.Unlock()
	go f.run(gen, &turn)
}

// run replays turn, then keeps playing AI turns until control returns to the
// player, the game ends or gen goes stale.
func (f *FieldUI) run(gen int, turn *game.Turn) {
	for {
		if turn != nil {
			f.replayPasses(gen, *turn)
		}
		if !f.current(gen) {
			return
		}
		if f.session.GameOver() {
			f.finish(gen)
			f.app.QueueUpdateDraw(f.showGameOver)
			return
		}
		if f.session.AI() == nil {
			f.finish(gen)
			f.app.QueueUpdateDraw(f.refreshHint)
			return
		}
		t, err := f.aiTurn(gen)
		if errors.Is(err, errCancelled) {
			return
		}
		if err != nil && !errors.Is(err, game.ErrGameOver) && !errors.Is(err, engine.ErrNoLegalPlacement) {
			f.finish(gen)
			f.mu.Lock()
			f.notice = err.Error()
			f.mu.Unlock()
			f.app.QueueUpdateDraw(f.refreshHint)
			return
		}
		turn = nil
		if err == nil {
			turn = &t
		}
	}
}

func (f *FieldUI) finish(gen int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen == gen {
		f.busy = false
	}
}

// aiTurn asks the AI for a move, animates the piece into place and plays it.
func (f *FieldUI) aiTurn(gen int) (game.Turn, error) {
	m, err := f.session.Decide()
	if err != nil {
		return game.Turn{}, err
	}
	f.mu.Lock()
	delay := f.stepDelay
	f.mu.Unlock()

	if delay > 0 {
		for i := 0; i < int(m.Rotation); i++ {
			if !f.current(gen) {
				return game.Turn{}, errCancelled
			}
			f.session.RotateRight()
			f.app.QueueUpdateDraw(f.refreshHint)
			time.Sleep(delay)
		}
		for i := 0; i < f.session.Board().Width(); i++ {
			if !f.current(gen) {
				return game.Turn{}, errCancelled
			}
			x := f.session.Board().Active().X
			if x < m.TargetX {
				f.session.MoveRight()
			} else if x > m.TargetX {
				f.session.MoveLeft()
			} else {
				break
			}
			f.app.QueueUpdateDraw(f.refreshHint)
			time.Sleep(delay)
		}
	}
	if !f.current(gen) {
		return game.Turn{}, errCancelled
	}
	return f.session.Play(m)
}

// replayPasses shows each chain pass of turn for the chain delay.
func (f *FieldUI) replayPasses(gen int, turn game.Turn) {
	f.mu.Lock()
	delay := f.chainDelay
	f.mu.Unlock()
	for i, p := range turn.Passes {
		f.mu.Lock()
		if f.gen != gen {
			f.mu.Unlock()
			return
		}
		f.replay = p.Board
		f.replayPass = i + 1
		f.mu.Unlock()
		f.app.QueueUpdateDraw(f.refreshHint)
		time.Sleep(delay)
	}
	f.mu.Lock()
	if f.gen == gen {
		f.replay = nil
		f.replayPass = 0
	}
	f.mu.Unlock()
}

func (f *FieldUI) showGameOver() {
	f.refreshHint()
	if f.onGameOver != nil {
		f.onGameOver(f.session.Score(), f.session.Turns())
	}
}

// displayBoard returns the board to draw and whether it is the live one.
func (f *FieldUI) displayBoard() (*board.Board, bool) {
	f.mu.Lock()
	replay := f.replay
	f.mu.Unlock()
	if replay != nil {
		return replay, false
	}
	return f.session.Board(), true
}

func (f *FieldUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	f.mu.Lock()
	manual := !f.busy && f.kind == game.Player
	f.mu.Unlock()
	if !manual || f.session.GameOver() {
		return event
	}
	switch event.Key() {
	case tcell.KeyDown:
		f.session.RotateLeft()
	case tcell.KeyRight:
		f.session.RotateRight()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'a':
			f.session.MoveLeft()
		case 'd':
			f.session.MoveRight()
		case 'w':
			f.Commit()
		default:
			return event
		}
	default:
		return event
	}
	f.refreshHint()
	return nil
}

func (f *FieldUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	b, live := f.displayBoard()
	w, h := b.Width(), b.Height()
	left := x + 4
	top := y + spawnRows
	deathRow := h - b.DeathLine()

	wallStyle := tcell.StyleDefault.Foreground(f.styles[styleWall])
	for by := 0; by < h; by++ {
		screen.SetContent(left-1, top+by, '│', nil, wallStyle)
		screen.SetContent(left+w*2, top+by, '│', nil, wallStyle)
		for bx := 0; bx < w; bx++ {
			bg := f.styles[styleField]
			if (bx+by)%2 == 1 {
				bg = f.styles[styleFieldAlt]
			}
			if by < deathRow {
				bg = f.styles[styleHidden]
			}
			cell := b.Cell(bx, by)
			switch {
			case cell != types.Empty:
				f.drawPuyo(screen, left, top, bx, by, cell, f.cfg.Theme.Symbols.Puyo, bg)
			case f.cfg.Theme.DrawDeathMark && bx == board.SpawnX && by == deathRow:
				style := tcell.StyleDefault.Background(bg).Foreground(f.styles[styleDeathMark])
				drawPuyoCell(screen, style, f.cfg.Theme.Symbols.DeathMark, bx, by, left, top)
			default:
				style := tcell.StyleDefault.Background(bg).Foreground(f.styles[styleWall])
				drawPuyoCell(screen, style, f.cfg.Theme.Symbols.Empty, bx, by, left, top)
			}
		}
	}
	screen.SetContent(left-1, top+h, '└', nil, wallStyle)
	for col := left; col < left+w*2; col++ {
		screen.SetContent(col, top+h, '─', nil, wallStyle)
	}
	screen.SetContent(left+w*2, top+h, '┘', nil, wallStyle)

	if live && !f.session.GameOver() {
		p := b.Active()
		if f.cfg.Theme.DrawGhost {
			gc, gs := b.Ghost()
			f.drawGhost(screen, left, top, gc, p.Center, h)
			f.drawGhost(screen, left, top, gs, p.Sub, h)
		}
		center := types.Point{X: p.X, Y: p.Y}
		for _, c := range []struct {
			pos  types.Point
			cell types.Cell
		}{{center, p.Center}, {p.SubPos(), p.Sub}} {
			if c.pos.X < 0 || c.pos.X >= w || c.pos.Y < -spawnRows || c.pos.Y >= h {
				continue
			}
			f.drawPuyo(screen, left, top, c.pos.X, c.pos.Y, c.cell, f.cfg.Theme.Symbols.Puyo, tcell.ColorDefault)
		}
	}

	drawCoordinates(screen, x, top, w, h, f.cfg.Theme.FullWidthLetters)
	return x, y, w*2 + 6, h + spawnRows + 2
}

func (f *FieldUI) drawPuyo(screen tcell.Screen, left, top, bx, by int, cell types.Cell, r rune, bg tcell.Color) {
	fg := cellColor(f.cfg, cell)
	style := tcell.StyleDefault.Background(bg).Foreground(fg)
	if f.cfg.Theme.DrawPuyoBG {
		style = tcell.StyleDefault.Background(fg).Foreground(bg)
	}
	drawPuyoCell(screen, style, r, bx, by, left, top)
}

func (f *FieldUI) drawGhost(screen tcell.Screen, left, top int, pos types.Point, cell types.Cell, h int) {
	if pos.Y < 0 || pos.Y >= h {
		return
	}
	style := tcell.StyleDefault.Foreground(cellColor(f.cfg, cell))
	screen.SetContent(left+pos.X*2, top+pos.Y, f.cfg.Theme.Symbols.Ghost, nil, style)
}

// drawPuyoCell draws one field cell, 2 characters wide.
func drawPuyoCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// drawCoordinates labels columns below the floor and rows from the floor up.
func drawCoordinates(s tcell.Screen, x, top, w, h int, fullWidth bool) {
	style := tcell.StyleDefault.Foreground(MenuColors.Hint)
	first := '1'
	if fullWidth {
		first = '１'
	}
	for ix := 0; ix < w; ix++ {
		s.SetContent(x+4+ix*2, top+h+1, first+rune(ix%10), nil, style)
	}
	for iy := 0; iy < h; iy++ {
		num := fmt.Sprintf("%2d", iy+1)
		for i, ch := range num {
			s.SetContent(x+1+i, top+h-iy-1, ch, nil, style)
		}
	}
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (f *FieldUI) ToggleFocusMode() bool {
	f.mu.Lock()
	f.focusMode = !f.focusMode
	on := f.focusMode
	f.mu.Unlock()
	f.refreshHint()
	return on
}

func (f *FieldUI) refreshHint() {
	b, live := f.displayBoard()
	f.mu.Lock()
	kind, busy, focus, notice, pass := f.kind, f.busy, f.focusMode, f.notice, f.replayPass
	f.mu.Unlock()

	if f.infoPanel != nil {
		f.infoPanel.SetBoard(b, f.session.Turns())
	}
	if focus {
		f.hint.SetText("  f to toggle")
		return
	}

	var status, controls string
	switch {
	case f.session.GameOver():
		status = fmt.Sprintf("  GAME OVER  score %d", f.session.Score())
		controls = "  r retry   q quit"
	case !live:
		status = fmt.Sprintf("  %d chain!", pass)
	case kind != game.Player:
		if busy {
			status = fmt.Sprintf("  %s playing", kind.Label())
		} else {
			status = fmt.Sprintf("  %s idle", kind.Label())
		}
		controls = "  Tab mode   f focus   c colors   q quit"
	default:
		status = "  Your move"
		if notice != "" {
			status += ": " + notice
		}
		controls = "  a/d move  ↓/→ rotate  w drop  Tab mode  f focus  c colors  q quit"
	}
	f.hint.SetText(status + "\n" + controls)
}
