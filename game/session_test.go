package game

import (
	"errors"
	"testing"

	"puyoterm/board"
	"puyoterm/engine"
	"puyoterm/notation"
	"puyoterm/types"
)

// cycleSource deals a fixed list of pairs over and over.
type cycleSource struct {
	pairs []types.Pair
	i     int
}

func (s *cycleSource) NextPair() types.Pair {
	p := s.pairs[s.i%len(s.pairs)]
	s.i++
	return p
}

var (
	rg = types.Pair{Center: types.Red, Sub: types.Green}
	yb = types.Pair{Center: types.Yellow, Sub: types.Blue}
	bg = types.Pair{Center: types.Blue, Sub: types.Green}
	rb = types.Pair{Center: types.Red, Sub: types.Blue}
)

func resume(t *testing.T, diagram string, active types.Pair, src board.PairSource) *Session {
	t.Helper()
	b, err := notation.Parse(diagram, board.DefaultHeight, board.DefaultWidth)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	b.Spawn(active.Center, active.Sub)
	b.SetNext(src.NextPair(), src.NextPair())
	return resumeSession(b, src)
}

func TestNewSessionFillsQueue(t *testing.T) {
	s := NewSession(board.DefaultHeight, board.DefaultWidth, &cycleSource{pairs: []types.Pair{rg, yb, bg, rb}})
	b := s.Board()
	if got := activePair(b); got != rg {
		t.Fatalf("active = %+v, want %+v", got, rg)
	}
	if next := b.Next(); next[0] != yb || next[1] != bg {
		t.Fatalf("next = %+v, want %+v %+v", next, yb, bg)
	}
	if s.Turns() != 0 || s.Score() != 0 || s.GameOver() {
		t.Fatal("fresh session is not at turn 0 with score 0")
	}
}

func TestPlayAdvancesQueue(t *testing.T) {
	s := NewSession(board.DefaultHeight, board.DefaultWidth, &cycleSource{pairs: []types.Pair{rg, yb, bg, rb}})
	turn, err := s.Play(types.Move{TargetX: 0, Rotation: types.Right})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if turn.Number != 1 || !turn.Placed || turn.Chain != 0 || len(turn.Passes) != 0 || turn.Points != 0 {
		t.Fatalf("turn = %+v, want a quiet first turn", turn)
	}
	b := s.Board()
	if b.Cell(0, 13) != types.Red || b.Cell(1, 13) != types.Green {
		t.Fatalf("piece not placed:\n%s", notation.Format(b))
	}
	if got := activePair(b); got != yb {
		t.Fatalf("active = %+v, want %+v", got, yb)
	}
	if next := b.Next(); next[0] != bg || next[1] != rb {
		t.Fatalf("next = %+v", next)
	}
}

func TestPlayResolvesChain(t *testing.T) {
	s := resume(t, `
RB....
RB....
RB....
`, rb, &cycleSource{pairs: []types.Pair{yb}})
	turn, err := s.Play(types.Move{TargetX: 0, Rotation: types.Up})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if turn.Chain != 2 || len(turn.Passes) != 2 {
		t.Fatalf("chain = %d with %d passes, want 2 and 2", turn.Chain, len(turn.Passes))
	}
	if turn.Passes[0].Points != 40 || turn.Passes[1].Points != 320 {
		t.Fatalf("pass points = %d, %d, want 40, 320", turn.Passes[0].Points, turn.Passes[1].Points)
	}
	if turn.Points != 360 || s.Score() != 360 {
		t.Fatalf("points = %d, score = %d, want 360", turn.Points, s.Score())
	}
	if b := s.Board(); b.ChainSize() != 0 {
		t.Fatalf("chain size = %d after the turn, want 0", b.ChainSize())
	}
	if got := turn.Passes[1].Board.Cell(0, 13); got != types.Empty {
		t.Fatalf("snapshot after pass 2 still holds %v", got)
	}
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	s := NewSession(board.DefaultHeight, board.DefaultWidth, &cycleSource{pairs: []types.Pair{rg}})
	_, err := s.Play(types.Move{TargetX: 0, Rotation: types.Left})
	if !errors.Is(err, ErrIllegalPlacement) {
		t.Fatalf("got %v, want ErrIllegalPlacement", err)
	}
	if s.Turns() != 0 {
		t.Fatalf("turns = %d after a rejected move", s.Turns())
	}
}

// fullField leaves only column 2 below the death line.
func fullField(col2 int) string {
	rows := ""
	for y := 0; y < board.DefaultHeight; y++ {
		row := []byte("......")
		if y >= board.DefaultHeight-13 {
			for x := range row {
				row[x] = 'O'
			}
		}
		if y < board.DefaultHeight-col2 {
			row[2] = '.'
		}
		rows += string(row) + "\n"
	}
	return rows
}

func TestGameOverWhenNothingFits(t *testing.T) {
	s := resume(t, fullField(11), rg, &cycleSource{pairs: []types.Pair{yb}})
	ended := -1
	s.OnGameEnd(func(score int) { ended = score })

	moves := engine.ValidMoves(s.Board())
	if len(moves) != 2 {
		t.Fatalf("got %d legal moves, want 2: %v", len(moves), moves)
	}
	turn, err := s.Play(types.Move{TargetX: 2, Rotation: types.Up})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !turn.GameOver || !s.GameOver() {
		t.Fatal("game not over with every column above the death line")
	}
	if ended != 0 {
		t.Fatalf("end callback got %d, want score 0", ended)
	}
	if _, err := s.Play(types.Move{TargetX: 2, Rotation: types.Up}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("got %v, want ErrGameOver", err)
	}
}

func TestPlayDiscardsPairThatDoesNotFit(t *testing.T) {
	b := board.NewDefault()
	for y := 0; y < b.Height(); y++ {
		b.SetCell(2, y, types.Garbage)
	}
	b.Spawn(rg.Center, rg.Sub)
	b.SetNext(yb, bg)
	s := resumeSession(b, &cycleSource{pairs: []types.Pair{rb}})

	m := types.Move{TargetX: 1, Rotation: types.Right}
	if !b.CanPlace(m.TargetX, m.Rotation) {
		t.Fatalf("oracle rejected %v", m)
	}
	turn, err := s.Play(m)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if turn.Placed {
		t.Fatal("Placed = true for a sub landing in a full column")
	}
	after := s.Board()
	if after.Cell(1, 13) != types.Empty {
		t.Fatal("discarded pair left a cell behind")
	}
	if got := activePair(after); got != yb {
		t.Fatalf("active = %+v, want the queue to advance to %+v", got, yb)
	}
}

func TestCommitDropsSteeredPiece(t *testing.T) {
	s := NewSession(board.DefaultHeight, board.DefaultWidth, &cycleSource{pairs: []types.Pair{rg}})
	s.MoveLeft()
	s.MoveLeft()
	s.RotateRight()
	if _, err := s.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	b := s.Board()
	if b.Cell(0, 13) != types.Red || b.Cell(1, 13) != types.Green {
		t.Fatalf("steered piece landed wrong:\n%s", notation.Format(b))
	}
}

func TestStepNeedsAI(t *testing.T) {
	s := NewSession(board.DefaultHeight, board.DefaultWidth, &cycleSource{pairs: []types.Pair{rg}})
	if _, err := s.Step(); !errors.Is(err, ErrNoAI) {
		t.Fatalf("got %v, want ErrNoAI", err)
	}
}

func TestRandomAIPlaysToTheEnd(t *testing.T) {
	ai, err := NewAI(Random, 3)
	if err != nil {
		t.Fatalf("NewAI: %v", err)
	}
	s := NewSession(board.DefaultHeight, board.DefaultWidth, NewRandomSource(11))
	s.SetAI(ai)
	prev := 0
	for i := 0; i < 2000 && !s.GameOver(); i++ {
		turn, err := s.Step()
		if err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
		if s.Score() < prev {
			t.Fatalf("turn %d: score dropped from %d to %d", turn.Number, prev, s.Score())
		}
		prev = s.Score()
	}
	if _, err := s.Step(); s.GameOver() && !errors.Is(err, ErrGameOver) {
		t.Fatalf("got %v after game over, want ErrGameOver", err)
	}
}

func TestResetStartsOver(t *testing.T) {
	s := NewSession(board.DefaultHeight, board.DefaultWidth, &cycleSource{pairs: []types.Pair{rg, yb}})
	if _, err := s.Play(types.Move{TargetX: 0, Rotation: types.Up}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	s.Reset(&cycleSource{pairs: []types.Pair{bg}})
	if s.Turns() != 0 || s.Score() != 0 || s.GameOver() {
		t.Fatalf("after reset: turns=%d score=%d over=%t", s.Turns(), s.Score(), s.GameOver())
	}
	b := s.Board()
	if h := b.Heights(); h[0] != 0 {
		t.Fatalf("column 0 height = %d after reset, want 0", h[0])
	}
	if p := b.Active(); p.Center != bg.Center || p.Sub != bg.Sub {
		t.Fatalf("active = %+v, want a pair from the new source", p)
	}
}

func TestShortFieldEndsInGameOver(t *testing.T) {
	ai, err := NewAI(Random, 9)
	if err != nil {
		t.Fatalf("NewAI: %v", err)
	}
	s := NewSession(8, board.DefaultWidth, NewRandomSource(5))
	s.SetAI(ai)
	discarded := 0
	for i := 0; i < 2000 && !s.GameOver(); i++ {
		turn, err := s.Step()
		if errors.Is(err, engine.ErrNoLegalPlacement) || errors.Is(err, ErrGameOver) {
			break
		}
		if err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
		if !turn.Placed {
			discarded++
		}
	}
	if !s.GameOver() {
		t.Fatalf("no game over after 2000 turns on an 8-row field, %d pairs discarded, heights %v",
			discarded, s.Board().Heights())
	}
	for _, m := range engine.ValidMoves(s.Board()) {
		t.Errorf("game over with legal move %v left", m)
	}
}
