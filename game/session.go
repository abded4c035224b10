// Package game drives a puyo session: it deals pairs, applies moves from the
// player or an AI to the live board, resolves chains and detects game over.
package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"puyoterm/board"
	"puyoterm/engine"
	"puyoterm/notation"
	"puyoterm/types"
)

var debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)

// SetDebugLog directs session tracing to w.
func SetDebugLog(w io.Writer) {
	debugLog.SetOutput(w)
}

var (
	ErrGameOver         = errors.New("game is over")
	ErrIllegalPlacement = errors.New("illegal placement")
	ErrNoAI             = errors.New("no AI selected")
)

// Pass is one erasing step of a turn.
type Pass struct {
	Info   types.ChainInfo
	Points int

	// Board is a snapshot taken after the pass's gravity.
	Board *board.Board
}

// Turn describes one placed piece and everything it triggered.
type Turn struct {
	Number int
	Move   types.Move

	// Placed is false when the oracle accepted the move but the pair found
	// no room. The pair is discarded and the queue still advances.
	Placed bool

	Passes   []Pass
	Chain    int
	Points   int
	GameOver bool
}

// Session owns the live board. All methods are safe for concurrent use.
type Session struct {
	height, width int
	src           board.PairSource
	board         *board.Board
	ai            engine.AI
	turns         int
	gameOver      bool

	turnCallback func(Turn)
	endCallback  func(score int)

	mu sync.Mutex
}

// NewSession starts a game on an empty field with pairs dealt from src.
func NewSession(height, width int, src board.PairSource) *Session {
	s := &Session{height: height, width: width, src: src}
	s.start()
	return s
}

// resumeSession continues a game from b, whose active piece and queue must
// already be set. Later pairs are dealt from src.
func resumeSession(b *board.Board, src board.PairSource) *Session {
	s := &Session{height: b.Height(), width: b.Width(), src: src, board: b}
	s.gameOver = len(engine.ValidMoves(b)) == 0
	return s
}

// start deals until the active piece and both queue slots hold real pairs.
func (s *Session) start() {
	s.board = board.New(s.height, s.width)
	for i := 0; i < 3; i++ {
		s.board.Advance(s.src)
	}
	s.turns = 0
	s.gameOver = false
	debugLog.Printf("session: new %dx%d game, active %s next %s %s",
		s.height, s.width, notation.FormatPair(activePair(s.board)),
		notation.FormatPair(s.board.Next()[0]), notation.FormatPair(s.board.Next()[1]))
}

// Reset starts over on an empty field. A nil src keeps the current source.
func (s *Session) Reset(src board.PairSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if src != nil {
		s.src = src
	}
	s.start()
}

// Board returns a snapshot of the live board.
func (s *Session) Board() *board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Score()
}

// Turns returns the number of pieces placed so far.
func (s *Session) Turns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turns
}

func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver
}

// AI returns the AI in control, or nil for manual play.
func (s *Session) AI() engine.AI {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ai
}

// SetAI hands control to ai. A nil ai returns control to the player.
func (s *Session) SetAI(ai engine.AI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ai = ai
	if ai != nil {
		debugLog.Printf("session: %s in control", ai.Name())
	} else {
		debugLog.Printf("session: player in control")
	}
}

// OnTurn registers a callback run after every placed piece.
func (s *Session) OnTurn(callback func(Turn)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turnCallback = callback
}

// OnGameEnd registers a callback run once when the game ends.
func (s *Session) OnGameEnd(callback func(score int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endCallback = callback
}

// steer applies a manual control to the active piece.
func (s *Session) steer(f func(*board.Board)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gameOver {
		return
	}
	f(s.board)
}

func (s *Session) MoveLeft()    { s.steer((*board.Board).MoveLeft) }
func (s *Session) MoveRight()   { s.steer((*board.Board).MoveRight) }
func (s *Session) RotateLeft()  { s.steer((*board.Board).RotateLeft) }
func (s *Session) RotateRight() { s.steer((*board.Board).RotateRight) }

// Commit drops the manually steered piece where it stands. It fails with
// ErrIllegalPlacement if the piece may not be introduced there.
func (s *Session) Commit() (Turn, error) {
	s.mu.Lock()
	p := s.board.Active()
	s.mu.Unlock()
	return s.Play(types.Move{TargetX: p.X, Rotation: p.Rot})
}

// Play places the active piece at m, resolves every chain it causes and
// deals the next pair.
func (s *Session) Play(m types.Move) (Turn, error) {
	s.mu.Lock()
	if s.gameOver {
		s.mu.Unlock()
		return Turn{}, ErrGameOver
	}
	if !s.board.CanPlace(m.TargetX, m.Rotation) {
		s.mu.Unlock()
		return Turn{}, fmt.Errorf("%w: %v", ErrIllegalPlacement, m)
	}

	p := s.board.Active()
	s.board.SetActive(p.Center, p.Sub, m.TargetX, 0, m.Rotation)
	placed := s.board.Drop()
	if !placed {
		debugLog.Printf("turn %d: %v does not fit, pair discarded", s.turns+1, m)
	}
	turn := s.resolve(m)
	turn.Placed = placed
	turnCallback, endCallback := s.turnCallback, s.endCallback
	score := s.board.Score()
	s.mu.Unlock()

	// Notify outside the lock so callbacks may query the session.
	if turnCallback != nil {
		turnCallback(turn)
	}
	if turn.GameOver && endCallback != nil {
		endCallback(score)
	}
	return turn, nil
}

// resolve runs chain passes until nothing erases, then advances the queue.
// Must be called while holding the lock.
func (s *Session) resolve(m types.Move) Turn {
	turn := Turn{Number: s.turns + 1, Move: m}
	depth := 0
	for {
		info := s.board.EraseChains(depth)
		if !info.Erased {
			break
		}
		depth = info.ChainCount
		s.board.SetChainSize(depth)
		points := s.board.AddScore(info)
		s.board.ApplyGravity()
		turn.Passes = append(turn.Passes, Pass{Info: info, Points: points, Board: s.board.Clone()})
		turn.Points += points
		debugLog.Printf("turn %d: pass %v for %d points", turn.Number, info, points)
	}
	turn.Chain = depth
	s.board.SetChainSize(0)

	s.board.Advance(s.src)
	s.turns++
	if len(engine.ValidMoves(s.board)) == 0 {
		s.gameOver = true
	}
	turn.GameOver = s.gameOver

	debugLog.Printf("turn %d: %v chain %d, %d points, score %d\n%s",
		turn.Number, m, turn.Chain, turn.Points, s.board.Score(), notation.Format(s.board))
	if s.gameOver {
		debugLog.Printf("session: game over after %d turns, score %d", s.turns, s.board.Score())
	}
	return turn
}

// Decide asks the AI for a move against a private copy of the board without
// playing it.
func (s *Session) Decide() (types.Move, error) {
	s.mu.Lock()
	ai := s.ai
	if ai == nil {
		s.mu.Unlock()
		return types.Move{}, ErrNoAI
	}
	if s.gameOver {
		s.mu.Unlock()
		return types.Move{}, ErrGameOver
	}
	view := s.board.Clone()
	s.mu.Unlock()

	m, err := ai.Decide(engine.Context{Board: view})
	if err != nil {
		if errors.Is(err, engine.ErrNoLegalPlacement) {
			s.endGame()
		}
		return types.Move{}, fmt.Errorf("%s: %w", ai.Name(), err)
	}
	debugLog.Printf("decide: %s chose %v for %s", ai.Name(), m, notation.FormatPair(activePair(view)))
	return m, nil
}

// endGame marks the game over and notifies the end callback once.
func (s *Session) endGame() {
	s.mu.Lock()
	if s.gameOver {
		s.mu.Unlock()
		return
	}
	s.gameOver = true
	endCallback := s.endCallback
	score := s.board.Score()
	s.mu.Unlock()
	if endCallback != nil {
		endCallback(score)
	}
}

// Step lets the AI decide and plays its move synchronously.
func (s *Session) Step() (Turn, error) {
	m, err := s.Decide()
	if err != nil {
		return Turn{}, err
	}
	return s.Play(m)
}

func activePair(b *board.Board) types.Pair {
	p := b.Active()
	return types.Pair{Center: p.Center, Sub: p.Sub}
}
