package board

import "puyoterm/types"

// Spawn makes (center, sub) the active piece at the spawn point, sub up.
func (b *Board) Spawn(center, sub types.Cell) {
	b.SetActive(center, sub, SpawnX, SpawnY, types.Up)
}

// SetActive places the active piece explicitly.
func (b *Board) SetActive(center, sub types.Cell, x, y int, rot types.Rotation) {
	b.active = types.Piece{X: x, Y: y, Rot: rot & 3, Center: center, Sub: sub}
}

// Active returns a copy of the active piece.
func (b *Board) Active() types.Piece {
	return b.active
}

// MoveLeft shifts the piece one column left unless a cell would leave the field.
func (b *Board) MoveLeft() {
	if b.active.X-1 >= 0 && b.active.X+b.active.Dx()-1 >= 0 {
		b.active.X--
	}
}

// MoveRight shifts the piece one column right unless a cell would leave the field.
func (b *Board) MoveRight() {
	if b.active.X+1 < b.width && b.active.X+b.active.Dx()+1 < b.width {
		b.active.X++
	}
}

// RotateRight turns the piece clockwise.
func (b *Board) RotateRight() {
	b.rotate(b.active.Rot.Clockwise())
}

// RotateLeft turns the piece counter-clockwise.
func (b *Board) RotateLeft() {
	b.rotate(b.active.Rot.CounterClockwise())
}

// rotate applies the fixed transition rules: entering Down lifts the center
// one row, leaving Down lowers it one row, and a sub pushed past a side wall
// kicks the center the other way.
func (b *Board) rotate(to types.Rotation) {
	from := b.active.Rot
	switch {
	case to == types.Down:
		b.active.Y--
	case from == types.Down:
		b.active.Y++
	}
	b.active.Rot = to
	if !to.Horizontal() {
		return
	}

	sx := b.active.X + b.active.Dx()
	if sx < 0 {
		b.active.X++
	} else if sx >= b.width {
		b.active.X--
	}
}
