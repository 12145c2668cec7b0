package puzzle

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Board owns the slots and the canonical tile order of one puzzle. Slots are
// stored row-major; tile k belongs in slot k and the last slot is the gap in
// the solved arrangement.
type Board struct {
	rows   int
	frameW int
	frameH int

	slots []*Slot
	tiles []*Tile

	attached bool
	won      bool
	moves    int

	opts options
	log  logrus.FieldLogger
}

// NewBoard creates a board with rows x rows slots. Geometry is unknown until
// Attach is called with the frame size.
func NewBoard(rows int, opts ...Option) (*Board, error) {
	if rows < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRows, rows)
	}
	return newBoard(rows, newOptions(opts)), nil
}

func newBoard(rows int, o options) *Board {
	return &Board{rows: rows, opts: o, log: o.log}
}

// Attach builds tiles and slots for a width x height frame. It may only be
// called once per board.
func (b *Board) Attach(width, height int) error {
	if b.attached {
		return ErrAlreadyAttached
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidFrame, width, height)
	}

	n := b.rows
	tw := float64(width) / float64(n)
	th := float64(height) / float64(n)

	b.tiles = make([]*Tile, n*n-1)
	for i := range b.tiles {
		b.tiles[i] = &Tile{
			ID:     i,
			Bounds: Rect{X: float64(i%n) * tw, Y: float64(i/n) * th, W: tw, H: th},
		}
	}

	b.slots = make([]*Slot, n*n)
	for i := range b.slots {
		x, y := i%n, i/n
		b.slots[i] = &Slot{
			col:    x,
			row:    y,
			bounds: Rect{X: float64(x) * tw, Y: float64(y) * th, W: tw, H: th},
		}
	}

	b.frameW, b.frameH = width, height
	b.attached = true

	if b.opts.shuffleOnAttach {
		b.place(Shuffle(b.tiles, b.opts.rng))
	} else {
		b.place(b.tiles)
	}
	b.assert("attach")
	return nil
}

// Reset shuffles the tiles across the slots, leaving the last slot empty, and
// clears the win latch.
func (b *Board) Reset() error {
	if !b.attached {
		return ErrNotAttached
	}
	b.place(Shuffle(b.tiles, b.opts.rng))
	b.won = false
	b.moves = 0
	b.assert("reset")
	return nil
}

// place assigns order positionally. Slots past the end of order are emptied.
func (b *Board) place(order []*Tile) {
	for i, s := range b.slots {
		if i < len(order) {
			s.tile = order[i]
			continue
		}
		s.tile = nil
	}
}

// EmptySlot returns the first slot without a tile.
func (b *Board) EmptySlot() (*Slot, error) {
	if !b.attached {
		return nil, ErrNotAttached
	}
	for _, s := range b.slots {
		if s.tile == nil {
			return s, nil
		}
	}
	return nil, ErrNoEmptySlot
}

// CanMove reports whether the tile in s may slide into the gap: s must be a
// different slot one step away from the gap along a row or a column, and the
// puzzle must not be won.
func (b *Board) CanMove(s *Slot) bool {
	if b.won || !b.owns(s) {
		return false
	}
	empty, err := b.EmptySlot()
	if err != nil {
		b.log.WithError(err).Error("cannot evaluate move")
		return false
	}
	if empty == s {
		return false
	}
	dx := absInt(s.col - empty.col)
	dy := absInt(s.row - empty.row)
	return (dy == 0 && dx == 1) || (dx == 0 && dy == 1)
}

// Move slides the tile in s into the gap. It reports whether a move happened.
func (b *Board) Move(s *Slot) bool {
	if !b.CanMove(s) {
		return false
	}
	empty, _ := b.EmptySlot()
	empty.tile, s.tile = s.tile, nil
	b.moves++
	b.assert("move")
	return true
}

// CheckWinCondition latches the won state when every slot but the last holds
// its own tile. Only Reset clears the latch.
func (b *Board) CheckWinCondition() bool {
	if !b.attached || b.won {
		return b.won
	}
	for i := 0; i < len(b.slots)-1; i++ {
		if b.slots[i].tile != b.tiles[i] {
			return false
		}
	}
	b.won = true
	return true
}

// SlotAt returns the slot containing the frame point (px, py), or nil.
func (b *Board) SlotAt(px, py float64) *Slot {
	for _, s := range b.slots {
		if s.HitTest(px, py) {
			return s
		}
	}
	return nil
}

// Validate checks that exactly one slot is empty and every tile is held by
// exactly one slot.
func (b *Board) Validate() error {
	if !b.attached {
		return ErrNotAttached
	}
	empty := 0
	for _, s := range b.slots {
		if s.tile == nil {
			empty++
		}
	}
	switch {
	case empty == 0:
		return ErrNoEmptySlot
	case empty > 1:
		return fmt.Errorf("%w: %d empty slots", ErrInvariant, empty)
	}

	seen := make([]bool, len(b.tiles))
	for i, s := range b.slots {
		if s.tile == nil {
			continue
		}
		id := s.tile.ID
		if id < 0 || id >= len(b.tiles) || b.tiles[id] != s.tile {
			return fmt.Errorf("%w: slot %d holds foreign tile %d", ErrInvariant, i, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: tile %d held twice", ErrInvariant, id)
		}
		seen[id] = true
	}
	return nil
}

func (b *Board) assert(op string) {
	if !b.opts.strict {
		return
	}
	if err := b.Validate(); err != nil {
		b.log.WithError(err).WithField("op", op).Error("board invariant violated")
		panic(fmt.Sprintf("puzzle: %s: %v", op, err))
	}
}

func (b *Board) owns(s *Slot) bool {
	if s == nil || !b.attached {
		return false
	}
	i := s.Index(b.rows)
	return i >= 0 && i < len(b.slots) && b.slots[i] == s
}

// Rows returns the number of rows (and columns).
func (b *Board) Rows() int { return b.rows }

// Attached reports whether the board geometry has been built.
func (b *Board) Attached() bool { return b.attached }

// FrameSize returns the frame size passed to Attach.
func (b *Board) FrameSize() (int, int) { return b.frameW, b.frameH }

// HasWon reports the latched win state.
func (b *Board) HasWon() bool { return b.won }

// Moves returns the number of moves since the last attach or reset.
func (b *Board) Moves() int { return b.moves }

// Slots exposes the slots in row-major order. Callers must not modify the
// slice.
func (b *Board) Slots() []*Slot { return b.slots }

// Tiles returns the tiles in solved order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	for i, t := range b.tiles {
		out[i] = *t
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
