package puzzle

import "image/color"

// Slot is a fixed board position that holds at most one tile.
type Slot struct {
	col, row int
	bounds   Rect

	tile *Tile
}

// Pos returns the slot's column and row on the board.
func (s *Slot) Pos() (col, row int) { return s.col, s.row }

// Bounds returns the slot's rectangle in frame coordinates.
func (s *Slot) Bounds() Rect { return s.bounds }

// Tile returns the tile held by the slot, if any.
func (s *Slot) Tile() (Tile, bool) {
	if s.tile == nil {
		return Tile{}, false
	}
	return *s.tile, true
}

// Empty reports whether the slot is the gap.
func (s *Slot) Empty() bool { return s.tile == nil }

// Index returns the row-major index of the slot on a board with the given
// number of rows.
func (s *Slot) Index(rows int) int { return s.row*rows + s.col }

// HitTest reports whether the point lies strictly inside the slot.
func (s *Slot) HitTest(px, py float64) bool {
	return s.bounds.Contains(px, py)
}

// Render copies the held tile's excerpt into the slot and strokes its border.
func (s *Slot) Render(p Painter, border color.Color) {
	if s.tile != nil {
		p.CopyRect(s.tile.Bounds, s.bounds.X, s.bounds.Y)
	}
	p.StrokeRect(s.bounds, border)
}
