package puzzle

// Tile is an excerpt of the source frame. ID is its index in solved order and
// never changes; Bounds is the rectangle of the frame the tile shows.
type Tile struct {
	ID     int
	Bounds Rect
}
