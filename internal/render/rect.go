package render

import (
	"image"
	"math"

	"vidslide/internal/puzzle"
)

// pixelRect snaps a frame rectangle to whole pixels. Neighbouring rectangles
// that share an edge snap to the same pixel column or row.
func pixelRect(r puzzle.Rect) image.Rectangle {
	return image.Rect(round(r.X), round(r.Y), round(r.X+r.W), round(r.Y+r.H))
}

func round(v float64) int { return int(math.Round(v)) }
