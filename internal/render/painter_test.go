package render

import (
	"image/color"
	"testing"
)

func TestCellPainterScalesCells(t *testing.T) {
	pal := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}, {B: 3, A: 255}}
	cp := NewCellPainter(2, 2, 3, pal)
	if w, h := cp.Size(); w != 6 || h != 6 {
		t.Fatalf("Size() = %dx%d, want 6x6", w, h)
	}

	img := cp.Paint([]uint8{0, 1, 2, 9})

	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, pal[0]},
		{2, 2, pal[0]},
		{3, 0, pal[1]},
		{5, 2, pal[1]},
		{0, 3, pal[2]},
		{4, 4, pal[2]}, // out-of-range value clamps to the last entry
	}
	for _, tc := range cases {
		if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCellPainterIgnoresWrongLength(t *testing.T) {
	cp := NewCellPainter(2, 1, 1, nil)
	cp.Paint([]uint8{1, 0})
	cp.Paint([]uint8{0})
	if got := cp.Frame().RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("short cell slice overwrote the frame: %v", got)
	}
}
