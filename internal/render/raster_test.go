package render

import (
	"image"
	"image/color"
	"testing"

	"vidslide/internal/puzzle"
)

// quadrantSource is a 2x2-tile frame where each quadrant has its own color.
type quadrantSource struct {
	frame *image.RGBA
}

var quadrantColors = []color.RGBA{
	{R: 200, A: 255},
	{G: 200, A: 255},
	{B: 200, A: 255},
	{R: 200, G: 200, A: 255},
}

func newQuadrantSource(w, h int) *quadrantSource {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			q := 0
			if x >= w/2 {
				q++
			}
			if y >= h/2 {
				q += 2
			}
			img.SetRGBA(x, y, quadrantColors[q])
		}
	}
	return &quadrantSource{frame: img}
}

func (q *quadrantSource) FrameSize() (int, int, bool) {
	b := q.frame.Bounds()
	return b.Dx(), b.Dy(), true
}
func (q *quadrantSource) Advancing() bool    { return true }
func (q *quadrantSource) Frame() *image.RGBA { return q.frame }

func TestRasterRendersBoard(t *testing.T) {
	src := newQuadrantSource(40, 40)
	g, err := puzzle.NewGame(2, src, puzzle.WithBorderColor(color.White))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	r := NewRaster(40, 40)
	if !g.Tick(r) {
		t.Fatal("Tick did not draw")
	}
	img := r.Image()

	if got := img.RGBAAt(10, 10); got != quadrantColors[0] {
		t.Fatalf("slot 0 centre = %v, want tile 0 color", got)
	}
	if got := img.RGBAAt(30, 10); got != quadrantColors[1] {
		t.Fatalf("slot 1 centre = %v, want tile 1 color", got)
	}
	if got := img.RGBAAt(30, 30); got != (color.RGBA{}) {
		t.Fatalf("gap centre = %v, want cleared", got)
	}
	if got := img.RGBAAt(30, 20); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("gap border = %v, want white", got)
	}

	// Slide tile 1 down into the gap and redraw.
	g.Click(30, 10, 40, 40)
	g.Tick(r)
	if got := r.Image().RGBAAt(30, 30); got != quadrantColors[1] {
		t.Fatalf("slot 3 centre after move = %v, want tile 1 color", got)
	}
	if got := r.Image().RGBAAt(30, 10); got != (color.RGBA{}) {
		t.Fatalf("slot 1 centre after move = %v, want cleared", got)
	}
}

func TestRasterBannerShadesFrame(t *testing.T) {
	src := newQuadrantSource(120, 60)
	g, _ := puzzle.NewGame(2, src)
	g.Tick(NewRaster(120, 60))
	g.Board().CheckWinCondition()

	r := NewRaster(120, 60)
	g.Tick(r)
	got := r.Image().RGBAAt(5, 5)
	if got == quadrantColors[0] || got.R == 0 {
		t.Fatalf("won frame should be shaded, got %v", got)
	}
}

func TestRasterMeasureText(t *testing.T) {
	r := NewRaster(10, 10)
	w, h := r.MeasureText("Winner!")
	if w != 7*7 || h != 13 {
		t.Fatalf("MeasureText = %gx%g, want 49x13", w, h)
	}
}

func TestRasterScalesText(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	count := func(scale float64) (n, right int) {
		r := NewRaster(200, 80)
		r.DrawText("Winner!", 10, 50, scale, red)
		img := r.Image()
		for y := 0; y < 80; y++ {
			for x := 0; x < 200; x++ {
				if img.RGBAAt(x, y) == red {
					n++
					right = max(right, x)
				}
			}
		}
		return n, right
	}

	n1, right1 := count(1)
	n3, right3 := count(3)
	if n1 == 0 {
		t.Fatal("unscaled text drew nothing")
	}
	if n3 != 9*n1 {
		t.Fatalf("scale 3 drew %d pixels, want %d", n3, 9*n1)
	}
	if right3-10 < 3*(right1-10) {
		t.Fatalf("scaled text ends at x=%d, unscaled at x=%d", right3, right1)
	}
}

func TestCopyRectWithoutCapture(t *testing.T) {
	r := NewRaster(4, 4)
	r.CopyRect(puzzle.Rect{W: 2, H: 2}, 0, 0)
	if got := r.Image().RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Fatalf("CopyRect before Capture drew %v", got)
	}
}
