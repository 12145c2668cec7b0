//go:build ebiten

package render

import (
	"image"
	"image/color"

	"vidslide/internal/puzzle"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Screen renders a puzzle onto an ebiten image using a GPU back buffer.
type Screen struct {
	dst  *ebiten.Image
	back *ebiten.Image
	buf  []byte
	face font.Face
}

var _ puzzle.Renderer = (*Screen)(nil)

// NewScreen returns a renderer drawing onto dst.
func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst, face: basicfont.Face7x13}
}

// Capture uploads frame into the back buffer.
func (s *Screen) Capture(frame *image.RGBA) {
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if s.back == nil || s.back.Bounds().Dx() != w || s.back.Bounds().Dy() != h {
		s.back = ebiten.NewImage(w, h)
	}
	pix := frame.Pix
	if frame.Stride != 4*w || b.Min != (image.Point{}) {
		if len(s.buf) != 4*w*h {
			s.buf = make([]byte, 4*w*h)
		}
		for y := 0; y < h; y++ {
			off := frame.PixOffset(b.Min.X, b.Min.Y+y)
			copy(s.buf[y*4*w:(y+1)*4*w], frame.Pix[off:off+4*w])
		}
		pix = s.buf
	}
	s.back.WritePixels(pix[:4*w*h])
}

// Clear wipes the display image.
func (s *Screen) Clear() { s.dst.Clear() }

// CopyRect draws the from region of the back buffer at (toX, toY).
func (s *Screen) CopyRect(from puzzle.Rect, toX, toY float64) {
	if s.back == nil {
		return
	}
	sub, ok := s.back.SubImage(pixelRect(from)).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(round(toX)), float64(round(toY)))
	s.dst.DrawImage(sub, op)
}

// StrokeRect draws a one pixel border along rect.
func (s *Screen) StrokeRect(r puzzle.Rect, c color.Color) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}

// FillRect blends c over r.
func (s *Screen) FillRect(r puzzle.Rect, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawText draws str with its baseline starting at (x, y), magnified by scale.
func (s *Screen) DrawText(str string, x, y, scale float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(round(x)), float64(round(y)))
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(s.dst, str, s.face, op)
}

// MeasureText returns the bounding size of str.
func (s *Screen) MeasureText(str string) (float64, float64) {
	b := text.BoundString(s.face, str)
	return float64(b.Dx()), float64(b.Dy())
}
