package render

import (
	"image"
	"image/color"
	"image/draw"

	"vidslide/internal/puzzle"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster renders a puzzle into an in-memory RGBA image. It needs no window or
// GPU and is used for snapshots and tests.
type Raster struct {
	dst  *image.RGBA
	back *image.RGBA
	face font.Face
}

var _ puzzle.Renderer = (*Raster)(nil)

// NewRaster allocates a w x h display surface.
func NewRaster(w, h int) *Raster {
	return &Raster{
		dst:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: basicfont.Face7x13,
	}
}

// Image returns the display surface.
func (r *Raster) Image() *image.RGBA { return r.dst }

// Capture copies frame into the back buffer, reallocating it when the frame
// size changes.
func (r *Raster) Capture(frame *image.RGBA) {
	b := frame.Bounds()
	if r.back == nil || r.back.Bounds().Size() != b.Size() {
		r.back = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(r.back, r.back.Bounds(), frame, b.Min, draw.Src)
}

// Clear wipes the display surface to transparent black.
func (r *Raster) Clear() {
	draw.Draw(r.dst, r.dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// CopyRect copies from of the back buffer to (toX, toY).
func (r *Raster) CopyRect(from puzzle.Rect, toX, toY float64) {
	if r.back == nil {
		return
	}
	sr := pixelRect(from)
	dp := image.Pt(round(toX), round(toY))
	draw.Draw(r.dst, image.Rectangle{Min: dp, Max: dp.Add(sr.Size())}, r.back, sr.Min, draw.Src)
}

// StrokeRect draws a one pixel border just inside rect.
func (r *Raster) StrokeRect(rect puzzle.Rect, c color.Color) {
	pr := pixelRect(rect)
	if pr.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(pr.Min.X, pr.Min.Y, pr.Max.X, pr.Min.Y+1),
		image.Rect(pr.Min.X, pr.Max.Y-1, pr.Max.X, pr.Max.Y),
		image.Rect(pr.Min.X, pr.Min.Y, pr.Min.X+1, pr.Max.Y),
		image.Rect(pr.Max.X-1, pr.Min.Y, pr.Max.X, pr.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(r.dst, e, src, image.Point{}, draw.Over)
	}
}

// FillRect blends c over rect.
func (r *Raster) FillRect(rect puzzle.Rect, c color.Color) {
	draw.Draw(r.dst, pixelRect(rect), image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawText draws s with its baseline starting at (x, y). Scaled text is
// rendered at font size first, then magnified by scale rounded to a whole
// number with nearest-neighbour sampling.
func (r *Raster) DrawText(s string, x, y, scale float64, c color.Color) {
	if scale <= 1 {
		d := &font.Drawer{
			Dst:  r.dst,
			Src:  image.NewUniform(c),
			Face: r.face,
			Dot:  fixed.P(round(x), round(y)),
		}
		d.DrawString(s)
		return
	}

	b, _ := font.BoundString(r.face, s)
	gb := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if gb.Empty() {
		return
	}
	glyphs := image.NewRGBA(gb)
	d := &font.Drawer{Dst: glyphs, Src: image.NewUniform(c), Face: r.face}
	d.DrawString(s)

	ox, oy := round(x), round(y)
	k := round(scale)
	dr := image.Rect(ox+gb.Min.X*k, oy+gb.Min.Y*k, ox+gb.Max.X*k, oy+gb.Max.Y*k)
	xdraw.NearestNeighbor.Scale(r.dst, dr, glyphs, gb, xdraw.Over, nil)
}

// MeasureText returns the advance width and line height of s.
func (r *Raster) MeasureText(s string) (float64, float64) {
	w := font.MeasureString(r.face, s).Round()
	h := r.face.Metrics().Height.Round()
	return float64(w), float64(h)
}
