package render

import (
	"image"
	"image/color"
)

// CellPainter turns a grid of palette indices into an RGBA frame, drawing
// each cell as a square block of pixels.
type CellPainter struct {
	w, h    int
	scale   int
	img     *image.RGBA
	palette []color.RGBA
}

// NewCellPainter allocates a painter for a w x h grid. A nil palette falls
// back to white-on-black.
func NewCellPainter(w, h, scale int, palette []color.RGBA) *CellPainter {
	if scale <= 0 {
		scale = 1
	}
	if len(palette) == 0 {
		palette = binaryPalette(color.White, color.Black)
	}
	return &CellPainter{
		w:       w,
		h:       h,
		scale:   scale,
		img:     image.NewRGBA(image.Rect(0, 0, w*scale, h*scale)),
		palette: palette,
	}
}

// Paint renders cells into the painter's frame and returns it. Calls with
// the wrong number of cells leave the previous frame untouched.
func (cp *CellPainter) Paint(cells []uint8) *image.RGBA {
	if len(cells) == cp.w*cp.h {
		fillPaletteRGBA(cp.img, cells, cp.w, cp.h, cp.scale, cp.palette)
	}
	return cp.img
}

// Frame returns the last painted frame.
func (cp *CellPainter) Frame() *image.RGBA { return cp.img }

// Size returns the frame dimensions in pixels.
func (cp *CellPainter) Size() (int, int) { return cp.w * cp.scale, cp.h * cp.scale }
