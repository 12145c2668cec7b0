package render

import (
	"image"
	"image/color"
)

// fillPaletteRGBA writes cells into dst, drawing each cell as a scale x scale
// block. Values past the end of the palette use its last entry; an empty
// palette clears dst to transparent black.
func fillPaletteRGBA(dst *image.RGBA, cells []uint8, w, h, scale int, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(dst.Pix)
		return
	}
	last := len(palette) - 1
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			idx := int(cells[cy*w+cx])
			if idx > last {
				idx = last
			}
			col := palette[idx]
			for py := cy * scale; py < (cy+1)*scale; py++ {
				row := dst.PixOffset(cx*scale, py)
				for px := 0; px < scale; px++ {
					base := row + px*4
					dst.Pix[base+0] = col.R
					dst.Pix[base+1] = col.G
					dst.Pix[base+2] = col.B
					dst.Pix[base+3] = col.A
				}
			}
		}
	}
}

// binaryPalette builds a two-entry palette from arbitrary colors.
func binaryPalette(on, off color.Color) []color.RGBA {
	return []color.RGBA{toRGBA(off), toRGBA(on)}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
