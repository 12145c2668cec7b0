package puzzle

import (
	"image"
	"image/color"
)

// FrameSource supplies the frames the board is cut from.
type FrameSource interface {
	// FrameSize reports the intrinsic frame size once it is known.
	FrameSize() (w, h int, ok bool)
	// Advancing reports whether the source is currently producing frames.
	// Paused and ended sources return false.
	Advancing() bool
	// Frame returns the current frame. Callers must not retain it across
	// ticks.
	Frame() *image.RGBA
}

// Painter is the part of a renderer a Slot needs.
type Painter interface {
	// CopyRect copies a rectangle of the back buffer to (toX, toY) on the
	// display surface.
	CopyRect(from Rect, toX, toY float64)
	StrokeRect(r Rect, c color.Color)
}

// Renderer draws the board onto a display surface.
type Renderer interface {
	Painter

	// Capture snapshots frame into the renderer's back buffer.
	Capture(frame *image.RGBA)
	Clear()
	FillRect(r Rect, c color.Color)
	// DrawText draws s with its baseline origin at (x, y), magnified by
	// scale.
	DrawText(s string, x, y, scale float64, c color.Color)
	// MeasureText returns the unscaled size of s.
	MeasureText(s string) (w, h float64)
}
