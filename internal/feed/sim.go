package feed

import (
	"image"
	"image/color"

	"vidslide/internal/core"
	"vidslide/internal/render"
)

// SimFeed turns a running cellular automaton into a live video.
type SimFeed struct {
	sim     core.Sim
	painter *render.CellPainter
	pacer   *core.FixedStep
	paused  bool
	dirty   bool
}

// NewSimFeed wraps sim, drawing each cell as a scale x scale block and
// stepping tps times per second.
func NewSimFeed(sim core.Sim, scale, tps int) *SimFeed {
	var palette []color.RGBA
	if p, ok := sim.(core.Paletted); ok {
		palette = p.Palette()
	}
	size := sim.Size()
	return &SimFeed{
		sim:     sim,
		painter: render.NewCellPainter(size.W, size.H, scale, palette),
		pacer:   core.NewFixedStep(tps),
		dirty:   true,
	}
}

// Name returns the sim name.
func (f *SimFeed) Name() string { return f.sim.Name() }

// FrameSize is known as soon as the sim exists.
func (f *SimFeed) FrameSize() (int, int, bool) {
	w, h := f.painter.Size()
	return w, h, true
}

// Advancing reports whether the sim is running.
func (f *SimFeed) Advancing() bool { return !f.paused }

// Frame returns the current generation as pixels.
func (f *SimFeed) Frame() *image.RGBA {
	if f.dirty {
		f.painter.Paint(f.sim.Cells())
		f.dirty = false
	}
	return f.painter.Frame()
}

// Update steps the sim when its pacer says a tick is due.
func (f *SimFeed) Update() {
	if f.paused || !f.pacer.ShouldStep() {
		return
	}
	f.Step()
}

// Step advances the sim by one generation regardless of pacing.
func (f *SimFeed) Step() {
	f.sim.Step()
	f.dirty = true
}

// SetPaused pauses or resumes the sim.
func (f *SimFeed) SetPaused(paused bool) {
	if f.paused && !paused {
		f.pacer.Restart()
	}
	f.paused = paused
}

// Paused reports whether the sim is paused.
func (f *SimFeed) Paused() bool { return f.paused }

// Ended is always false; sims run forever.
func (f *SimFeed) Ended() bool { return false }
