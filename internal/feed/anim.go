package feed

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"time"
)

// defaultDelay is used for GIF frames that declare no delay.
const defaultDelay = 100 * time.Millisecond

// Anim plays a decoded GIF. Frames are composited up front so each one is a
// complete picture.
type Anim struct {
	name   string
	frames []*image.RGBA
	delays []time.Duration
	loop   bool

	idx     int
	elapsed time.Duration
	last    time.Time
	paused  bool
	ended   bool
}

// NewAnim composites g. When loop is false the feed ends after the last
// frame.
func NewAnim(name string, g *gif.GIF, loop bool) (*Anim, error) {
	if g == nil || len(g.Image) == 0 {
		return nil, errors.New("feed: animation has no frames")
	}
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = image.Rectangle{}
		for _, pm := range g.Image {
			bounds = bounds.Union(pm.Bounds())
		}
	}

	a := &Anim{name: name, loop: loop}
	canvas := image.NewRGBA(bounds)
	for i, pm := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var prev *image.RGBA
		if disposal == gif.DisposalPrevious {
			prev = cloneRGBA(canvas)
		}

		draw.Draw(canvas, pm.Bounds(), pm, pm.Bounds().Min, draw.Over)
		a.frames = append(a.frames, toRGBA(canvas))

		delay := defaultDelay
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		a.delays = append(a.delays, delay)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, pm.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = prev
		}
	}
	return a, nil
}

// OpenAnim decodes the GIF at path.
func OpenAnim(path string, loop bool) (*Anim, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open animation: %w", err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return NewAnim(filepath.Base(path), g, loop)
}

// Name returns the file name.
func (a *Anim) Name() string { return a.name }

// FrameSize returns the logical screen size of the animation.
func (a *Anim) FrameSize() (int, int, bool) {
	b := a.frames[0].Bounds()
	return b.Dx(), b.Dy(), true
}

// Advancing reports whether frames are still playing.
func (a *Anim) Advancing() bool { return !a.paused && !a.ended }

// Frame returns the current frame.
func (a *Anim) Frame() *image.RGBA { return a.frames[a.idx] }

// Index returns the current frame number.
func (a *Anim) Index() int { return a.idx }

// Update advances by the wall-clock time since the previous call.
func (a *Anim) Update() {
	now := time.Now()
	if a.last.IsZero() {
		a.last = now
	}
	delta := now.Sub(a.last)
	a.last = now
	a.Advance(delta)
}

// Advance moves playback forward by delta, skipping frames whose delay has
// fully elapsed.
func (a *Anim) Advance(delta time.Duration) {
	if a.paused || a.ended {
		return
	}
	a.elapsed += delta
	for a.elapsed >= a.delays[a.idx] {
		a.elapsed -= a.delays[a.idx]
		if a.idx == len(a.frames)-1 {
			if !a.loop {
				a.ended = true
				a.elapsed = 0
				return
			}
			a.idx = 0
			continue
		}
		a.idx++
	}
}

// SetPaused pauses or resumes playback. Resuming does not count the time
// spent paused.
func (a *Anim) SetPaused(paused bool) {
	if a.paused && !paused {
		a.last = time.Time{}
	}
	a.paused = paused
}

// Paused reports whether playback is paused.
func (a *Anim) Paused() bool { return a.paused }

// Ended reports whether a non-looping animation has finished.
func (a *Anim) Ended() bool { return a.ended }

// Rewind restarts playback from the first frame.
func (a *Anim) Rewind() {
	a.idx = 0
	a.elapsed = 0
	a.ended = false
	a.last = time.Time{}
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}
