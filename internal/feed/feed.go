// Package feed provides the frame sources a puzzle is cut from: live
// cellular-automaton sims, still images, and animated GIFs.
package feed

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"strings"

	"vidslide/internal/core"
	"vidslide/internal/puzzle"

	"github.com/sirupsen/logrus"
)

// ErrUnknownSource is returned by Open for names that are neither a
// registered sim nor an image path.
var ErrUnknownSource = errors.New("feed: unknown source")

// Feed is a puzzle.FrameSource the host advances once per update.
type Feed interface {
	puzzle.FrameSource

	Name() string
	// Update advances the feed according to wall-clock time.
	Update()
	SetPaused(paused bool)
	Paused() bool
	// Ended reports whether a non-looping feed has shown its last frame.
	Ended() bool
}

// Options configures Open.
type Options struct {
	// Scale is the pixel size of one sim cell.
	Scale int

	// TPS is the sim step rate.
	TPS int

	Seed int64

	// Loop restarts animations after their last frame.
	Loop bool

	// Sim holds flag-style options passed to the sim factory.
	Sim map[string]string

	Log logrus.FieldLogger
}

// Open resolves src to a feed: a registered sim name, a .gif path, or any
// other image path.
func Open(src string, opts Options) (Feed, error) {
	f, err := open(src, opts)
	if err != nil {
		return nil, err
	}
	if opts.Log != nil {
		w, h, _ := f.FrameSize()
		opts.Log.WithFields(logrus.Fields{
			"feed":    f.Name(),
			"frame_w": w,
			"frame_h": h,
		}).Info("feed opened")
	}
	return f, nil
}

func open(src string, opts Options) (Feed, error) {
	if factory, ok := core.Lookup(src); ok {
		sim := factory(opts.Sim)
		sim.Reset(opts.Seed)
		return NewSimFeed(sim, opts.Scale, opts.TPS), nil
	}
	switch strings.ToLower(filepath.Ext(src)) {
	case "":
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, src)
	case ".gif":
		return OpenAnim(src, opts.Loop)
	default:
		return OpenStill(src)
	}
}

// toRGBA copies img into a new RGBA image whose bounds start at the origin.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
