package life

import (
	"image/color"
	"strconv"

	"vidslide/internal/core"
)

// Config controls the Life grid.
type Config struct {
	Width  int
	Height int
	// Reseed revives a random cell patch every Reseed generations so the
	// picture keeps moving after the soup settles. Zero disables it.
	Reseed int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, Reseed: 90}
}

// FromMap populates a Config from flag-style key/value pairs.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["reseed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Reseed = parsed
		}
	}
	return c
}

var palette = []color.RGBA{
	{R: 12, G: 16, B: 28, A: 255},
	{R: 120, G: 220, B: 150, A: 255},
}

// Life implements Conway's Game of Life on a torus.
type Life struct {
	cur, nxt *core.ByteGrid
	reseed   int
	gen      int
	rng      *core.RNG
}

// New returns a Life simulation with the provided dimensions.
func New(cfg Config) *Life {
	return &Life{
		cur:    core.NewByteGrid(cfg.Width, cfg.Height),
		nxt:    core.NewByteGrid(cfg.Width, cfg.Height),
		reseed: cfg.Reseed,
		rng:    core.NewRNG(0),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current generation.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Palette maps dead and live cells to colors.
func (l *Life) Palette() []color.RGBA { return palette }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.rng = core.NewRNG(seed)
	l.rng.FillBinary(l.cur.Cells())
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	for y := 0; y < l.cur.H; y++ {
		for x := 0; x < l.cur.W; x++ {
			n := l.cur.CountNeighbors(x, y, 1)
			alive := l.cur.At(x, y) == 1
			var next uint8
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				next = 1
			}
			l.nxt.Set(x, y, next)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
	if l.reseed > 0 && l.gen%l.reseed == 0 {
		l.sprinkle()
	}
}

// sprinkle revives a random square patch a quarter of the grid wide.
func (l *Life) sprinkle() {
	r := l.rng.Source()
	side := max(l.cur.W/4, 1)
	ox, oy := r.IntN(l.cur.W), r.IntN(l.cur.H)
	l.cur.Set(ox, oy, 1)
	for dy := 0; dy < side; dy++ {
		for dx := 0; dx < side; dx++ {
			if r.IntN(3) == 0 {
				x, y := l.cur.Wrap(ox+dx, oy+dy)
				l.cur.Set(x, y, 1)
			}
		}
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
