package elementary

import (
	"image/color"
	"strconv"

	"vidslide/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, Rule: 110}
}

// FromMap populates a Config from a string map.
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

var palette = []color.RGBA{
	{R: 250, G: 246, B: 235, A: 255},
	{R: 200, G: 60, B: 50, A: 255},
}

// Elementary runs a one-dimensional Wolfram rule. The newest generation is
// the top row and older generations scroll downwards.
type Elementary struct {
	grid *core.ByteGrid
	rule uint8
	tmp  []uint8
}

// New creates an automaton from cfg.
func New(cfg Config) *Elementary {
	g := core.NewByteGrid(cfg.Width, cfg.Height)
	return &Elementary{grid: g, rule: cfg.Rule, tmp: make([]uint8, g.W)}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Palette colors background and active cells.
func (e *Elementary) Palette() []color.RGBA { return palette }

// Reset clears the grid and seeds the top row. Seed zero starts from a single
// centre cell; any other seed starts from a random row.
func (e *Elementary) Reset(seed int64) {
	e.grid.Clear()
	top := e.grid.Cells()[:e.grid.W]
	if seed == 0 {
		top[e.grid.W/2] = 1
		return
	}
	core.NewRNG(seed).FillBinary(top)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w, cells := e.grid.W, e.grid.Cells()
	copy(e.tmp, cells[:w])
	copy(cells[w:], cells[:w*(e.grid.H-1)])
	for x := 0; x < w; x++ {
		left := e.tmp[(x-1+w)%w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%w]
		idx := (left << 2) | (center << 1) | right
		cells[x] = (e.rule >> idx) & 1
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
