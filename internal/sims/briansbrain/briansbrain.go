package briansbrain

import (
	"image/color"
	"strconv"

	"vidslide/internal/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

var palette = []color.RGBA{
	stateDead:  {R: 8, G: 8, B: 20, A: 255},
	stateOn:    {R: 250, G: 240, B: 170, A: 255},
	stateDying: {R: 70, G: 110, B: 220, A: 255},
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cur, nxt *core.ByteGrid
	density  int
}

// New creates a Brain simulation. One cell in density starts firing on Reset.
func New(w, h, density int) *Brain {
	if density <= 0 {
		density = 8
	}
	return &Brain{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h), density: density}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.cur.W, H: b.cur.H} }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.cur.Cells() }

// Palette colors dead, firing and dying cells.
func (b *Brain) Palette() []color.RGBA { return palette }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed)
	cells := b.cur.Cells()
	for i := range cells {
		if rng.Chance(b.density) {
			cells[i] = stateOn
			continue
		}
		cells[i] = stateDead
	}
}

// Step advances the automaton by one tick: firing cells start dying, dying
// cells die, and dead cells with exactly two firing neighbours fire.
func (b *Brain) Step() {
	for y := 0; y < b.cur.H; y++ {
		for x := 0; x < b.cur.W; x++ {
			var next uint8 = stateDead
			switch b.cur.At(x, y) {
			case stateOn:
				next = stateDying
			case stateDying:
				next = stateDead
			default:
				if b.cur.CountNeighbors(x, y, stateOn) == 2 {
					next = stateOn
				}
			}
			b.nxt.Set(x, y, next)
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		w, h, density := 160, 120, 8
		if v, err := strconv.Atoi(cfg["w"]); err == nil && v > 0 {
			w = v
		}
		if v, err := strconv.Atoi(cfg["h"]); err == nil && v > 0 {
			h = v
		}
		if v, err := strconv.Atoi(cfg["density"]); err == nil && v > 0 {
			density = v
		}
		return New(w, h, density)
	})
}
