package puzzle

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/sirupsen/logrus"
)

const bannerText = "Winner!"

// bannerDivisor sets the banner text to roughly this fraction of the frame
// height, in whole multiples of the font size.
const bannerDivisor = 8

var (
	bannerShade  = color.NRGBA{A: 128}
	bannerShadow = color.White
	bannerColor  = color.RGBA{R: 0xDD, G: 0x22, B: 0x22, A: 0xFF}
)

// Game drives a Board from a frame source: Tick redraws it once and Click
// applies one pointer event.
type Game struct {
	board  *Board
	src    FrameSource
	border color.Color
	log    logrus.FieldLogger

	attachFailed bool
}

// NewGame creates a game over src. The board is attached on the first Tick
// after src reports its frame size, or by an explicit AttachFrameSource.
func NewGame(rows int, src FrameSource, opts ...Option) (*Game, error) {
	if src == nil {
		return nil, errors.New("puzzle: nil frame source")
	}
	if rows < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRows, rows)
	}
	o := newOptions(opts)
	return &Game{board: newBoard(rows, o), src: src, border: o.border, log: o.log}, nil
}

// Board exposes the underlying board.
func (g *Game) Board() *Board { return g.board }

// Ready reports whether the board geometry has been built.
func (g *Game) Ready() bool { return g.board.Attached() }

// AttachFrameSource completes board geometry for a w x h frame.
func (g *Game) AttachFrameSource(w, h int) error {
	if err := g.board.Attach(w, h); err != nil {
		return err
	}
	g.log.WithFields(logrus.Fields{
		"rows":    g.board.Rows(),
		"frame_w": w,
		"frame_h": h,
	}).Info("board attached")
	return nil
}

// Tick runs one redraw cycle and reports whether anything was drawn. Cycles
// are skipped while the frame source is not ready or not advancing.
func (g *Game) Tick(r Renderer) bool {
	if !g.board.Attached() {
		w, h, ok := g.src.FrameSize()
		if !ok {
			return false
		}
		if err := g.AttachFrameSource(w, h); err != nil {
			entry := g.log.WithError(err)
			if g.attachFailed {
				entry.Debug("attach frame source")
			} else {
				entry.Error("attach frame source")
			}
			g.attachFailed = true
			return false
		}
	}
	if !g.src.Advancing() {
		return false
	}
	frame := g.src.Frame()
	if frame == nil {
		return false
	}

	r.Capture(frame)
	r.Clear()
	for _, s := range g.board.Slots() {
		s.Render(r, g.border)
	}
	if g.board.HasWon() {
		g.drawBanner(r)
	}
	return true
}

func (g *Game) drawBanner(r Renderer) {
	fw, fh := g.board.FrameSize()
	w, h := float64(fw), float64(fh)
	r.FillRect(Rect{W: w, H: h}, bannerShade)

	tw, th := r.MeasureText(bannerText)
	scale := 1.0
	if th > 0 {
		scale = math.Max(1, math.Floor(h/(bannerDivisor*th)))
	}
	x := (w - tw*scale) / 2
	y := h / 2
	r.DrawText(bannerText, x+2, y+2, scale, bannerShadow)
	r.DrawText(bannerText, x, y, scale, bannerColor)
}

// Click handles a pointer event at (x, y) on a display showing the frame at
// displayW x displayH. A click after a win starts a new shuffled round.
func (g *Game) Click(x, y, displayW, displayH float64) {
	if !g.board.Attached() || displayW <= 0 || displayH <= 0 {
		return
	}
	fw, fh := g.board.FrameSize()
	sx := float64(fw) / displayW * x
	sy := float64(fh) / displayH * y

	if s := g.board.SlotAt(sx, sy); s != nil {
		tile, _ := s.Tile()
		if g.board.Move(s) {
			g.log.WithFields(logrus.Fields{
				"slot":  s.Index(g.board.Rows()),
				"tile":  tile.ID,
				"moves": g.board.Moves(),
			}).Debug("tile moved")
		}
	}

	if g.board.HasWon() {
		g.Reset()
	}
	if g.board.CheckWinCondition() {
		g.log.WithField("moves", g.board.Moves()).Info("puzzle solved")
	}
}

// Reset reshuffles the board. It is a no-op before the board is attached.
func (g *Game) Reset() {
	if err := g.board.Reset(); err != nil {
		if !errors.Is(err, ErrNotAttached) {
			g.log.WithError(err).Error("reset board")
		}
		return
	}
	g.log.WithField("rows", g.board.Rows()).Info("board shuffled")
}
