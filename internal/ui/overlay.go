//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPad    = 8
	lineSpacing = 15
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	textColor  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	badgeColor = color.RGBA{R: 255, G: 200, B: 60, A: 255}
)

// Overlay draws the help panel and the feed state badge over the puzzle.
type Overlay struct {
	show  bool
	face  font.Face
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{face: basicfont.Face7x13}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the help panel on H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw renders the badge and, when toggled on, the help panel.
func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	y := panelPad
	if badge := s.Badge(); badge != "" {
		o.drawBox(screen, []string{badge}, y, badgeColor)
		y += lineSpacing + 3*panelPad
	}
	if o.show {
		o.drawBox(screen, s.Lines(), y, textColor)
	}
}

func (o *Overlay) drawBox(screen *ebiten.Image, lines []string, y int, fg color.Color) {
	width := 0
	for _, l := range lines {
		if w := text.BoundString(o.face, l).Dx(); w > width {
			width = w
		}
	}
	height := len(lines) * lineSpacing
	o.drawRect(screen, panelPad, y, width+2*panelPad, height+2*panelPad, panelColor)
	for i, l := range lines {
		text.Draw(screen, l, o.face, 2*panelPad, y+panelPad+(i+1)*lineSpacing-4, fg)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h int, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
