//go:build ebiten

package app

import (
	"vidslide/internal/feed"
	"vidslide/internal/puzzle"
	"vidslide/internal/render"
	"vidslide/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

type rewinder interface {
	Rewind()
}

// Game adapts a puzzle and its feed to the ebiten.Game interface. The puzzle
// is drawn at the feed's native resolution onto an offscreen canvas that is
// stretched over the window.
type Game struct {
	puzzle  *puzzle.Game
	feed    feed.Feed
	overlay *ui.Overlay
	log     logrus.FieldLogger

	canvas   *ebiten.Image
	renderer *render.Screen

	outW, outH int
	touches    []ebiten.TouchID
}

// New constructs a Game for the provided puzzle and the feed it is cut from.
func New(p *puzzle.Game, f feed.Feed, log logrus.FieldLogger) *Game {
	return &Game{puzzle: p, feed: f, overlay: ui.NewOverlay(), log: log}
}

// Update handles input and advances the feed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.puzzle.Reset()
	}
	g.overlay.Update()
	g.feed.Update()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		g.click(ebiten.TouchPosition(id))
	}
	return nil
}

func (g *Game) togglePause() {
	if r, ok := g.feed.(rewinder); ok && g.feed.Ended() {
		r.Rewind()
		g.log.WithField("feed", g.feed.Name()).Info("feed rewound")
		return
	}
	g.feed.SetPaused(!g.feed.Paused())
	g.log.WithFields(logrus.Fields{"feed": g.feed.Name(), "paused": g.feed.Paused()}).Debug("feed toggled")
}

func (g *Game) click(x, y int) {
	g.puzzle.Click(float64(x), float64(y), float64(g.outW), float64(g.outH))
}

// Draw runs one puzzle tick and presents the canvas. While the feed is
// paused or ended the canvas keeps its last picture.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		w, h, ok := g.feed.FrameSize()
		if !ok {
			return
		}
		g.canvas = ebiten.NewImage(w, h)
		g.renderer = render.NewScreen(g.canvas)
	}
	g.puzzle.Tick(g.renderer)

	cw, ch := g.canvas.Bounds().Dx(), g.canvas.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.outW)/float64(cw), float64(g.outH)/float64(ch))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.canvas, op)

	b := g.puzzle.Board()
	g.overlay.Draw(screen, ui.Status{
		Feed:   g.feed.Name(),
		Rows:   b.Rows(),
		Moves:  b.Moves(),
		Paused: g.feed.Paused(),
		Ended:  g.feed.Ended(),
		Won:    b.HasWon(),
	})
}

// Layout uses the window size as the logical screen and records it as the
// displayed size for click scaling.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
