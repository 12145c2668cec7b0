package puzzle

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

type fakeSource struct {
	w, h      int
	ready     bool
	advancing bool
	frame     *image.RGBA
}

func newFakeSource(w, h int) *fakeSource {
	return &fakeSource{w: w, h: h, ready: true, advancing: true, frame: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (f *fakeSource) FrameSize() (int, int, bool) { return f.w, f.h, f.ready }
func (f *fakeSource) Advancing() bool             { return f.advancing }
func (f *fakeSource) Frame() *image.RGBA          { return f.frame }

// recorder logs renderer calls as short strings.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) { r.calls = append(r.calls, fmt.Sprintf(format, args...)) }

func (r *recorder) Capture(frame *image.RGBA) {
	r.add("capture %dx%d", frame.Bounds().Dx(), frame.Bounds().Dy())
}
func (r *recorder) Clear() { r.add("clear") }
func (r *recorder) CopyRect(from Rect, toX, toY float64) {
	r.add("copy %g,%g->%g,%g", from.X, from.Y, toX, toY)
}
func (r *recorder) StrokeRect(rect Rect, _ color.Color) { r.add("stroke %g,%g", rect.X, rect.Y) }
func (r *recorder) FillRect(rect Rect, _ color.Color) {
	r.add("fill %g,%g,%g,%g", rect.X, rect.Y, rect.W, rect.H)
}
func (r *recorder) DrawText(s string, x, y, scale float64, _ color.Color) {
	r.add("text %s x%g %g,%g", s, scale, x, y)
}
func (r *recorder) MeasureText(s string) (float64, float64) { return float64(len(s) * 10), 10 }

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func TestNewGameValidates(t *testing.T) {
	if _, err := NewGame(3, nil); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := NewGame(1, newFakeSource(10, 10)); !errors.Is(err, ErrInvalidRows) {
		t.Fatalf("NewGame(1) error = %v, want ErrInvalidRows", err)
	}
}

func TestTickWaitsForFrameSize(t *testing.T) {
	src := newFakeSource(90, 60)
	src.ready = false
	g, err := NewGame(3, src)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	r := &recorder{}
	if g.Tick(r) {
		t.Fatal("Tick drew before the source was ready")
	}
	if g.Ready() || len(r.calls) != 0 {
		t.Fatalf("unexpected state before ready: ready=%v calls=%v", g.Ready(), r.calls)
	}

	src.ready = true
	if !g.Tick(r) {
		t.Fatal("Tick should draw once the source is ready")
	}
	if !g.Ready() {
		t.Fatal("board not attached by Tick")
	}
	if err := g.AttachFrameSource(90, 60); !errors.Is(err, ErrAlreadyAttached) {
		t.Fatalf("AttachFrameSource after Tick error = %v, want ErrAlreadyAttached", err)
	}
}

func TestTickSkipsWhenNotAdvancing(t *testing.T) {
	src := newFakeSource(40, 40)
	g, _ := NewGame(2, src)
	src.advancing = false
	r := &recorder{}
	if g.Tick(r) {
		t.Fatal("paused source must skip the cycle")
	}
	if !g.Ready() {
		t.Fatal("board should attach even while the source is paused")
	}
	if len(r.calls) != 0 {
		t.Fatalf("renderer touched during skipped tick: %v", r.calls)
	}
	src.advancing = true
	if !g.Tick(r) {
		t.Fatal("drawing should resume once the source advances")
	}
}

func TestTickDrawOrder(t *testing.T) {
	g, _ := NewGame(2, newFakeSource(40, 20))
	r := &recorder{}
	g.Tick(r)

	want := []string{
		"capture 40x20",
		"clear",
		"copy 0,0->0,0", "stroke 0,0",
		"copy 20,0->20,0", "stroke 20,0",
		"copy 0,10->0,10", "stroke 0,10",
		"stroke 20,10",
	}
	if strings.Join(r.calls, "|") != strings.Join(want, "|") {
		t.Fatalf("calls = %v\nwant   %v", r.calls, want)
	}
}

func TestTickDrawsBannerWhenWon(t *testing.T) {
	g, _ := NewGame(2, newFakeSource(200, 100))
	g.Board().CheckWinCondition()
	r := &recorder{}
	g.Tick(r)

	if r.count("fill 0,0,200,100") != 1 {
		t.Fatalf("expected a full-frame shade, calls = %v", r.calls)
	}
	// "Winner!" measures 70 wide in the recorder.
	n := len(r.calls)
	if r.calls[n-2] != "text Winner! x1 67,52" || r.calls[n-1] != "text Winner! x1 65,50" {
		t.Fatalf("banner calls = %v", r.calls[n-2:])
	}
}

func TestBannerScalesWithFrameHeight(t *testing.T) {
	g, _ := NewGame(3, newFakeSource(480, 360))
	g.Board().CheckWinCondition()
	r := &recorder{}
	g.Tick(r)

	// 360 / (8 * 10) rounds down to 4, so the text is 280 wide.
	n := len(r.calls)
	if r.calls[n-2] != "text Winner! x4 102,182" || r.calls[n-1] != "text Winner! x4 100,180" {
		t.Fatalf("banner calls = %v", r.calls[n-2:])
	}
}

func TestTickLogsAttachFailureOnce(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	src := newFakeSource(0, 0)
	g, _ := NewGame(3, src, WithLogger(logger))
	for i := 0; i < 5; i++ {
		if g.Tick(&recorder{}) {
			t.Fatal("Tick drew with an empty frame size")
		}
	}

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries for repeated attach failures, want 1", len(entries))
	}
	if entries[0].Level != logrus.ErrorLevel {
		t.Fatalf("level = %v, want error", entries[0].Level)
	}
	if err, _ := entries[0].Data[logrus.ErrorKey].(error); !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("logged error = %v, want ErrInvalidFrame", err)
	}

	src.w, src.h = 30, 30
	src.frame = image.NewRGBA(image.Rect(0, 0, 30, 30))
	if !g.Tick(&recorder{}) || !g.Ready() {
		t.Fatal("board should attach once the source reports a real size")
	}
}

func TestClickScalesAndMoves(t *testing.T) {
	g, _ := NewGame(2, newFakeSource(200, 100))
	g.Tick(&recorder{})

	// Display is half the native size; (75, 10) maps to (150, 20), slot 1.
	g.Click(75, 10, 100, 50)

	b := g.Board()
	if got := layout(b); got[1] != gap || got[3] != 1 {
		t.Fatalf("layout after click = %v, want tile 1 moved into slot 3", got)
	}
	if b.HasWon() {
		t.Fatal("board should not be won after moving away from solved")
	}
	if b.Moves() != 1 {
		t.Fatalf("Moves() = %d, want 1", b.Moves())
	}
}

func TestClickIgnoredBeforeAttach(t *testing.T) {
	src := newFakeSource(100, 100)
	src.ready = false
	g, _ := NewGame(2, src)
	g.Click(10, 10, 100, 100)
	if g.Ready() {
		t.Fatal("Click must not attach the board")
	}
}

func TestClickIgnoresIllegalTargets(t *testing.T) {
	g, _ := NewGame(3, newFakeSource(90, 90))
	g.Tick(&recorder{})
	arrange(t, g.Board(), 1, 0, 2, 3, 4, 5, 6, 7, gap)
	before := layout(g.Board())

	g.Click(15, 15, 90, 90) // slot 0, far from the gap
	g.Click(75, 75, 90, 90) // the gap itself
	g.Click(30, 30, 90, 90) // a corner shared by four slots
	g.Click(10, 10, 0, 90)  // degenerate display

	if got := layout(g.Board()); fmt.Sprint(got) != fmt.Sprint(before) {
		t.Fatalf("layout changed: %v -> %v", before, got)
	}
}

func TestClickSolvesAndNextClickResets(t *testing.T) {
	g, _ := NewGame(2, newFakeSource(20, 20), WithSeed(3), WithStrictInvariants())
	g.Tick(&recorder{})
	b := g.Board()
	arrange(t, b, 0, 1, gap, 2)

	g.Click(15, 15, 20, 20) // slides tile 2 left into the gap
	if !b.HasWon() {
		t.Fatalf("expected win, layout = %v", layout(b))
	}

	g.Click(5, 5, 20, 20)
	checkInvariant(t, b)
	if !b.Slots()[3].Empty() {
		t.Fatalf("reset must leave the last slot empty, layout = %v", layout(b))
	}
	if b.Moves() != 0 {
		t.Fatalf("moves not cleared by reset: %d", b.Moves())
	}
}

func TestStrictModePanicsOnCorruption(t *testing.T) {
	b := attached(t, 3, 90, 90)
	b.slots[1].tile = b.tiles[0]

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from strict invariant check")
		}
	}()
	b.Move(b.slots[7])
}

func TestGameResetBeforeAttachIsNoop(t *testing.T) {
	src := newFakeSource(10, 10)
	src.ready = false
	g, _ := NewGame(2, src)
	g.Reset()
	if g.Ready() {
		t.Fatal("Reset must not attach")
	}
}
