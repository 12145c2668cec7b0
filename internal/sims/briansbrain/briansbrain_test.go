package briansbrain

import "testing"

func TestCellLifecycle(t *testing.T) {
	b := New(6, 6, 8)
	at := func(x, y int) uint8 { return b.Cells()[y*6+x] }
	b.Cells()[2*6+2] = stateOn
	b.Cells()[2*6+3] = stateOn

	b.Step()

	if at(2, 2) != stateDying || at(3, 2) != stateDying {
		t.Fatalf("firing cells should start dying, got %d %d", at(2, 2), at(3, 2))
	}
	// Cells above and below the pair see exactly two firing neighbours.
	for _, p := range [][2]int{{2, 1}, {3, 1}, {2, 3}, {3, 3}} {
		if at(p[0], p[1]) != stateOn {
			t.Fatalf("cell %v should fire", p)
		}
	}

	b.Step()
	if at(2, 2) != stateDead {
		t.Fatalf("dying cell should die, got %d", at(2, 2))
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(20, 20, 4)
	b := New(20, 20, 4)
	a.Reset(11)
	b.Reset(11)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("cell %d differs between identical seeds", i)
		}
	}
	for i, c := range a.Cells() {
		if int(c) >= len(a.Palette()) {
			t.Fatalf("cell %d value %d has no palette entry", i, c)
		}
	}
}
