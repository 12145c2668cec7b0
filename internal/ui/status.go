package ui

import "fmt"

// Status is the game state shown by the overlay.
type Status struct {
	Feed   string
	Rows   int
	Moves  int
	Paused bool
	Ended  bool
	Won    bool
}

var helpLines = []string{
	"click  slide a tile into the gap",
	"R      shuffle",
	"space  pause / resume feed",
	"H      toggle this panel",
	"Q/esc  quit",
}

// Badge returns a short feed state label, or "" while the feed is playing.
func (s Status) Badge() string {
	switch {
	case s.Ended:
		return "ENDED (space to replay)"
	case s.Paused:
		return "PAUSED"
	}
	return ""
}

// Lines returns the text of the help panel.
func (s Status) Lines() []string {
	state := "playing"
	if s.Won {
		state = "solved, click to reshuffle"
	}
	lines := []string{
		fmt.Sprintf("%s  %dx%d", s.Feed, s.Rows, s.Rows),
		fmt.Sprintf("moves %d  %s", s.Moves, state),
		"",
	}
	return append(lines, helpLines...)
}
