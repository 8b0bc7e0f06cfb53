package presenter

import (
	"strings"
	"testing"

	"github.com/unvoid/unvoid-chess/internal/engine"
	"github.com/unvoid/unvoid-chess/internal/msgcat"
)

func newFormatter(t *testing.T) *Formatter {
	t.Helper()
	cat, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	return NewFormatter(cat)
}

func TestBoardLayout(t *testing.T) {
	f := newFormatter(t)
	g := engine.NewGame(8, 6)
	out := f.Board(g)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, top frame, six ranks, bottom frame.
	if len(lines) < 9 {
		t.Fatalf("unexpected board line count %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "A") || !strings.Contains(lines[1], "H") {
		t.Fatalf("column header missing letters: %q", lines[1])
	}
	// Highest rank prints first, White home row last.
	if !strings.HasPrefix(strings.TrimSpace(lines[3]), "6|") {
		t.Fatalf("top rank should print first: %q", lines[3])
	}
	bottom := lines[len(lines)-2]
	if !strings.HasPrefix(strings.TrimSpace(bottom), "1|") {
		t.Fatalf("white home row should print last: %q", bottom)
	}
	if !strings.Contains(bottom, "♔") || !strings.Contains(bottom, "♖") || !strings.Contains(bottom, "♘") {
		t.Fatalf("white pieces missing from home row: %q", bottom)
	}
}

func TestBoardMarksSelectionAndMoves(t *testing.T) {
	f := newFormatter(t)
	g := engine.NewGame(8, 6)
	if _, err := g.Select(engine.Coord{Row: 0, Col: 1}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	out := f.Board(g)
	if !strings.Contains(out, "[♖]") {
		t.Fatalf("selected runner not bracketed:\n%s", out)
	}
	if !strings.Contains(out, ".") {
		t.Fatalf("move markers missing:\n%s", out)
	}
}

func TestTurnInfo(t *testing.T) {
	f := newFormatter(t)
	g := engine.NewGame(6, 6)
	if got := f.TurnInfo(g); !strings.Contains(got, "White") {
		t.Fatalf("TurnInfo = %q", got)
	}
}

func TestMovedAndSelectedMessages(t *testing.T) {
	f := newFormatter(t)
	runner := engine.Piece{Type: engine.Runner, Color: engine.White}
	from := engine.Coord{Row: 0, Col: 1}
	to := engine.Coord{Row: 2, Col: 1}

	msg := f.Moved(runner, from, to, nil)
	if !strings.Contains(msg, "B1") || !strings.Contains(msg, "B3") {
		t.Fatalf("Moved = %q", msg)
	}

	captured := engine.Piece{Type: engine.Leaper, Color: engine.Black}
	msg = f.Moved(runner, from, to, &captured)
	if !strings.Contains(msg, "Captured") {
		t.Fatalf("capture note missing: %q", msg)
	}

	sel := f.Selected(runner, from, nil)
	if !strings.Contains(sel, "No available moves") {
		t.Fatalf("Selected(no moves) = %q", sel)
	}
}
