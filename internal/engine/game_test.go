package engine

import (
	"errors"
	"testing"
)

func TestSelectRules(t *testing.T) {
	g := NewGame(8, 6)

	if _, err := g.Select(Coord{3, 3}); !errors.Is(err, ErrNoPiece) {
		t.Fatalf("selecting empty square: got %v, want ErrNoPiece", err)
	}
	// Black royal on the top row; it is White's turn.
	if _, err := g.Select(Coord{5, 7}); !errors.Is(err, ErrWrongColor) {
		t.Fatalf("selecting opponent piece: got %v, want ErrWrongColor", err)
	}

	moves, err := g.Select(Coord{0, 1}) // White runner at B1
	if err != nil {
		t.Fatalf("Select(B1): %v", err)
	}
	if len(moves) == 0 {
		t.Fatalf("runner at B1 should have moves on a fresh board")
	}
	sel, cached, ok := g.Selection()
	if !ok || sel != (Coord{0, 1}) || len(cached) != len(moves) {
		t.Fatalf("selection not recorded: %+v ok=%v", sel, ok)
	}
	// A1 holds the own royal, so no move may land there.
	for _, m := range moves {
		if m.To == (Coord{0, 0}) {
			t.Fatalf("runner must not land on own royal at A1")
		}
	}
}

func TestMoveIllegalDestinationKeepsState(t *testing.T) {
	g := NewGame(8, 6)
	if _, err := g.Select(Coord{0, 1}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	// C1 holds the own leaper: occupied, so never a runner destination.
	_, err := g.Move(Coord{0, 1}, Coord{0, 2})
	if !errors.Is(err, ErrIllegalDestination) {
		t.Fatalf("got %v, want ErrIllegalDestination", err)
	}
	if p := g.Board().At(0, 1); p == nil || p.Type != Runner {
		t.Fatalf("B1 must remain occupied by the runner after a failed move")
	}
	if g.Turn() != White {
		t.Fatalf("failed move must not switch the turn")
	}
}

func TestMoveSwitchesTurnAndClearsSelection(t *testing.T) {
	g := NewGame(8, 6)
	if _, err := g.Select(Coord{0, 1}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	captured, err := g.Move(Coord{0, 1}, Coord{3, 1}) // plain distance-3 jump north
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if captured != nil {
		t.Fatalf("expected no capture, got %+v", captured)
	}
	if g.Turn() != Black {
		t.Fatalf("turn did not switch")
	}
	if _, _, ok := g.Selection(); ok {
		t.Fatalf("selection must be cleared after a successful move")
	}

	// Both royals still present.
	royals := map[Color]int{}
	b := g.Board()
	for r := 0; r < b.Height(); r++ {
		for c := 0; c < b.Width(); c++ {
			if p := b.At(r, c); p != nil && p.Type == Royal {
				royals[p.Color]++
			}
		}
	}
	if royals[White] != 1 || royals[Black] != 1 {
		t.Fatalf("royal count = %+v, want one per color", royals)
	}
}

func TestMoveRecomputesWhenSelectionStale(t *testing.T) {
	g := NewGame(8, 6)
	// Select the leaper, then move the runner directly: the cached leaper
	// moves must not validate the runner's move.
	if _, err := g.Select(Coord{0, 2}); err != nil {
		t.Fatalf("Select(C1): %v", err)
	}
	if _, err := g.Move(Coord{0, 1}, Coord{2, 1}); err != nil {
		t.Fatalf("direct runner move after selecting leaper: %v", err)
	}
	if p := g.Board().At(2, 1); p == nil || p.Type != Runner {
		t.Fatalf("runner did not land on B3")
	}
}

func TestMoveFromEmptyOrOpponentSquare(t *testing.T) {
	g := NewGame(8, 6)
	if _, err := g.Move(Coord{3, 3}, Coord{4, 4}); !errors.Is(err, ErrNoPiece) {
		t.Fatalf("move from empty square: got %v", err)
	}
	if _, err := g.Move(Coord{5, 7}, Coord{4, 7}); !errors.Is(err, ErrWrongColor) {
		t.Fatalf("move of opponent piece: got %v", err)
	}
}

func TestRoyalCaptureEndsGame(t *testing.T) {
	g := NewGame(6, 6)
	b := g.Board()
	clear(b)
	put(b, 2, 2, Royal, White)
	put(b, 2, 3, Royal, Black)

	captured, err := g.Move(Coord{2, 2}, Coord{2, 3})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if captured == nil || captured.Type != Royal || captured.Color != Black {
		t.Fatalf("captured = %+v, want Black Royal", captured)
	}
	if !g.Over() {
		t.Fatalf("game must be over after royal capture")
	}
	if winner, ok := g.Winner(); !ok || winner != White {
		t.Fatalf("winner = %v/%v, want White", winner, ok)
	}

	if _, err := g.Select(Coord{2, 3}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Select after game over: got %v, want ErrGameOver", err)
	}
	if _, err := g.Move(Coord{2, 3}, Coord{2, 4}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Move after game over: got %v, want ErrGameOver", err)
	}
}

func TestRunnerJumpCaptureEndsGameOnRoyal(t *testing.T) {
	g := NewGame(6, 6)
	b := g.Board()
	clear(b)
	put(b, 0, 0, Runner, White)
	put(b, 1, 1, Royal, Black)

	captured, err := g.Move(Coord{0, 0}, Coord{2, 2})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if captured == nil || captured.Type != Royal {
		t.Fatalf("captured = %+v, want Black Royal", captured)
	}
	if winner, ok := g.Winner(); !ok || winner != White {
		t.Fatalf("winner = %v/%v, want White", winner, ok)
	}
}

func TestRestart(t *testing.T) {
	g := NewGame(6, 6)
	b := g.Board()
	clear(b)
	put(b, 2, 2, Royal, White)
	put(b, 2, 3, Royal, Black)
	if _, err := g.Move(Coord{2, 2}, Coord{2, 3}); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if !g.Over() {
		t.Fatalf("setup: game should be over")
	}

	g.Restart(8, 7)
	if g.Over() {
		t.Fatalf("restart must clear the outcome")
	}
	if g.Turn() != White {
		t.Fatalf("restart must hand the move to White")
	}
	if _, ok := g.Winner(); ok {
		t.Fatalf("restart must clear the winner")
	}
	if g.Board().Width() != 8 || g.Board().Height() != 7 {
		t.Fatalf("restart did not rebuild the board with new dimensions")
	}
	if p := g.Board().At(0, 0); p == nil || p.Type != Royal || p.Color != White {
		t.Fatalf("restarted board missing white royal at A1")
	}
}
