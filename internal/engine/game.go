package engine

import "fmt"

// Game is the turn/selection/outcome state machine around one Board.
// It is owned by a single driver loop; no internal locking.
type Game struct {
	board    *Board
	turn     Color
	selected *Coord
	cached   []Move
	over     bool
	winner   *Color
}

func NewGame(width, height int) *Game {
	return &Game{board: New(width, height), turn: White}
}

func (g *Game) Board() *Board { return g.board }
func (g *Game) Turn() Color   { return g.turn }
func (g *Game) Over() bool    { return g.over }

// Winner reports the winning color once the game is over.
func (g *Game) Winner() (Color, bool) {
	if g.winner == nil {
		return White, false
	}
	return *g.winner, true
}

// Selection returns the currently selected square and its cached legal
// moves, if any.
func (g *Game) Selection() (Coord, []Move, bool) {
	if g.selected == nil {
		return Coord{}, nil, false
	}
	return *g.selected, g.cached, true
}

// Select marks the square as selected and caches its legal moves so the
// driver can display them. It does not constrain later Move calls beyond
// what the board itself enforces.
func (g *Game) Select(at Coord) ([]Move, error) {
	if g.over {
		return nil, ErrGameOver
	}
	piece := g.board.At(at.Row, at.Col)
	if piece == nil {
		return nil, fmt.Errorf("%w (%s)", ErrNoPiece, at.Label())
	}
	if piece.Color != g.turn {
		return nil, fmt.Errorf("%w: it is %s's turn", ErrWrongColor, g.turn)
	}
	sel := at
	g.selected = &sel
	g.cached = g.board.LegalMoves(at.Row, at.Col, *piece)
	return g.cached, nil
}

// Move attempts from→to for the current player. The cached selection is
// reused only when it matches the from square; otherwise legal moves are
// recomputed so a stale selection can never validate a different piece.
// Capturing the opponent Royal ends the game with the mover as winner.
func (g *Game) Move(from, to Coord) (*Piece, error) {
	if g.over {
		return nil, ErrGameOver
	}

	var legal []Move
	if g.selected != nil && *g.selected == from && g.cached != nil {
		legal = g.cached
	} else {
		piece := g.board.At(from.Row, from.Col)
		if piece == nil {
			return nil, fmt.Errorf("%w (%s)", ErrNoPiece, from.Label())
		}
		if piece.Color != g.turn {
			return nil, fmt.Errorf("%w: it is %s's turn", ErrWrongColor, g.turn)
		}
		legal = g.board.LegalMoves(from.Row, from.Col, *piece)
	}

	captured, err := g.board.MovePiece(from, to, g.turn, legal)
	if err != nil {
		return nil, err
	}
	if captured != nil && captured.Type == Royal {
		winner := g.turn
		g.over = true
		g.winner = &winner
		return captured, nil
	}
	g.turn = g.turn.Opponent()
	g.selected = nil
	g.cached = nil
	return captured, nil
}

// Restart replaces the board and resets the state machine to a fresh
// match with White to move.
func (g *Game) Restart(width, height int) {
	g.board = New(width, height)
	g.turn = White
	g.selected = nil
	g.cached = nil
	g.over = false
	g.winner = nil
}
