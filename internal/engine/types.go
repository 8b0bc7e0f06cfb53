package engine

import "fmt"

// Color identifies a side. White owns the bottom home row and moves first.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType enumerates the three piece kinds.
type PieceType uint8

const (
	// Runner jumps 1-3 squares along a ray onto an empty square and
	// captures by jumping over a single opponent piece.
	Runner PieceType = iota
	// Leaper moves in fixed knight offsets and captures by landing.
	Leaper
	// Royal moves one square in any direction; its capture ends the game.
	Royal
)

func (p PieceType) String() string {
	switch p {
	case Runner:
		return "Runner"
	case Leaper:
		return "Leaper"
	case Royal:
		return "Royal"
	default:
		return fmt.Sprintf("piece(%d)", uint8(p))
	}
}

// Piece is an immutable value; squares hold at most one.
type Piece struct {
	Type  PieceType
	Color Color
}

// Symbol returns the glyph used for board rendering.
func (p Piece) Symbol() rune {
	switch {
	case p.Color == White && p.Type == Royal:
		return '♔'
	case p.Color == White && p.Type == Runner:
		return '♖'
	case p.Color == White && p.Type == Leaper:
		return '♘'
	case p.Color == Black && p.Type == Royal:
		return '♚'
	case p.Color == Black && p.Type == Runner:
		return '♜'
	default:
		return '♞'
	}
}

func (p Piece) String() string {
	return string(p.Symbol())
}

// Coord addresses a square by zero-based row and column. Row 0 is the
// White home row, rendered at the bottom of the board.
type Coord struct {
	Row, Col int
}

// Move is one candidate destination produced by move generation.
// Jumped is set only for Runner captures: the captured piece sits on the
// path, not on the destination square.
type Move struct {
	To      Coord
	Capture bool
	Jumped  *Coord
}
