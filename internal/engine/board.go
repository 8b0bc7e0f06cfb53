package engine

import "fmt"

// Board owns the grid. Cells hold piece values; nil means empty.
type Board struct {
	grid   [][]*Piece
	width  int
	height int
}

// New allocates a width×height board and places the initial pieces.
// Dimensions are assumed to be pre-validated by the caller.
func New(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.grid = make([][]*Piece, height)
	for r := range b.grid {
		b.grid[r] = make([]*Piece, width)
	}
	b.setup()
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// setup places each side's Royal, Runner and Leaper on its home row:
// White from the left edge of row 0, Black mirrored from the right edge
// of the top row. A piece is only placed if the board is wide enough.
func (b *Board) setup() {
	for r := range b.grid {
		for c := range b.grid[r] {
			b.grid[r][c] = nil
		}
	}
	place := func(r, c int, t PieceType, col Color) {
		p := Piece{Type: t, Color: col}
		b.grid[r][c] = &p
	}
	if b.width >= 1 {
		place(0, 0, Royal, White)
	}
	if b.width >= 2 {
		place(0, 1, Runner, White)
	}
	if b.width >= 3 {
		place(0, 2, Leaper, White)
	}
	top := b.height - 1
	if b.width >= 1 {
		place(top, b.width-1, Royal, Black)
	}
	if b.width >= 2 {
		place(top, b.width-2, Runner, Black)
	}
	if b.width >= 3 {
		place(top, b.width-3, Leaper, Black)
	}
}

// At returns the piece on the square, or nil when the square is empty or
// the coordinate is off the board. It never fails.
func (b *Board) At(r, c int) *Piece {
	if r < 0 || r >= b.height || c < 0 || c >= b.width {
		return nil
	}
	if p := b.grid[r][c]; p != nil {
		cp := *p
		return &cp
	}
	return nil
}

func (b *Board) inBounds(r, c int) bool {
	return r >= 0 && r < b.height && c >= 0 && c < b.width
}

// compass covers the 8 neighbor directions, used by Royal steps and
// Runner rays.
var compass = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var leaperOffsets = [8][2]int{
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
}

// LegalMoves computes every move the given piece could make from
// (r, c) against the current grid. It does not mutate the board.
func (b *Board) LegalMoves(r, c int, piece Piece) []Move {
	switch piece.Type {
	case Royal:
		return b.landingMoves(r, c, piece.Color, compass[:])
	case Leaper:
		return b.landingMoves(r, c, piece.Color, leaperOffsets[:])
	case Runner:
		return b.runnerMoves(r, c, piece.Color)
	default:
		return nil
	}
}

// landingMoves handles the pieces that capture by landing: each offset is
// legal when on the board and either empty or holding an opponent piece.
func (b *Board) landingMoves(r, c int, mover Color, offsets [][2]int) []Move {
	var moves []Move
	for _, d := range offsets {
		tr, tc := r+d[0], c+d[1]
		if !b.inBounds(tr, tc) {
			continue
		}
		switch target := b.grid[tr][tc]; {
		case target == nil:
			moves = append(moves, Move{To: Coord{tr, tc}})
		case target.Color != mover:
			moves = append(moves, Move{To: Coord{tr, tc}, Capture: true})
		}
	}
	return moves
}

// runnerMoves walks each compass ray up to distance 3. The ray breaks as
// soon as the target square is off the board or occupied; a reachable
// empty target is then checked against the path squares in between:
// a friendly piece or a second opponent invalidates that distance only,
// a single opponent marks the move as a jump capture.
func (b *Board) runnerMoves(r, c int, mover Color) []Move {
	var moves []Move
	for _, d := range compass {
		for dist := 1; dist <= 3; dist++ {
			tr, tc := r+d[0]*dist, c+d[1]*dist
			if !b.inBounds(tr, tc) {
				break
			}
			if b.grid[tr][tc] != nil {
				break
			}

			var jumped *Coord
			blocked := false
			for step := 1; step < dist; step++ {
				pr, pc := r+d[0]*step, c+d[1]*step
				path := b.grid[pr][pc]
				if path == nil {
					continue
				}
				if path.Color == mover || jumped != nil {
					blocked = true
					break
				}
				jumped = &Coord{Row: pr, Col: pc}
			}
			if blocked {
				continue
			}
			moves = append(moves, Move{To: Coord{tr, tc}, Capture: jumped != nil, Jumped: jumped})
		}
	}
	return moves
}

// MovePiece validates and executes a move for mover against the supplied
// legal-move set. On success the captured piece, if any, is returned.
// Any validation failure leaves the grid untouched.
func (b *Board) MovePiece(from, to Coord, mover Color, legal []Move) (*Piece, error) {
	moving := b.At(from.Row, from.Col)
	if moving == nil {
		return nil, fmt.Errorf("%w (%s)", ErrNoPiece, from.Label())
	}
	if moving.Color != mover {
		return nil, ErrWrongColor
	}
	if from == to {
		return nil, ErrSameSquare
	}
	var chosen *Move
	for i := range legal {
		if legal[i].To == to {
			chosen = &legal[i]
			break
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("%w: %s cannot reach %s", ErrIllegalDestination, moving.Type, to.Label())
	}

	b.grid[from.Row][from.Col] = nil
	var captured *Piece
	if chosen.Capture {
		if moving.Type == Runner && chosen.Jumped != nil {
			captured = b.grid[chosen.Jumped.Row][chosen.Jumped.Col]
			b.grid[chosen.Jumped.Row][chosen.Jumped.Col] = nil
		} else {
			captured = b.grid[to.Row][to.Col]
		}
	}
	b.grid[to.Row][to.Col] = moving
	if captured == nil {
		return nil, nil
	}
	cp := *captured
	return &cp, nil
}
