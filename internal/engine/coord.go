package engine

import (
	"fmt"
	"strconv"
	"unicode"
)

// ParseSquare converts a label like "C3" into a Coord. The leading letter
// is the column (case-insensitive, 'A' = 0), the numeric suffix the
// one-based row. Bounds are checked against the given board dimensions.
func ParseSquare(label string, height, width int) (Coord, error) {
	if len(label) < 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadSquareFormat, label)
	}
	colRune := unicode.ToUpper(rune(label[0]))
	row, err := strconv.Atoi(label[1:])
	if err != nil || row < 0 {
		return Coord{}, fmt.Errorf("%w: bad row number in %q", ErrBadSquareFormat, label)
	}
	if row <= 0 || row > height {
		return Coord{}, fmt.Errorf("%w: row %d not in 1-%d", ErrSquareOutOfRange, row, height)
	}
	col := int(colRune - 'A')
	if col < 0 || col >= width {
		return Coord{}, fmt.Errorf("%w: column %c not in A-%c", ErrSquareOutOfRange, label[0], rune('A'+width-1))
	}
	return Coord{Row: row - 1, Col: col}, nil
}

// Label is the inverse of ParseSquare for in-range coordinates.
func (c Coord) Label() string {
	return fmt.Sprintf("%c%d", rune('A'+c.Col), c.Row+1)
}
