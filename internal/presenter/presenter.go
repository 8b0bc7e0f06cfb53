// Package presenter renders engine state into console-friendly text
// blocks. It never mutates the game.
package presenter

import (
	"fmt"
	"strings"

	"github.com/unvoid/unvoid-chess/internal/engine"
	"github.com/unvoid/unvoid-chess/internal/msgcat"
)

// Formatter turns engine state into printable strings using the message
// catalog for all user-facing copy.
type Formatter struct {
	cat *msgcat.Catalog
}

func NewFormatter(cat *msgcat.Catalog) *Formatter {
	return &Formatter{cat: cat}
}

// Board draws the grid with row numbers down the left side and column
// letters on top. The top row prints first so White's home row sits at
// the bottom. The selected square is bracketed; empty squares reachable
// from the selection carry a '.' marker, or '•' for captures.
func (f *Formatter) Board(g *engine.Game) string {
	b := g.Board()
	var sb strings.Builder

	sb.WriteString("\n   ")
	for c := 0; c < b.Width(); c++ {
		fmt.Fprintf(&sb, " %c ", rune('A'+c))
	}
	sb.WriteString("\n")
	writeFrame(&sb, b.Width())

	selected, moves, hasSel := g.Selection()
	for r := b.Height() - 1; r >= 0; r-- {
		fmt.Fprintf(&sb, "%2d|", r+1)
		for c := 0; c < b.Width(); c++ {
			marker := ' '
			if hasSel {
				for _, m := range moves {
					if m.To == (engine.Coord{Row: r, Col: c}) {
						marker = '.'
						if m.Capture {
							marker = '•'
						}
						break
					}
				}
			}
			content := string(marker)
			if p := b.At(r, c); p != nil {
				content = p.String()
			}
			if hasSel && selected == (engine.Coord{Row: r, Col: c}) {
				fmt.Fprintf(&sb, "[%s]", content)
			} else {
				fmt.Fprintf(&sb, " %s ", content)
			}
		}
		sb.WriteString("|\n")
	}
	writeFrame(&sb, b.Width())
	return sb.String()
}

func writeFrame(sb *strings.Builder, width int) {
	sb.WriteString("  +-")
	sb.WriteString(strings.Repeat("--", width))
	sb.WriteString("+\n")
}

// TurnInfo reports whose move it is, or the outcome once over.
func (f *Formatter) TurnInfo(g *engine.Game) string {
	if g.Over() {
		winner, _ := g.Winner()
		win := f.cat.MustRender("game.win", map[string]any{"Winner": winner.String()})
		hint := f.cat.MustRender("game.over_hint", nil)
		return win + "\n" + hint
	}
	return f.cat.MustRender("game.turn", map[string]any{"Player": g.Turn().String()})
}

// Selected describes a selection result with its reachable squares.
func (f *Formatter) Selected(piece engine.Piece, at engine.Coord, moves []engine.Move) string {
	if len(moves) == 0 {
		return f.cat.MustRender("select.none", map[string]any{
			"Piece":  piece.String(),
			"Square": at.Label(),
		})
	}
	labels := make([]string, len(moves))
	for i, m := range moves {
		labels[i] = m.To.Label()
	}
	return f.cat.MustRender("select.ok", map[string]any{
		"Piece":  piece.String(),
		"Square": at.Label(),
		"Moves":  strings.Join(labels, ", "),
	})
}

// Moved describes a completed move, including any capture.
func (f *Formatter) Moved(piece engine.Piece, from, to engine.Coord, captured *engine.Piece) string {
	s := f.cat.MustRender("move.ok", map[string]any{
		"Piece": piece.String(),
		"From":  from.Label(),
		"To":    to.Label(),
	})
	if captured != nil {
		s += f.cat.MustRender("move.captured", map[string]any{"Piece": captured.String()})
	}
	return s
}

// MaxSquare is the highest addressable square label, for bounds hints.
func (f *Formatter) MaxSquare(g *engine.Game) string {
	b := g.Board()
	return fmt.Sprintf("%c%d", rune('A'+b.Width()-1), b.Height())
}
