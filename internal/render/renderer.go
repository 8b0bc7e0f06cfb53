// Package render produces PNG snapshots of a board position.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/unvoid/unvoid-chess/internal/engine"
)

const (
	squareSize = 64
	sideMargin = 28
	topMargin  = 16
)

var (
	lightSquare    = color.RGBA{233, 207, 163, 255}
	darkSquare     = color.RGBA{187, 136, 96, 255}
	backgroundFill = color.RGBA{28, 31, 46, 255}
	labelColor     = color.NRGBA{R: 236, G: 239, B: 255, A: 255}
)

// Renderer draws a board into a PNG byte slice.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// RenderPNG composes the full board image: squares, pieces and
// coordinate labels. Row 0 (White's home row) is drawn at the bottom.
func (r *Renderer) RenderPNG(ctx context.Context, b *engine.Board) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("board is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	boardW := b.Width() * squareSize
	boardH := b.Height() * squareSize
	totalW := boardW + sideMargin*2
	totalH := boardH + topMargin + sideMargin
	origin := image.Point{X: sideMargin, Y: topMargin}

	img := image.NewRGBA(image.Rect(0, 0, totalW, totalH))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(backgroundFill), image.Point{}, imagedraw.Src)

	drawSquares(img, b, origin)
	if err := drawPieces(img, b, origin); err != nil {
		return nil, err
	}
	drawCoordinates(img, b, origin)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawSquares(dst imagedraw.Image, b *engine.Board, origin image.Point) {
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			x := origin.X + col*squareSize
			y := origin.Y + (b.Height()-1-row)*squareSize
			clr := lightSquare
			if (row+col)%2 == 0 {
				clr = darkSquare
			}
			imagedraw.Draw(dst, image.Rect(x, y, x+squareSize, y+squareSize), image.NewUniform(clr), image.Point{}, imagedraw.Src)
		}
	}
}

func drawPieces(dst imagedraw.Image, b *engine.Board, origin image.Point) error {
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			piece := b.At(row, col)
			if piece == nil {
				continue
			}
			glyph, err := renderPieceImage(*piece, squareSize)
			if err != nil {
				return err
			}
			x := origin.X + col*squareSize
			y := origin.Y + (b.Height()-1-row)*squareSize
			imagedraw.Draw(dst, image.Rect(x, y, x+squareSize, y+squareSize), glyph, image.Point{}, imagedraw.Over)
		}
	}
	return nil
}

// drawCoordinates puts column letters under the board and row numbers
// along the left margin.
func drawCoordinates(dst *image.RGBA, b *engine.Board, origin image.Point) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
	}
	for col := 0; col < b.Width(); col++ {
		label := string(rune('A' + col))
		x := origin.X + col*squareSize + squareSize/2 - drawer.MeasureString(label).Ceil()/2
		y := origin.Y + b.Height()*squareSize + 16
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(label)
	}
	for row := 0; row < b.Height(); row++ {
		label := fmt.Sprintf("%d", row+1)
		x := (sideMargin - drawer.MeasureString(label).Ceil()) / 2
		y := origin.Y + (b.Height()-1-row)*squareSize + squareSize/2 + 4
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(label)
	}
}
