package render

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/unvoid/unvoid-chess/internal/engine"
)

func TestRenderPNGFreshBoard(t *testing.T) {
	b := engine.New(8, 6)
	data, err := NewRenderer().RenderPNG(context.Background(), b)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty PNG output")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	wantW := 8*squareSize + sideMargin*2
	wantH := 6*squareSize + topMargin + sideMargin
	got := img.Bounds().Size()
	if got.X != wantW || got.Y != wantH {
		t.Fatalf("image size = %dx%d, want %dx%d", got.X, got.Y, wantW, wantH)
	}
}

func TestRenderPNGNilBoard(t *testing.T) {
	if _, err := NewRenderer().RenderPNG(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil board")
	}
}

func TestRenderPNGCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRenderer().RenderPNG(ctx, engine.New(6, 6)); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestPieceAssetNames(t *testing.T) {
	cases := map[engine.Piece]string{
		{Type: engine.Royal, Color: engine.White}:  "assets/pieces/wRoyal.svg",
		{Type: engine.Runner, Color: engine.Black}: "assets/pieces/bRunner.svg",
		{Type: engine.Leaper, Color: engine.White}: "assets/pieces/wLeaper.svg",
	}
	for piece, want := range cases {
		if got := pieceAssetName(piece); got != want {
			t.Fatalf("pieceAssetName(%v) = %q, want %q", piece, got, want)
		}
	}
	// Every asset must be readable and rasterizable.
	for _, c := range []engine.Color{engine.White, engine.Black} {
		for _, typ := range []engine.PieceType{engine.Runner, engine.Leaper, engine.Royal} {
			if _, err := renderPieceImage(engine.Piece{Type: typ, Color: c}, 32); err != nil {
				t.Fatalf("renderPieceImage(%v %v): %v", c, typ, err)
			}
		}
	}
}
