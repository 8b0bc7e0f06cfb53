package engine

import (
	"errors"
	"testing"
)

func TestParseSquareRoundTrip(t *testing.T) {
	const height, width = 8, 6
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			want := Coord{Row: r, Col: c}
			got, err := ParseSquare(want.Label(), height, width)
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", want.Label(), err)
			}
			if got != want {
				t.Fatalf("round trip %q: got %+v want %+v", want.Label(), got, want)
			}
		}
	}
}

func TestParseSquareCaseInsensitive(t *testing.T) {
	got, err := ParseSquare("c3", 8, 6)
	if err != nil {
		t.Fatalf("ParseSquare: %v", err)
	}
	if got != (Coord{Row: 2, Col: 2}) {
		t.Fatalf("got %+v", got)
	}
}

func TestParseSquareFormatErrors(t *testing.T) {
	for _, label := range []string{"", "A", "AB", "A0x", "Aone", "A-1"} {
		_, err := ParseSquare(label, 8, 8)
		if !errors.Is(err, ErrBadSquareFormat) {
			t.Fatalf("ParseSquare(%q) = %v, want ErrBadSquareFormat", label, err)
		}
	}
}

func TestParseSquareRangeErrors(t *testing.T) {
	cases := []struct {
		label         string
		height, width int
	}{
		{"A0", 8, 8}, // row is one-based
		{"A9", 8, 8}, // above top row
		{"I1", 8, 8}, // column past H
		{"G1", 8, 6}, // column past F on a narrow board
	}
	for _, tc := range cases {
		_, err := ParseSquare(tc.label, tc.height, tc.width)
		if !errors.Is(err, ErrSquareOutOfRange) {
			t.Fatalf("ParseSquare(%q) = %v, want ErrSquareOutOfRange", tc.label, err)
		}
	}
}
