package imageio

import (
	"bytes"
	"testing"

	"github.com/kagami-labs/primitivize/bitmap"
)

func TestRoundTripPNG(t *testing.T) {
	b := bitmap.New(4, 3, bitmap.RGBA{})
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			b.Set(x, y, bitmap.RGBA{R: uint8(x * 50), G: uint8(y * 50), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.W != b.W || decoded.H != b.H {
		t.Fatalf("dimension mismatch: got %dx%d, want %dx%d", decoded.W, decoded.H, b.W, b.H)
	}
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			want := b.At(x, y)
			got := decoded.At(x, y)
			if got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestRoundTripTransparentPixel(t *testing.T) {
	b := bitmap.New(2, 2, bitmap.RGBA{})
	b.Set(0, 0, bitmap.RGBA{R: 10, G: 20, B: 30, A: 0})
	b.Set(1, 1, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255})

	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got := decoded.At(0, 0); got.A != 0 {
		t.Fatalf("transparent pixel decoded with alpha %d", got.A)
	}
	if got := decoded.At(1, 1); got != (bitmap.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("opaque pixel decoded as %+v", got)
	}
}

func TestDecodeInvalidData(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	if err == nil {
		t.Fatal("expected error decoding garbage input")
	}
}
