package core

import (
	"testing"

	"github.com/kagami-labs/primitivize/bitmap"
)

func TestDrawLinesFullOpacity(t *testing.T) {
	canvas := bitmap.New(2, 2, bitmap.RGBA{R: 0, G: 0, B: 0, A: 255})
	DrawLines(canvas, bitmap.RGBA{R: 255, G: 0, B: 0, A: 255}, []bitmap.Scanline{{Y: 0, X1: 0, X2: 1}})
	if got := canvas.At(0, 0); got != (bitmap.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("At(0,0) = %+v, want opaque red", got)
	}
	if got := canvas.At(0, 1); got != (bitmap.RGBA{R: 0, G: 0, B: 0, A: 255}) {
		t.Errorf("At(0,1) = %+v, want untouched black", got)
	}
}

func TestDrawLinesHalfOpacity(t *testing.T) {
	canvas := bitmap.New(1, 1, bitmap.RGBA{R: 0, G: 0, B: 0, A: 0})
	DrawLines(canvas, bitmap.RGBA{R: 200, G: 0, B: 0, A: 128}, []bitmap.Scanline{{Y: 0, X1: 0, X2: 0}})
	got := canvas.At(0, 0)
	if got.R < 95 || got.R > 105 {
		t.Errorf("R = %d, want ~100 (200*128/255)", got.R)
	}
	if got.A < 123 || got.A > 133 {
		t.Errorf("A = %d, want ~128", got.A)
	}
}

func TestCopyLinesRoundTrip(t *testing.T) {
	canvas := bitmap.New(3, 3, bitmap.RGBA{R: 1, G: 2, B: 3, A: 4})
	before := canvas.Clone()
	lines := []bitmap.Scanline{{Y: 1, X1: 0, X2: 2}}

	DrawLines(canvas, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255}, lines)
	if canvas.At(0, 1) == before.At(0, 1) {
		t.Fatal("DrawLines had no visible effect on row 1")
	}

	CopyLines(canvas, before, lines)
	for x := 0; x < 3; x++ {
		if canvas.At(x, 1) != before.At(x, 1) {
			t.Errorf("row 1 not restored at x=%d: got %+v, want %+v", x, canvas.At(x, 1), before.At(x, 1))
		}
	}
}
