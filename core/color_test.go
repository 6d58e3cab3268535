package core

import (
	"math"
	"testing"

	"github.com/kagami-labs/primitivize/bitmap"
)

func TestComputeColorCheckerboard(t *testing.T) {
	target := bitmap.New(2, 2, bitmap.RGBA{})
	target.Set(0, 0, bitmap.RGBA{R: 0, G: 0, B: 0, A: 255})
	target.Set(1, 0, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255})
	target.Set(0, 1, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255})
	target.Set(1, 1, bitmap.RGBA{R: 0, G: 0, B: 0, A: 255})

	current := bitmap.New(2, 2, bitmap.RGBA{R: 128, G: 128, B: 128, A: 255})
	lines := []bitmap.Scanline{{Y: 0, X1: 0, X2: 1}, {Y: 1, X1: 0, X2: 1}}

	got := ComputeColor(target, current, lines, 255)
	if got.R < 126 || got.R > 129 {
		t.Errorf("R = %d, want ~127/128", got.R)
	}
	if got.A != 255 {
		t.Errorf("A = %d, want 255", got.A)
	}
}

func TestComputeColorEmptyLines(t *testing.T) {
	target := bitmap.New(2, 2, bitmap.RGBA{R: 9, G: 9, B: 9, A: 255})
	current := bitmap.New(2, 2, bitmap.RGBA{R: 1, G: 1, B: 1, A: 255})
	got := ComputeColor(target, current, nil, 128)
	if got != (bitmap.RGBA{R: 0, G: 0, B: 0, A: 128}) {
		t.Fatalf("ComputeColor(empty) = %+v, want {0 0 0 128}", got)
	}
}

func TestComputeColorZeroAlpha(t *testing.T) {
	target := bitmap.New(2, 2, bitmap.RGBA{R: 9, G: 9, B: 9, A: 255})
	current := bitmap.New(2, 2, bitmap.RGBA{R: 1, G: 1, B: 1, A: 255})
	lines := []bitmap.Scanline{{Y: 0, X1: 0, X2: 1}}
	got := ComputeColor(target, current, lines, 0)
	if got != (bitmap.RGBA{}) {
		t.Fatalf("ComputeColor(alpha=0) = %+v, want zero value", got)
	}
}

func TestComputeColorOptimality(t *testing.T) {
	target := bitmap.New(4, 1, bitmap.RGBA{})
	vals := []uint8{10, 200, 50, 90}
	for x, v := range vals {
		target.Set(x, 0, bitmap.RGBA{R: v, G: v, B: v, A: 255})
	}
	current := bitmap.New(4, 1, bitmap.RGBA{R: 0, G: 0, B: 0, A: 255})
	lines := []bitmap.Scanline{{Y: 0, X1: 0, X2: 3}}
	alpha := uint8(255)

	solved := ComputeColor(target, current, lines, alpha)
	after := current.Clone()
	DrawLines(after, solved, lines)
	solvedErr := errorOver(target, after, lines)

	// Any color 40 away from the solved value should not do better.
	for _, delta := range []int{-40, 40} {
		alt := bitmap.RGBA{
			clampChannel(float64(int(solved.R) + delta)),
			clampChannel(float64(int(solved.G) + delta)),
			clampChannel(float64(int(solved.B) + delta)),
			alpha,
		}
		altAfter := current.Clone()
		DrawLines(altAfter, alt, lines)
		altErr := errorOver(target, altAfter, lines)
		if altErr < solvedErr-1e-9 {
			t.Fatalf("alt color %+v scored %v, better than solved %+v at %v", alt, altErr, solved, solvedErr)
		}
	}
}

func errorOver(target, current *bitmap.Bitmap, lines []bitmap.Scanline) float64 {
	var sum float64
	for _, l := range lines {
		for x := l.X1; x <= l.X2; x++ {
			t := target.At(x, l.Y)
			c := current.At(x, l.Y)
			sum += math.Pow(float64(t.R)-float64(c.R), 2)
			sum += math.Pow(float64(t.G)-float64(c.G), 2)
			sum += math.Pow(float64(t.B)-float64(c.B), 2)
		}
	}
	return sum
}
