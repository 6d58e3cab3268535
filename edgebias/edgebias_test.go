package edgebias

import (
	"math/rand"
	"testing"

	"github.com/kagami-labs/primitivize/bitmap"
	"github.com/kagami-labs/primitivize/shape"
	"github.com/kagami-labs/primitivize/svgdoc"
)

func TestBuildMaskThreshold(t *testing.T) {
	b := bitmap.New(2, 1, bitmap.RGBA{})
	b.Set(0, 0, bitmap.RGBA{R: 0, G: 0, B: 0, A: 255})
	b.Set(1, 0, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255})

	mask := BuildMask(b, 128)
	if v := mask.GrayAt(0, 0).Y; v != 0 {
		t.Fatalf("dark pixel mask = %d, want 0", v)
	}
	if v := mask.GrayAt(1, 0).Y; v != 255 {
		t.Fatalf("light pixel mask = %d, want 255", v)
	}
}

func TestBuildMaskTransparentIsBackground(t *testing.T) {
	b := bitmap.New(1, 1, bitmap.RGBA{})
	b.Set(0, 0, bitmap.RGBA{R: 0, G: 0, B: 0, A: 0})
	mask := BuildMask(b, 200)
	if v := mask.GrayAt(0, 0).Y; v != 255 {
		t.Fatalf("transparent pixel mask = %d, want 255 (background)", v)
	}
}

func TestSamplerPointAlwaysInBounds(t *testing.T) {
	boxes := []svgdoc.BBox{{X0: 5, Y0: 5, X1: 15, Y1: 15}}
	s := NewSampler(boxes)
	r := rand.New(rand.NewSource(1))
	b := shape.Bounds{W: 20, H: 20}

	for i := 0; i < 200; i++ {
		x, y := s.Point(r, b)
		if x < 0 || x >= b.W || y < 0 || y >= b.H {
			t.Fatalf("sample %d out of bounds: (%d,%d) vs %v", i, x, y, b)
		}
	}
}

func TestSamplerEmptyBoxesFallsBackToUniform(t *testing.T) {
	s := NewSampler(nil)
	r := rand.New(rand.NewSource(2))
	b := shape.Bounds{W: 10, H: 10}
	for i := 0; i < 50; i++ {
		x, y := s.Point(r, b)
		if x < 0 || x >= b.W || y < 0 || y >= b.H {
			t.Fatalf("sample out of bounds: (%d,%d)", x, y)
		}
	}
}

func TestSamplerWeightsByArea(t *testing.T) {
	boxes := []svgdoc.BBox{
		{X0: 0, Y0: 0, X1: 1, Y1: 1},   // area 1
		{X0: 5, Y0: 5, X1: 15, Y1: 15}, // area 100
	}
	s := NewSampler(boxes)
	r := rand.New(rand.NewSource(4))
	b := shape.Bounds{W: 20, H: 20}

	var inBigBox int
	const trials = 2000
	for i := 0; i < trials; i++ {
		x, y := s.Point(r, b)
		if x >= 5 && x < 15 && y >= 5 && y < 15 {
			inBigBox++
		}
	}

	// the large box has ~100x the area of the small one, so it should
	// dominate the draws by a wide margin.
	if inBigBox < trials*9/10 {
		t.Fatalf("large box only drawn %d/%d times, want area-weighted dominance", inBigBox, trials)
	}
}

func TestSamplerDegenerateBoxStillInBounds(t *testing.T) {
	boxes := []svgdoc.BBox{{X0: 19, Y0: 19, X1: 19, Y1: 19}}
	s := NewSampler(boxes)
	r := rand.New(rand.NewSource(3))
	b := shape.Bounds{W: 20, H: 20}
	for i := 0; i < 20; i++ {
		x, y := s.Point(r, b)
		if x < 0 || x >= b.W || y < 0 || y >= b.H {
			t.Fatalf("degenerate box sample out of bounds: (%d,%d)", x, y)
		}
	}
}
