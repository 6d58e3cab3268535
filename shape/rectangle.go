package shape

import (
	"fmt"
	"math/rand"

	"github.com/kagami-labs/primitivize/bitmap"
)

// Rectangle is an axis-aligned rectangle, raw layout: x1, y1, x2, y2.
type Rectangle struct {
	Bounds         Bounds
	X1, Y1, X2, Y2 int
}

// NewRandomRectangle places a primary corner uniformly (or via s) and
// jitters the opposite corner within +/-16.
func NewRandomRectangle(r *rand.Rand, s Sampler, b Bounds) *Rectangle {
	x, y := point(r, s, b)
	return &Rectangle{
		Bounds: b,
		X1:     x, Y1: y,
		X2: jitter(r, x, 16, 0, b.W-1),
		Y2: jitter(r, y, 16, 0, b.H-1),
	}
}

func (s *Rectangle) Type() Type { return TypeRectangle }

func (s *Rectangle) Rasterize() []bitmap.Scanline {
	x1, x2 := s.X1, s.X2
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := s.Y1, s.Y2
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	lines := make([]bitmap.Scanline, 0, y2-y1+1)
	for y := y1; y <= y2; y++ {
		lines = append(lines, bitmap.Scanline{Y: y, X1: x1, X2: x2})
	}
	return bitmap.Trim(lines, s.Bounds.W, s.Bounds.H)
}

func (s *Rectangle) Mutate(r *rand.Rand) {
	switch r.Intn(4) {
	case 0:
		s.X1 = jitter(r, s.X1, 16, 0, s.Bounds.W-1)
	case 1:
		s.Y1 = jitter(r, s.Y1, 16, 0, s.Bounds.H-1)
	case 2:
		s.X2 = jitter(r, s.X2, 16, 0, s.Bounds.W-1)
	case 3:
		s.Y2 = jitter(r, s.Y2, 16, 0, s.Bounds.H-1)
	}
}

func (s *Rectangle) Clone() Shape {
	c := *s
	return &c
}

func (s *Rectangle) RawData() []int32 {
	return []int32{int32(s.X1), int32(s.Y1), int32(s.X2), int32(s.Y2)}
}

func (s *Rectangle) SVG() string {
	x1, x2 := s.X1, s.X2
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := s.Y1, s.Y2
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" %s />`,
		x1, y1, x2-x1, y2-y1, SVGStyleHook)
}
