package shape

import (
	"fmt"
	"math/rand"

	"github.com/kagami-labs/primitivize/bitmap"
)

// Triangle raw layout: x1, y1, x2, y2, x3, y3.
type Triangle struct {
	Bounds                 Bounds
	X1, Y1, X2, Y2, X3, Y3 int
}

// NewRandomTriangle places a primary vertex uniformly (or via s) and
// jitters the other two vertices within +/-32 of it.
func NewRandomTriangle(r *rand.Rand, s Sampler, b Bounds) *Triangle {
	x, y := point(r, s, b)
	return &Triangle{
		Bounds: b,
		X1:     x, Y1: y,
		X2: jitter(r, x, 32, 0, b.W-1), Y2: jitter(r, y, 32, 0, b.H-1),
		X3: jitter(r, x, 32, 0, b.W-1), Y3: jitter(r, y, 32, 0, b.H-1),
	}
}

func (s *Triangle) Type() Type { return TypeTriangle }

func (s *Triangle) Rasterize() []bitmap.Scanline {
	px := []float64{float64(s.X1), float64(s.X2), float64(s.X3)}
	py := []float64{float64(s.Y1), float64(s.Y2), float64(s.Y3)}
	return bitmap.Trim(scanPolygon(px, py), s.Bounds.W, s.Bounds.H)
}

func (s *Triangle) Mutate(r *rand.Rand) {
	switch r.Intn(3) {
	case 0:
		s.X1 = jitter(r, s.X1, 32, 0, s.Bounds.W-1)
		s.Y1 = jitter(r, s.Y1, 32, 0, s.Bounds.H-1)
	case 1:
		s.X2 = jitter(r, s.X2, 32, 0, s.Bounds.W-1)
		s.Y2 = jitter(r, s.Y2, 32, 0, s.Bounds.H-1)
	case 2:
		s.X3 = jitter(r, s.X3, 32, 0, s.Bounds.W-1)
		s.Y3 = jitter(r, s.Y3, 32, 0, s.Bounds.H-1)
	}
}

func (s *Triangle) Clone() Shape {
	c := *s
	return &c
}

func (s *Triangle) RawData() []int32 {
	return []int32{int32(s.X1), int32(s.Y1), int32(s.X2), int32(s.Y2), int32(s.X3), int32(s.Y3)}
}

func (s *Triangle) SVG() string {
	return fmt.Sprintf(`<path d="M %d %d L %d %d L %d %d Z" %s />`,
		s.X1, s.Y1, s.X2, s.Y2, s.X3, s.Y3, SVGStyleHook)
}
