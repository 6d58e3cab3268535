package shape

import (
	"fmt"
	"math/rand"

	"github.com/kagami-labs/primitivize/bitmap"
)

// Line raw layout: x1, y1, x2, y2.
type Line struct {
	Bounds         Bounds
	X1, Y1, X2, Y2 int
}

// NewRandomLine places one endpoint via s (or uniformly) and jitters
// the other within +/-32.
func NewRandomLine(r *rand.Rand, s Sampler, b Bounds) *Line {
	x, y := point(r, s, b)
	return &Line{
		Bounds: b,
		X1:     x, Y1: y,
		X2: jitter(r, x, 32, 0, b.W-1),
		Y2: jitter(r, y, 32, 0, b.H-1),
	}
}

func (s *Line) Type() Type { return TypeLine }

// Rasterize walks Bresenham between the endpoints, one scanline of
// length 1 per pixel — a degenerate line (both endpoints clamped to
// the same pixel) rasterizes to exactly one such scanline.
func (s *Line) Rasterize() []bitmap.Scanline {
	pts := bresenham(s.X1, s.Y1, s.X2, s.Y2)
	lines := make([]bitmap.Scanline, len(pts))
	for i, p := range pts {
		lines[i] = bitmap.Scanline{Y: p[1], X1: p[0], X2: p[0]}
	}
	return bitmap.Trim(lines, s.Bounds.W, s.Bounds.H)
}

func (s *Line) Mutate(r *rand.Rand) {
	switch r.Intn(4) {
	case 0:
		s.X1 = jitter(r, s.X1, 32, 0, s.Bounds.W-1)
	case 1:
		s.Y1 = jitter(r, s.Y1, 32, 0, s.Bounds.H-1)
	case 2:
		s.X2 = jitter(r, s.X2, 32, 0, s.Bounds.W-1)
	case 3:
		s.Y2 = jitter(r, s.Y2, 32, 0, s.Bounds.H-1)
	}
}

func (s *Line) Clone() Shape {
	c := *s
	return &c
}

func (s *Line) RawData() []int32 {
	return []int32{int32(s.X1), int32(s.Y1), int32(s.X2), int32(s.Y2)}
}

func (s *Line) SVG() string {
	return fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" %s />`,
		s.X1, s.Y1, s.X2, s.Y2, SVGStyleHook)
}
