package shape

import (
	"fmt"
	"math/rand"

	"github.com/kagami-labs/primitivize/bitmap"
)

// Circle raw layout: cx, cy, r.
type Circle struct {
	Bounds Bounds
	Cx, Cy int
	R      int
}

// NewRandomCircle places its center via s (or uniformly) and picks a
// radius in [1, 32].
func NewRandomCircle(r *rand.Rand, s Sampler, b Bounds) *Circle {
	x, y := point(r, s, b)
	return &Circle{
		Bounds: b,
		Cx:     x, Cy: y,
		R: 1 + r.Intn(32),
	}
}

func (s *Circle) Type() Type { return TypeCircle }

// Rasterize does a midpoint scan: for each row in the vertical extent,
// solve the circle equation for the row's x-extent.
func (s *Circle) Rasterize() []bitmap.Scanline {
	var lines []bitmap.Scanline
	rr := s.R * s.R
	for dy := -s.R; dy <= s.R; dy++ {
		y := s.Cy + dy
		rem := rr - dy*dy
		if rem < 0 {
			continue
		}
		dx := isqrt(rem)
		lines = append(lines, bitmap.Scanline{Y: y, X1: s.Cx - dx, X2: s.Cx + dx})
	}
	return bitmap.Trim(lines, s.Bounds.W, s.Bounds.H)
}

func (s *Circle) Mutate(r *rand.Rand) {
	switch r.Intn(3) {
	case 0:
		s.Cx = jitter(r, s.Cx, 16, 0, s.Bounds.W-1)
	case 1:
		s.Cy = jitter(r, s.Cy, 16, 0, s.Bounds.H-1)
	case 2:
		s.R = clamp(s.R+jitter(r, 0, 16, -16, 16), 1, maxDim(s.Bounds))
	}
}

func (s *Circle) Clone() Shape {
	c := *s
	return &c
}

func (s *Circle) RawData() []int32 {
	return []int32{int32(s.Cx), int32(s.Cy), int32(s.R)}
}

func (s *Circle) SVG() string {
	return fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" %s />`, s.Cx, s.Cy, s.R, SVGStyleHook)
}

func maxDim(b Bounds) int {
	if b.W > b.H {
		return b.W
	}
	return b.H
}

// isqrt is an integer floor square root via Newton's method, used for
// the circle/ellipse midpoint scan.
func isqrt(v int) int {
	if v <= 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}
