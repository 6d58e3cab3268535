package shape

import (
	"fmt"
	"math/rand"

	"github.com/kagami-labs/primitivize/bitmap"
)

// Ellipse raw layout: cx, cy, rx, ry.
type Ellipse struct {
	Bounds Bounds
	Cx, Cy int
	Rx, Ry int
}

// NewRandomEllipse places its center via s (or uniformly) and picks
// each radius in [1, 32] independently.
func NewRandomEllipse(r *rand.Rand, s Sampler, b Bounds) *Ellipse {
	x, y := point(r, s, b)
	return &Ellipse{
		Bounds: b,
		Cx:     x, Cy: y,
		Rx: 1 + r.Intn(32),
		Ry: 1 + r.Intn(32),
	}
}

func (s *Ellipse) Type() Type { return TypeEllipse }

func (s *Ellipse) Rasterize() []bitmap.Scanline {
	var lines []bitmap.Scanline
	rx, ry := s.Rx, s.Ry
	if rx == 0 || ry == 0 {
		return nil
	}
	for dy := -ry; dy <= ry; dy++ {
		y := s.Cy + dy
		// x^2/rx^2 + y^2/ry^2 <= 1  =>  x <= rx*sqrt(1 - y^2/ry^2)
		rem := ry*ry - dy*dy
		if rem < 0 {
			continue
		}
		dx := (rx * isqrt(rem*10000)) / (ry * 100)
		lines = append(lines, bitmap.Scanline{Y: y, X1: s.Cx - dx, X2: s.Cx + dx})
	}
	return bitmap.Trim(lines, s.Bounds.W, s.Bounds.H)
}

func (s *Ellipse) Mutate(r *rand.Rand) {
	switch r.Intn(4) {
	case 0:
		s.Cx = jitter(r, s.Cx, 16, 0, s.Bounds.W-1)
	case 1:
		s.Cy = jitter(r, s.Cy, 16, 0, s.Bounds.H-1)
	case 2:
		s.Rx = clamp(s.Rx+jitter(r, 0, 16, -16, 16), 1, maxDim(s.Bounds))
	case 3:
		s.Ry = clamp(s.Ry+jitter(r, 0, 16, -16, 16), 1, maxDim(s.Bounds))
	}
}

func (s *Ellipse) Clone() Shape {
	c := *s
	return &c
}

func (s *Ellipse) RawData() []int32 {
	return []int32{int32(s.Cx), int32(s.Cy), int32(s.Rx), int32(s.Ry)}
}

func (s *Ellipse) SVG() string {
	return fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="%d" ry="%d" %s />`,
		s.Cx, s.Cy, s.Rx, s.Ry, SVGStyleHook)
}
