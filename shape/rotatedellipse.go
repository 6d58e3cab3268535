package shape

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kagami-labs/primitivize/bitmap"
)

// RotatedEllipse raw layout: cx, cy, rx, ry, angle_deg.
type RotatedEllipse struct {
	Bounds Bounds
	Cx, Cy int
	Rx, Ry int
	Angle  int
}

// NewRandomRotatedEllipse is an Ellipse plus a uniform [0,360)
// rotation.
func NewRandomRotatedEllipse(r *rand.Rand, s Sampler, b Bounds) *RotatedEllipse {
	x, y := point(r, s, b)
	return &RotatedEllipse{
		Bounds: b,
		Cx:     x, Cy: y,
		Rx:    1 + r.Intn(32),
		Ry:    1 + r.Intn(32),
		Angle: r.Intn(360),
	}
}

func (s *RotatedEllipse) Type() Type { return TypeRotatedEllipse }

// samples the boundary at fine angular resolution and returns the
// per-row [minX,maxX] span, indexed by row - minRow so callers can
// walk it in deterministic ascending-y order.
func (s *RotatedEllipse) boundaryRows() (minRow int, spans [][2]float64, touched []bool) {
	theta := float64(s.Angle) * math.Pi / 180
	sinT, cosT := math.Sin(theta), math.Cos(theta)

	extent := s.Rx
	if s.Ry > extent {
		extent = s.Ry
	}
	minRow = s.Cy - extent - 1
	maxRow := s.Cy + extent + 1
	n := maxRow - minRow + 1
	spans = make([][2]float64, n)
	touched = make([]bool, n)

	const steps = 720
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		ex := float64(s.Rx) * math.Cos(a)
		ey := float64(s.Ry) * math.Sin(a)
		x := float64(s.Cx) + ex*cosT - ey*sinT
		y := float64(s.Cy) + ex*sinT + ey*cosT

		row := int(math.Round(y)) - minRow
		if row < 0 || row >= n {
			continue
		}
		if touched[row] {
			spans[row] = [2]float64{math.Min(spans[row][0], x), math.Max(spans[row][1], x)}
		} else {
			spans[row] = [2]float64{x, x}
			touched[row] = true
		}
	}
	return minRow, spans, touched
}

func (s *RotatedEllipse) Rasterize() []bitmap.Scanline {
	minRow, spans, touched := s.boundaryRows()
	lines := make([]bitmap.Scanline, 0, len(spans))
	for i, span := range spans {
		if !touched[i] {
			continue
		}
		lines = append(lines, bitmap.Scanline{
			Y: minRow + i, X1: int(math.Round(span[0])), X2: int(math.Round(span[1])),
		})
	}
	return bitmap.Trim(lines, s.Bounds.W, s.Bounds.H)
}

func (s *RotatedEllipse) Mutate(r *rand.Rand) {
	switch r.Intn(5) {
	case 0:
		s.Cx = jitter(r, s.Cx, 16, 0, s.Bounds.W-1)
	case 1:
		s.Cy = jitter(r, s.Cy, 16, 0, s.Bounds.H-1)
	case 2:
		s.Rx = clamp(s.Rx+jitter(r, 0, 16, -16, 16), 1, maxDim(s.Bounds))
	case 3:
		s.Ry = clamp(s.Ry+jitter(r, 0, 16, -16, 16), 1, maxDim(s.Bounds))
	case 4:
		s.Angle = clampAngle(s.Angle + jitter(r, 0, 4, -4, 4))
	}
}

func (s *RotatedEllipse) Clone() Shape {
	c := *s
	return &c
}

func (s *RotatedEllipse) RawData() []int32 {
	return []int32{int32(s.Cx), int32(s.Cy), int32(s.Rx), int32(s.Ry), int32(s.Angle)}
}

func (s *RotatedEllipse) SVG() string {
	return fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="%d" ry="%d" transform="rotate(%d %d %d)" %s />`,
		s.Cx, s.Cy, s.Rx, s.Ry, s.Angle, s.Cx, s.Cy, SVGStyleHook)
}
