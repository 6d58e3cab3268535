package shape

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kagami-labs/primitivize/bitmap"
)

// RotatedRectangle raw layout: x1, y1, x2, y2, angle_deg.
type RotatedRectangle struct {
	Bounds         Bounds
	X1, Y1, X2, Y2 int
	Angle          int
}

// NewRandomRotatedRectangle is a Rectangle plus a uniform [0,360)
// rotation.
func NewRandomRotatedRectangle(r *rand.Rand, s Sampler, b Bounds) *RotatedRectangle {
	x, y := point(r, s, b)
	return &RotatedRectangle{
		Bounds: b,
		X1:     x, Y1: y,
		X2:    jitter(r, x, 16, 0, b.W-1),
		Y2:    jitter(r, y, 16, 0, b.H-1),
		Angle: r.Intn(360),
	}
}

func (s *RotatedRectangle) Type() Type { return TypeRotatedRectangle }

func (s *RotatedRectangle) corners() ([]float64, []float64) {
	x1, x2 := float64(s.X1), float64(s.X2)
	y1, y2 := float64(s.Y1), float64(s.Y2)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	cx, cy := (x1+x2)/2, (y1+y2)/2
	theta := float64(s.Angle) * math.Pi / 180
	sinT, cosT := math.Sin(theta), math.Cos(theta)

	corners := [][2]float64{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}}
	px := make([]float64, 4)
	py := make([]float64, 4)
	for i, c := range corners {
		dx, dy := c[0]-cx, c[1]-cy
		px[i] = cx + dx*cosT-dy*sinT
		py[i] = cy + dx*sinT+dy*cosT
	}
	return px, py
}

func (s *RotatedRectangle) Rasterize() []bitmap.Scanline {
	px, py := s.corners()
	return bitmap.Trim(scanPolygon(px, py), s.Bounds.W, s.Bounds.H)
}

func (s *RotatedRectangle) Mutate(r *rand.Rand) {
	switch r.Intn(5) {
	case 0:
		s.X1 = jitter(r, s.X1, 16, 0, s.Bounds.W-1)
	case 1:
		s.Y1 = jitter(r, s.Y1, 16, 0, s.Bounds.H-1)
	case 2:
		s.X2 = jitter(r, s.X2, 16, 0, s.Bounds.W-1)
	case 3:
		s.Y2 = jitter(r, s.Y2, 16, 0, s.Bounds.H-1)
	case 4:
		s.Angle = clampAngle(s.Angle + jitter(r, 0, 4, -4, 4))
	}
}

func (s *RotatedRectangle) Clone() Shape {
	c := *s
	return &c
}

func (s *RotatedRectangle) RawData() []int32 {
	return []int32{int32(s.X1), int32(s.Y1), int32(s.X2), int32(s.Y2), int32(s.Angle)}
}

func (s *RotatedRectangle) SVG() string {
	px, py := s.corners()
	return fmt.Sprintf(`<path d="M %f %f L %f %f L %f %f L %f %f Z" %s />`,
		px[0], py[0], px[1], py[1], px[2], py[2], px[3], py[3], SVGStyleHook)
}
