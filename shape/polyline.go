package shape

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/kagami-labs/primitivize/bitmap"
)

// Polyline raw layout is variable-length: x1, y1, x2, y2, ...
type Polyline struct {
	Bounds Bounds
	Points [][2]int
}

// NewRandomPolyline picks a starting point via s (or uniformly) and
// places n control points, each jittered within +/-32 of it; the
// starting point itself is not one of the n points.
func NewRandomPolyline(r *rand.Rand, s Sampler, b Bounds, n int) *Polyline {
	x, y := point(r, s, b)
	pts := make([][2]int, n)
	for i := range pts {
		pts[i] = [2]int{
			jitter(r, x, 32, 0, b.W-1),
			jitter(r, y, 32, 0, b.H-1),
		}
	}
	return &Polyline{Bounds: b, Points: pts}
}

func (s *Polyline) Type() Type { return TypePolyline }

// Rasterize walks Bresenham between successive control points — a
// piecewise-linear approximation of the path, same trade-off as
// QuadraticBezier's control-polygon rasterization.
func (s *Polyline) Rasterize() []bitmap.Scanline {
	var lines []bitmap.Scanline
	for i := 0; i+1 < len(s.Points); i++ {
		a, b := s.Points[i], s.Points[i+1]
		for _, p := range bresenham(a[0], a[1], b[0], b[1]) {
			lines = append(lines, bitmap.Scanline{Y: p[1], X1: p[0], X2: p[0]})
		}
	}
	return bitmap.Trim(lines, s.Bounds.W, s.Bounds.H)
}

func (s *Polyline) Mutate(r *rand.Rand) {
	i := r.Intn(len(s.Points))
	p := s.Points[i]
	s.Points[i] = [2]int{
		jitter(r, p[0], 32, 0, s.Bounds.W-1),
		jitter(r, p[1], 32, 0, s.Bounds.H-1),
	}
}

func (s *Polyline) Clone() Shape {
	pts := make([][2]int, len(s.Points))
	copy(pts, s.Points)
	return &Polyline{Bounds: s.Bounds, Points: pts}
}

func (s *Polyline) RawData() []int32 {
	data := make([]int32, 0, 2*len(s.Points))
	for _, p := range s.Points {
		data = append(data, int32(p[0]), int32(p[1]))
	}
	return data
}

// SVG emits <polyline points="x1,y1 x2,y2 ..." SVG_STYLE_HOOK />. The
// reference implementation this was ported from referenced a field
// that doesn't exist on its polyline type here, so its SVG export was
// dead code; this builds the points attribute from the real point
// list instead.
func (s *Polyline) SVG() string {
	parts := make([]string, len(s.Points))
	for i, p := range s.Points {
		parts[i] = strconv.Itoa(p[0]) + "," + strconv.Itoa(p[1])
	}
	return fmt.Sprintf(`<polyline points="%s" %s />`, strings.Join(parts, " "), SVGStyleHook)
}
