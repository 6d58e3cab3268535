// Package shape implements the polymorphic primitive family: a tagged
// variant per spec (rectangle, rotated rectangle, triangle, circle,
// ellipse, rotated ellipse, line, polyline, quadratic Bézier), each
// knowing how to construct itself randomly, mutate, rasterize, clone,
// report its type tag, serialize its raw parameters, and emit an SVG
// fragment.
//
// Dispatch is on the Type tag, not an inheritance hierarchy — Shape is
// a small interface every concrete type below satisfies.
package shape

import (
	"math/rand"

	"github.com/kagami-labs/primitivize/bitmap"
)

// Type is the closed enumeration of primitive kinds.
type Type int

const (
	TypeRectangle Type = iota
	TypeRotatedRectangle
	TypeTriangle
	TypeEllipse
	TypeRotatedEllipse
	TypeCircle
	TypeLine
	TypeQuadraticBezier
	TypePolyline
)

// Types is every closed-enumeration value, in tag order; used by
// callers that want to draw a shape kind uniformly at random.
var Types = []Type{
	TypeRectangle, TypeRotatedRectangle, TypeTriangle, TypeEllipse,
	TypeRotatedEllipse, TypeCircle, TypeLine, TypeQuadraticBezier, TypePolyline,
}

func (t Type) String() string {
	switch t {
	case TypeRectangle:
		return "rectangle"
	case TypeRotatedRectangle:
		return "rotated-rectangle"
	case TypeTriangle:
		return "triangle"
	case TypeEllipse:
		return "ellipse"
	case TypeRotatedEllipse:
		return "rotated-ellipse"
	case TypeCircle:
		return "circle"
	case TypeLine:
		return "line"
	case TypeQuadraticBezier:
		return "quadratic-bezier"
	case TypePolyline:
		return "polyline"
	default:
		return "unknown"
	}
}

// Bounds is the clamping domain a shape is constructed and mutated
// within. Passed by value so shapes never hold a reference back to a
// model or canvas.
type Bounds struct {
	W, H int
}

// Sampler supplies the primary point for random construction. The
// default (nil) sampler draws uniformly over Bounds; edgebias.Sampler
// implements this to bias placement toward contour-dense regions
// without shapes needing to know anything about tracing.
type Sampler interface {
	Point(r *rand.Rand, b Bounds) (x, y int)
}

// Shape is the operation set every primitive kind implements.
type Shape interface {
	// Type reports the closed type tag.
	Type() Type
	// Rasterize produces the shape's filled interior (or thin path for
	// line/polyline/Bézier) as trimmed scanlines.
	Rasterize() []bitmap.Scanline
	// Mutate perturbs one randomly chosen parameter in place and
	// reclamps every parameter into its declared domain. It never
	// changes Type() or the parameter count.
	Mutate(r *rand.Rand)
	// Clone returns an independent copy; mutating the clone must never
	// affect the original.
	Clone() Shape
	// RawData returns the shape's parameters in the fixed per-type
	// layout documented on each concrete type.
	RawData() []int32
	// SVG returns a self-contained fragment containing the literal
	// token SVG_STYLE_HOOK exactly once, where the caller splices in
	// fill/stroke attributes.
	SVG() string
}

// NewRandom constructs a fresh shape of type t within b, using s (or
// uniform sampling if s is nil) for the primary point.
func NewRandom(r *rand.Rand, t Type, s Sampler, b Bounds) Shape {
	switch t {
	case TypeRectangle:
		return NewRandomRectangle(r, s, b)
	case TypeRotatedRectangle:
		return NewRandomRotatedRectangle(r, s, b)
	case TypeTriangle:
		return NewRandomTriangle(r, s, b)
	case TypeEllipse:
		return NewRandomEllipse(r, s, b)
	case TypeRotatedEllipse:
		return NewRandomRotatedEllipse(r, s, b)
	case TypeCircle:
		return NewRandomCircle(r, s, b)
	case TypeLine:
		return NewRandomLine(r, s, b)
	case TypeQuadraticBezier:
		return NewRandomQuadraticBezier(r, s, b)
	case TypePolyline:
		return NewRandomPolyline(r, s, b, 4)
	default:
		return NewRandom(r, Types[r.Intn(len(Types))], s, b)
	}
}

// SVGStyleHook is the placeholder token every SVG fragment carries
// exactly once, spliced out by svgdoc.Document.Add.
const SVGStyleHook = "SVG_STYLE_HOOK"

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampAngle(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

func point(r *rand.Rand, s Sampler, b Bounds) (int, int) {
	if s != nil {
		return s.Point(r, b)
	}
	return r.Intn(b.W), r.Intn(b.H)
}

func jitter(r *rand.Rand, v, radius, lo, hi int) int {
	return clamp(v+radius-r.Intn(2*radius+1), lo, hi)
}

// bresenham returns the integer points on the line from (x0,y0) to
// (x1,y1) inclusive, using Bresenham's algorithm. Used by Line,
// Polyline, and QuadraticBezier's control-polygon rasterization.
func bresenham(x0, y0, x1, y1 int) [][2]int {
	var pts [][2]int
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		pts = append(pts, [2]int{x, y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// scanPolygon rasterizes a closed polygon by edge interpolation: for
// each integer y, intersect every edge with the horizontal line y+0.5
// and span min-x to max-x of the intersections. Standard scanline
// polygon fill, shared by Triangle and RotatedRectangle.
func scanPolygon(px, py []float64) []bitmap.Scanline {
	n := len(px)
	minY, maxY := py[0], py[0]
	for _, y := range py {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	y0 := int(minY)
	y1 := int(maxY)
	var lines []bitmap.Scanline
	for y := y0; y <= y1; y++ {
		scanY := float64(y) + 0.5
		var xs []float64
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ya, yb := py[i], py[j]
			if ya == yb {
				continue
			}
			if (scanY >= ya && scanY < yb) || (scanY >= yb && scanY < ya) {
				t := (scanY - ya) / (yb - ya)
				xs = append(xs, px[i]+t*(px[j]-px[i]))
			}
		}
		if len(xs) == 0 {
			continue
		}
		minX, maxX := xs[0], xs[0]
		for _, x := range xs {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		lines = append(lines, bitmap.Scanline{Y: y, X1: int(minX), X2: int(maxX)})
	}
	return lines
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
