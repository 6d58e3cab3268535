package edgebias

import (
	"math/rand"

	"github.com/kagami-labs/primitivize/shape"
	"github.com/kagami-labs/primitivize/svgdoc"
)

// Sampler implements shape.Sampler, biasing primary-point placement
// toward a fixed set of detail regions instead of sampling uniformly
// across the whole canvas.
type Sampler struct {
	boxes      []svgdoc.BBox
	cumWeights []float64
}

// NewSampler builds a Sampler from the bounding boxes Contours found,
// weighting each by its own area so a large contour draws more
// primary points than a sliver. An empty or nil boxes falls back to
// uniform sampling over Bounds — Point never panics on a degenerate
// mask.
func NewSampler(boxes []svgdoc.BBox) *Sampler {
	cum := make([]float64, len(boxes))
	var total float64
	for i, box := range boxes {
		total += area(box)
		cum[i] = total
	}
	return &Sampler{boxes: boxes, cumWeights: cum}
}

func area(box svgdoc.BBox) float64 {
	w := box.X1 - box.X0
	h := box.Y1 - box.Y0
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Point implements shape.Sampler: picks a contour with probability
// proportional to its bounding box area and returns a uniform point
// inside it, falling back to uniform sampling over the whole canvas
// only when there are no contours to draw from.
func (s *Sampler) Point(r *rand.Rand, b shape.Bounds) (x, y int) {
	if len(s.boxes) == 0 {
		return r.Intn(b.W), r.Intn(b.H)
	}

	box := s.boxes[s.pickWeighted(r)]
	x0, y0 := int(box.X0), int(box.Y0)
	x1, y1 := int(box.X1), int(box.Y1)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x = x0 + r.Intn(x1-x0)
	y = y0 + r.Intn(y1-y0)
	return clampInto(x, 0, b.W-1), clampInto(y, 0, b.H-1)
}

// pickWeighted draws an index from s.boxes with probability
// proportional to area, via a linear scan of the cumulative weight
// table. All-zero weights (every box degenerate) fall back to a
// uniform index pick.
func (s *Sampler) pickWeighted(r *rand.Rand) int {
	total := s.cumWeights[len(s.cumWeights)-1]
	if total <= 0 {
		return r.Intn(len(s.boxes))
	}

	target := r.Float64() * total
	for i, c := range s.cumWeights {
		if target < c {
			return i
		}
	}
	return len(s.boxes) - 1
}

func clampInto(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
