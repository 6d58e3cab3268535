package svgdoc

import (
	"encoding/xml"
	"strings"
)

// pathElement and rectElement mirror the subset of SVG markup this
// engine ever emits, enough to recover geometry back out of a
// rendered document (e.g. for edge-bias bounding boxes).
type pathElement struct {
	D string `xml:"d,attr"`
}

type rectElement struct {
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
}

type circleElement struct {
	Cx float64 `xml:"cx,attr"`
	Cy float64 `xml:"cy,attr"`
	R  float64 `xml:"r,attr"`
}

type ellipseElement struct {
	Cx float64 `xml:"cx,attr"`
	Cy float64 `xml:"cy,attr"`
	Rx float64 `xml:"rx,attr"`
	Ry float64 `xml:"ry,attr"`
}

type fragment struct {
	Paths    []pathElement    `xml:"path"`
	Rects    []rectElement    `xml:"rect"`
	Circles  []circleElement  `xml:"circle"`
	Ellipses []ellipseElement `xml:"ellipse"`
}

// ExtractPaths pulls every <path d="..."> attribute out of an SVG
// fragment or document. Malformed XML yields a nil slice rather than
// an error, matching how callers use this for best-effort geometry
// recovery, not document validation.
func ExtractPaths(svgDoc string) []string {
	var f fragment
	if err := xml.Unmarshal([]byte(wrap(svgDoc)), &f); err != nil {
		return nil
	}
	paths := make([]string, len(f.Paths))
	for i, p := range f.Paths {
		paths[i] = p.D
	}
	return paths
}

// BoundingBoxes recovers an axis-aligned bounding box for every
// primitive shape in an SVG fragment (rects, circles, ellipses — not
// paths, whose extent isn't recoverable without full path parsing).
type BBox struct {
	X0, Y0, X1, Y1 float64
}

func BoundingBoxes(svgDoc string) []BBox {
	var f fragment
	if err := xml.Unmarshal([]byte(wrap(svgDoc)), &f); err != nil {
		return nil
	}

	boxes := make([]BBox, 0, len(f.Rects)+len(f.Circles)+len(f.Ellipses))
	for _, r := range f.Rects {
		boxes = append(boxes, BBox{r.X, r.Y, r.X + r.Width, r.Y + r.Height})
	}
	for _, c := range f.Circles {
		boxes = append(boxes, BBox{c.Cx - c.R, c.Cy - c.R, c.Cx + c.R, c.Cy + c.R})
	}
	for _, e := range f.Ellipses {
		boxes = append(boxes, BBox{e.Cx - e.Rx, e.Cy - e.Ry, e.Cx + e.Rx, e.Cy + e.Ry})
	}
	return boxes
}

// wrap ensures a bare fragment (no enclosing root element) still
// unmarshals as a forest of direct children; a full document already
// rooted at <svg> is passed through unchanged, since wrapping it again
// would push its <path>/<rect>/... children one level too deep.
func wrap(svgDoc string) string {
	trimmed := strings.TrimSpace(svgDoc)
	if strings.Contains(trimmed[:min(len(trimmed), 10)], "<svg") {
		return svgDoc
	}
	return "<svg>" + svgDoc + "</svg>"
}
