// Package svgdoc assembles the SVG document a finished model is
// exported as: an ajstarks/svgo envelope wrapping the raw per-shape
// markup shape.Shape.SVG already produces, with the
// shape.SVGStyleHook token resolved to each shape's actual fill (or
// stroke, for lines and polylines).
package svgdoc

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/kagami-labs/primitivize/bitmap"
	"github.com/kagami-labs/primitivize/shape"
)

// Document accumulates shape fragments and renders them inside a
// sized SVG envelope.
type Document struct {
	w, h       int
	background bitmap.RGBA
	fragments  []string
}

// New starts a document sized w by h with an opaque background rect
// painted first, matching the canvas's initial fill.
func New(w, h int, background bitmap.RGBA) *Document {
	return &Document{w: w, h: h, background: background}
}

// Add resolves shape's SVG_STYLE_HOOK placeholder to a fill/opacity
// style string built from color (a stroke/opacity style with no fill
// for Line and Polyline) and appends the resulting fragment.
// color.A of 0 still emits a (invisible) element — callers that want
// to skip zero-alpha shapes should filter before calling Add.
func (d *Document) Add(s shape.Shape, color bitmap.RGBA) {
	style := fmt.Sprintf(`fill="rgb(%d,%d,%d)" fill-opacity="%.4f"`,
		color.R, color.G, color.B, float64(color.A)/255)
	if t := s.Type(); t == shape.TypeLine || t == shape.TypePolyline {
		style = fmt.Sprintf(`fill="none" stroke="rgb(%d,%d,%d)" stroke-opacity="%.4f"`,
			color.R, color.G, color.B, float64(color.A)/255)
	}
	frag := s.SVG()
	if n := strings.Count(frag, shape.SVGStyleHook); n != 1 {
		panic(fmt.Sprintf("svgdoc: shape %v emitted %d style hooks, want exactly 1", s.Type(), n))
	}
	d.fragments = append(d.fragments, strings.Replace(frag, shape.SVGStyleHook, style, 1))
}

// WriteTo renders the accumulated document to w.
func (d *Document) WriteTo(w io.Writer) error {
	canvas := svg.New(w)
	canvas.Start(d.w, d.h)
	canvas.Rect(0, 0, d.w, d.h, fmt.Sprintf(`fill="rgb(%d,%d,%d)"`, d.background.R, d.background.G, d.background.B))
	for _, frag := range d.fragments {
		if _, err := fmt.Fprintln(canvas.Writer, frag); err != nil {
			return fmt.Errorf("svgdoc: write fragment: %w", err)
		}
	}
	canvas.End()
	return nil
}

// String renders the document and returns it as a string. Panics are
// not expected here since strings.Builder never errors on write.
func (d *Document) String() string {
	var sb strings.Builder
	if err := d.WriteTo(&sb); err != nil {
		panic(err)
	}
	return sb.String()
}
