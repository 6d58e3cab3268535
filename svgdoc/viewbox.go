package svgdoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rustyoz/svg"
)

// ViewBox is the parsed "min-x min-y width height" viewBox attribute
// of an SVG document.
type ViewBox struct {
	MinX, MinY, W, H int
}

// ParseViewBox recovers the ViewBox of an SVG document string by
// parsing it with rustyoz/svg and splitting its ViewBox field on
// whitespace.
func ParseViewBox(svgDoc string) (ViewBox, error) {
	parsed, err := svg.ParseSvg(svgDoc, "document", 1.0)
	if err != nil {
		return ViewBox{}, fmt.Errorf("svgdoc: parse: %w", err)
	}

	fields := strings.Fields(parsed.ViewBox)
	if len(fields) != 4 {
		return ViewBox{}, fmt.Errorf("svgdoc: viewBox %q has %d fields, want 4", parsed.ViewBox, len(fields))
	}

	var nums [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return ViewBox{}, fmt.Errorf("svgdoc: viewBox field %q: %w", f, err)
		}
		nums[i] = n
	}

	return ViewBox{MinX: nums[0], MinY: nums[1], W: nums[2], H: nums[3]}, nil
}
