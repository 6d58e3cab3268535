// Package edgebias biases the primary-point sampler used at shape
// construction time toward the target image's detail: it traces a
// thresholded luminance mask into contours and picks primary points
// preferentially inside their bounding boxes. It never touches the
// hill-climb search itself — only where new shapes are first proposed.
package edgebias

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/gotranspile/gotrace"

	"github.com/kagami-labs/primitivize/bitmap"
	"github.com/kagami-labs/primitivize/svgdoc"
)

// BuildMask converts b to a binary luminance mask: pixels whose
// perceptual luminance falls below threshold (0-255) trace as
// foreground (black). Fully transparent pixels are always background,
// regardless of threshold, since they carry no target detail.
func BuildMask(b *bitmap.Bitmap, threshold uint8) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := b.At(x, y)
			if c.A == 0 {
				mask.SetGray(x, y, color.Gray{Y: 255})
				continue
			}
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
			v := uint8(255)
			if lum < int(threshold) {
				v = 0
			}
			mask.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return mask
}

// Contours traces mask with gotrace and returns the bounding box of
// every closed path found, in mask pixel coordinates.
func Contours(mask *image.Gray) ([]svgdoc.BBox, error) {
	bm := gotrace.BitmapFromGray(mask, nil)

	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return nil, fmt.Errorf("edgebias: trace: %w", err)
	}

	var buf bytes.Buffer
	sz := mask.Bounds().Size()
	if err := gotrace.Render("svg", nil, &buf, paths, sz.X, sz.Y); err != nil {
		return nil, fmt.Errorf("edgebias: render: %w", err)
	}

	boxes := svgdoc.BoundingBoxes(buf.String())
	if boxes == nil {
		return nil, nil
	}
	return boxes, nil
}
