package model

import (
	"github.com/kagami-labs/primitivize/bitmap"
	"github.com/kagami-labs/primitivize/shape"
)

// ShapeResult is produced by the Model after actually applying a
// shape: the score after the blit, the color it was drawn with, and
// the shape descriptor itself.
type ShapeResult struct {
	Score float64
	Color bitmap.RGBA
	Shape shape.Shape
}
