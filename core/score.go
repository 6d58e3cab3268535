// Package core implements the pixel-difference scoring model, the
// optimal color solver, and the scanline blitter — the primitives
// every shape and the optimizer are built on. None of it mutates a
// bitmap except DrawLines and CopyLines, and both only touch the
// pixels their scanlines cover.
package core

import (
	"math"

	"github.com/kagami-labs/primitivize/bitmap"
)

// DifferenceFull computes the root-mean-square normalized per-channel
// error between target and current over every pixel and channel.
// Result is in [0, 1]; lower is better.
func DifferenceFull(target, current *bitmap.Bitmap) float64 {
	var sum float64
	for i := range target.Pix {
		d := float64(target.Pix[i]) - float64(current.Pix[i])
		sum += d * d
	}
	n := float64(target.W * target.H * 4)
	return math.Sqrt(sum/n) / 255
}

// DifferencePartial reconstructs DifferenceFull(target, after) given
// only that the pixels covered by lines changed from before to after,
// and the score before that change. It undoes before's contribution to
// the squared-error accumulator implied by lastScore and adds after's.
//
// This is the hot path: full scoring runs a handful of times per
// image, partial scoring runs once per candidate shape evaluated
// during search.
func DifferencePartial(target, before, after *bitmap.Bitmap, lastScore float64, lines []bitmap.Scanline) float64 {
	n := float64(target.W * target.H * 4)
	total := lastScore * 255
	totalSq := total * total * n

	for _, l := range lines {
		for x := l.X1; x <= l.X2; x++ {
			t := target.At(x, l.Y)
			b := before.At(x, l.Y)
			a := after.At(x, l.Y)

			totalSq -= sq(t.R, b.R) + sq(t.G, b.G) + sq(t.B, b.B) + sq(t.A, b.A)
			totalSq += sq(t.R, a.R) + sq(t.G, a.G) + sq(t.B, a.B) + sq(t.A, a.A)
		}
	}

	if totalSq < 0 {
		totalSq = 0
	}
	return math.Sqrt(totalSq/n) / 255
}

func sq(a, b uint8) float64 {
	d := float64(a) - float64(b)
	return d * d
}
