package core

import (
	"math"

	"github.com/kagami-labs/primitivize/bitmap"
)

// ComputeColor returns the channel color that minimizes post-blend
// error over the pixels covered by lines, for a fixed alpha. Each of
// R, G, B is solved independently as the average of the per-pixel
// ideal channel value implied by straight-alpha src-over blending:
//
//	ideal = (target - current) * 255/alpha + current
//
// Zero covered pixels returns (0,0,0,alpha); alpha == 0 is degenerate
// and returns (0,0,0,0) — both candidates that can never win a
// hill-climb comparison, which is how the engine tolerates a shape
// that rasterized to nothing.
func ComputeColor(target, current *bitmap.Bitmap, lines []bitmap.Scanline, alpha uint8) bitmap.RGBA {
	if alpha == 0 {
		return bitmap.RGBA{}
	}

	var sumR, sumG, sumB float64
	var count int
	a := float64(alpha)

	for _, l := range lines {
		for x := l.X1; x <= l.X2; x++ {
			t := target.At(x, l.Y)
			c := current.At(x, l.Y)
			sumR += (float64(t.R)-float64(c.R))*255/a + float64(c.R)
			sumG += (float64(t.G)-float64(c.G))*255/a + float64(c.G)
			sumB += (float64(t.B)-float64(c.B))*255/a + float64(c.B)
			count++
		}
	}

	if count == 0 {
		return bitmap.RGBA{A: alpha}
	}

	n := float64(count)
	return bitmap.RGBA{
		R: clampChannel(sumR / n),
		G: clampChannel(sumG / n),
		B: clampChannel(sumB / n),
		A: alpha,
	}
}

func clampChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
