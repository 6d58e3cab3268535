package core

import (
	"github.com/kagami-labs/primitivize/bitmap"
)

// DrawLines composites color into canvas over lines using straight-
// alpha src-over blending. lines must already be trimmed; out-of-range
// pixels are a programmer error here, not a runtime one.
func DrawLines(canvas *bitmap.Bitmap, color bitmap.RGBA, lines []bitmap.Scanline) {
	aa := float64(color.A) / 255
	for _, l := range lines {
		for x := l.X1; x <= l.X2; x++ {
			c := canvas.At(x, l.Y)
			canvas.Set(x, l.Y, bitmap.RGBA{
				R: blendChannel(c.R, color.R, aa),
				G: blendChannel(c.G, color.G, aa),
				B: blendChannel(c.B, color.B, aa),
				A: blendAlpha(c.A, color.A),
			})
		}
	}
}

func blendChannel(dst, src uint8, srcAlpha float64) uint8 {
	v := float64(dst)*(1-srcAlpha) + float64(src)*srcAlpha
	return clampChannel(v)
}

func blendAlpha(dst, src uint8) uint8 {
	v := float64(dst) + float64(src)*(1-float64(dst)/255)
	return clampChannel(v)
}

// CopyLines copies the pixels of src under lines into dst, leaving the
// rest of dst untouched. Used to take and later restore a partial
// snapshot of a canvas around a hypothetical blit.
func CopyLines(dst, src *bitmap.Bitmap, lines []bitmap.Scanline) {
	for _, l := range lines {
		for x := l.X1; x <= l.X2; x++ {
			dst.Set(x, l.Y, src.At(x, l.Y))
		}
	}
}
