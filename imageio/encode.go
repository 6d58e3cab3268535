package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/kagami-labs/primitivize/bitmap"
)

// ToImage wraps a Bitmap as a standard image.Image, straight alpha
// preserved, suitable for passing to any stdlib or x/image encoder.
func ToImage(b *bitmap.Bitmap) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := b.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}

// Encode writes b to w as PNG.
func Encode(w io.Writer, b *bitmap.Bitmap) error {
	if err := png.Encode(w, ToImage(b)); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}

// EncodeFile writes b to path as PNG, creating or truncating it.
func EncodeFile(path string, b *bitmap.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, b); err != nil {
		return fmt.Errorf("imageio: %s: %w", path, err)
	}
	return nil
}
