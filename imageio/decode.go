// Package imageio loads raster images into bitmap.Bitmap and writes
// bitmap.Bitmap back out as PNG. Decode support spans whatever formats
// register themselves with image.Decode; importing this package pulls
// in PNG, JPEG, GIF, BMP, and TIFF decoders.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/kagami-labs/primitivize/bitmap"
)

// Decode reads a raster image from r and converts it to a Bitmap,
// straightening any premultiplied or paletted source into the
// straight-alpha RGBA8 layout the rest of the engine assumes.
func Decode(r io.Reader) (*bitmap.Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return FromImage(img), nil
}

// DecodeFile opens path and decodes it via Decode.
func DecodeFile(path string) (*bitmap.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: %s: %w", path, err)
	}
	return b, nil
}

// FromImage converts an arbitrary image.Image into a Bitmap by
// reading each pixel through its alpha-premultiplied RGBA() accessor
// and un-premultiplying the result. Unlike image/draw this never blends against a background:
// every source pixel's alpha is carried through untouched.
func FromImage(img image.Image) *bitmap.Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	b := bitmap.New(w, h, bitmap.RGBA{})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				b.Set(x, y, bitmap.RGBA{})
				continue
			}
			// image.Image.RGBA() returns alpha-premultiplied 16-bit
			// channels; un-premultiply back to straight alpha.
			b.Set(x, y, bitmap.RGBA{
				R: uint8(r * 0xff / a),
				G: uint8(g * 0xff / a),
				B: uint8(bl * 0xff / a),
				A: uint8(a >> 8),
			})
		}
	}
	return b
}
