// Package bitmap holds the raster container and scanline primitives that
// every other package in this module builds on.
package bitmap

import "fmt"

// RGBA is a straight (non-premultiplied) 8-bit-per-channel color.
type RGBA struct {
	R, G, B, A uint8
}

// Bitmap is a row-major RGBA8 raster with immutable dimensions.
//
// Pix always has length 4*W*H; that invariant holds from construction
// through every mutation below.
type Bitmap struct {
	W, H int
	Pix  []uint8
}

// New allocates a bitmap of the given size filled with c.
func New(w, h int, c RGBA) *Bitmap {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("bitmap: invalid dimensions %dx%d", w, h))
	}
	bm := &Bitmap{W: w, H: h, Pix: make([]uint8, 4*w*h)}
	bm.Fill(c)
	return bm
}

// NewFromPixels wraps an existing row-major RGBA8 buffer. The buffer is
// used directly, not copied.
func NewFromPixels(w, h int, pix []uint8) *Bitmap {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("bitmap: invalid dimensions %dx%d", w, h))
	}
	if len(pix) != 4*w*h {
		panic(fmt.Sprintf("bitmap: pixel buffer length %d does not match %dx%d", len(pix), w, h))
	}
	return &Bitmap{W: w, H: h, Pix: pix}
}

// Fill sets every pixel to c.
func (bm *Bitmap) Fill(c RGBA) {
	for i := 0; i < len(bm.Pix); i += 4 {
		bm.Pix[i+0] = c.R
		bm.Pix[i+1] = c.G
		bm.Pix[i+2] = c.B
		bm.Pix[i+3] = c.A
	}
}

func (bm *Bitmap) offset(x, y int) int {
	return (y*bm.W + x) * 4
}

// At returns the pixel at (x, y). x and y must be in bounds.
func (bm *Bitmap) At(x, y int) RGBA {
	o := bm.offset(x, y)
	return RGBA{bm.Pix[o], bm.Pix[o+1], bm.Pix[o+2], bm.Pix[o+3]}
}

// Set writes the pixel at (x, y). x and y must be in bounds.
func (bm *Bitmap) Set(x, y int, c RGBA) {
	o := bm.offset(x, y)
	bm.Pix[o+0] = c.R
	bm.Pix[o+1] = c.G
	bm.Pix[o+2] = c.B
	bm.Pix[o+3] = c.A
}

// Clone returns a deep copy.
func (bm *Bitmap) Clone() *Bitmap {
	pix := make([]uint8, len(bm.Pix))
	copy(pix, bm.Pix)
	return &Bitmap{W: bm.W, H: bm.H, Pix: pix}
}

// CopyFrom overwrites bm's buffer with src's. Both bitmaps must share
// dimensions; used to snapshot/restore canvases around a hypothetical
// blit without reallocating.
func (bm *Bitmap) CopyFrom(src *Bitmap) {
	copy(bm.Pix, src.Pix)
}
