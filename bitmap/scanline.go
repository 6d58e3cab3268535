package bitmap

// Scanline is a horizontal pixel run (Y, X1..X2), inclusive on both
// ends. Coordinates may be out of range before Trim.
type Scanline struct {
	Y, X1, X2 int
}

// Trim clips lines to the [0,w) x [0,h) rectangle, swaps any run whose
// endpoints arrived reversed, and drops runs left empty by clipping.
// Every surviving line satisfies 0 <= Y < h and 0 <= X1 <= X2 < w.
func Trim(lines []Scanline, w, h int) []Scanline {
	out := lines[:0]
	for _, l := range lines {
		if l.Y < 0 || l.Y >= h {
			continue
		}
		x1, x2 := l.X1, l.X2
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		if x1 < 0 {
			x1 = 0
		}
		if x2 > w-1 {
			x2 = w - 1
		}
		if x1 > x2 {
			continue
		}
		out = append(out, Scanline{Y: l.Y, X1: x1, X2: x2})
	}
	return out
}
