package bitmap

import "testing"

func TestNewFill(t *testing.T) {
	bm := New(3, 2, RGBA{10, 20, 30, 40})
	if len(bm.Pix) != 4*3*2 {
		t.Fatalf("pixel buffer length = %d, want %d", len(bm.Pix), 4*3*2)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			got := bm.At(x, y)
			want := RGBA{10, 20, 30, 40}
			if got != want {
				t.Errorf("At(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestSetGet(t *testing.T) {
	bm := New(4, 4, RGBA{})
	bm.Set(1, 2, RGBA{1, 2, 3, 4})
	if got := bm.At(1, 2); got != (RGBA{1, 2, 3, 4}) {
		t.Errorf("At(1,2) = %+v, want {1 2 3 4}", got)
	}
	if got := bm.At(0, 0); got != (RGBA{}) {
		t.Errorf("At(0,0) = %+v, want zero value", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	bm := New(2, 2, RGBA{5, 5, 5, 255})
	clone := bm.Clone()
	clone.Set(0, 0, RGBA{9, 9, 9, 255})
	if got := bm.At(0, 0); got == (RGBA{9, 9, 9, 255}) {
		t.Fatal("mutating clone affected original")
	}
	if got := clone.At(0, 0); got != (RGBA{9, 9, 9, 255}) {
		t.Fatalf("clone not mutated: %+v", got)
	}
}

func TestCopyFrom(t *testing.T) {
	a := New(2, 2, RGBA{1, 1, 1, 255})
	b := New(2, 2, RGBA{2, 2, 2, 255})
	a.CopyFrom(b)
	if got := a.At(1, 1); got != (RGBA{2, 2, 2, 255}) {
		t.Errorf("CopyFrom did not overwrite: %+v", got)
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero-dimension bitmap")
		}
	}()
	New(0, 5, RGBA{})
}

func TestNewFromPixelsLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched pixel buffer length")
		}
	}()
	NewFromPixels(2, 2, make([]uint8, 4))
}
