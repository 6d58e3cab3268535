package model

import (
	"testing"

	"github.com/kagami-labs/primitivize/bitmap"
	"github.com/kagami-labs/primitivize/core"
	"github.com/kagami-labs/primitivize/rng"
	"github.com/kagami-labs/primitivize/shape"
)

func solidTarget(w, h int, c bitmap.RGBA) *bitmap.Bitmap {
	return bitmap.New(w, h, c)
}

func TestNewScoreMatchesFullDifference(t *testing.T) {
	rng.Seed(1)
	target := solidTarget(20, 20, bitmap.RGBA{R: 200, G: 40, B: 40, A: 255})
	m := New(target, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255}, 2)

	want := core.DifferenceFull(target, m.Current())
	if got := m.Score(); got != want {
		t.Fatalf("Score() = %v, want %v", got, want)
	}
}

func TestStepNeverWorsensScore(t *testing.T) {
	rng.Seed(2)
	target := solidTarget(24, 24, bitmap.RGBA{R: 10, G: 200, B: 30, A: 255})
	m := New(target, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255}, 3)

	prev := m.Score()
	for i := 0; i < 10; i++ {
		res := m.Step(shape.Types, 128, 6, 40, 4)
		if res.Score > prev+1e-9 {
			t.Fatalf("step %d worsened score: prev=%v got=%v", i, prev, res.Score)
		}
		prev = res.Score
	}
}

func TestDrawShapeScoreMatchesAccessor(t *testing.T) {
	rng.Seed(3)
	target := solidTarget(16, 16, bitmap.RGBA{R: 0, G: 0, B: 0, A: 255})
	m := New(target, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255}, 1)

	s := shape.NewRandomRectangle(m.workers[0].Rnd, nil, shape.Bounds{W: 16, H: 16})
	res := m.DrawShape(s, 128)

	if res.Score != m.Score() {
		t.Fatalf("DrawShape result score %v disagrees with Model.Score() %v", res.Score, m.Score())
	}

	want := core.DifferenceFull(target, m.Current())
	if diff := res.Score - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("incremental score %v drifted from full recompute %v", res.Score, want)
	}
}

func TestResetRestoresFlatScore(t *testing.T) {
	rng.Seed(4)
	target := solidTarget(12, 12, bitmap.RGBA{R: 5, G: 5, B: 5, A: 255})
	m := New(target, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255}, 1)

	m.Step(shape.Types, 128, 4, 20, 2)
	m.Reset(bitmap.RGBA{R: 255, G: 255, B: 255, A: 255})

	want := core.DifferenceFull(target, bitmap.New(12, 12, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255}))
	if got := m.Score(); got != want {
		t.Fatalf("Reset score = %v, want %v", got, want)
	}
}

func TestStepOnOnePixelTarget(t *testing.T) {
	rng.Seed(5)
	target := solidTarget(1, 1, bitmap.RGBA{R: 1, G: 2, B: 3, A: 255})
	m := New(target, bitmap.RGBA{R: 0, G: 0, B: 0, A: 255}, 1)

	res := m.Step(shape.Types, 255, 3, 10, 1)
	if res.Score < 0 {
		t.Fatalf("score went negative: %v", res.Score)
	}
}

func TestParallelStepDeterministic(t *testing.T) {
	target := solidTarget(20, 20, bitmap.RGBA{R: 80, G: 120, B: 160, A: 255})

	run := func() float64 {
		rng.Seed(42)
		m := New(target, bitmap.RGBA{R: 255, G: 255, B: 255, A: 255}, 4)
		var score float64
		for i := 0; i < 5; i++ {
			score = m.Step(shape.Types, 128, 6, 30, 4).Score
		}
		return score
	}

	a := run()
	b := run()
	if a != b {
		t.Fatalf("parallel steps not reproducible under fixed seed: %v vs %v", a, b)
	}
}
