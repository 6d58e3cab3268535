// Package model orchestrates one optimization step: it fans out
// parallel hill-climbs over the canvas, picks the best candidate,
// applies it, and reports a ShapeResult. It is the only thing allowed
// to mutate the real canvas.
package model

import (
	"sync"

	"github.com/kagami-labs/primitivize/bitmap"
	"github.com/kagami-labs/primitivize/core"
	"github.com/kagami-labs/primitivize/optimize"
	"github.com/kagami-labs/primitivize/rng"
	"github.com/kagami-labs/primitivize/shape"
)

// Model hides its canvas, target, and score behind this package;
// callers only ever see the constructors, SetSampler, Step, DrawShape,
// Reset, and the accessors below — spec.md's "opaque handle" design note.
type Model struct {
	target    *bitmap.Bitmap
	current   *bitmap.Bitmap
	lastScore float64
	workers   []*optimize.Worker
	sampler   shape.Sampler
}

// New builds a Model whose canvas starts uniformly filled with
// background, with numWorkers parallel search workers. target's
// dimensions become the canvas's clamping domain for every shape this
// model produces. target and initial must share dimensions when using
// NewWithInitial; zero-dimension bitmaps are a programmer error and
// are rejected by bitmap.New itself.
func New(target *bitmap.Bitmap, background bitmap.RGBA, numWorkers int) *Model {
	return NewWithInitial(target, bitmap.New(target.W, target.H, background), numWorkers)
}

// NewWithInitial is New but starts the canvas from an arbitrary
// initial bitmap (e.g. resuming a job) instead of a flat background.
func NewWithInitial(target, initial *bitmap.Bitmap, numWorkers int) *Model {
	if target.W != initial.W || target.H != initial.H {
		panic("model: target and initial dimensions differ")
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	m := &Model{
		target:    target,
		current:   initial.Clone(),
		lastScore: core.DifferenceFull(target, initial),
	}
	m.workers = make([]*optimize.Worker, numWorkers)
	for i := range m.workers {
		m.workers[i] = optimize.NewWorker(target, rng.Spawn())
	}
	return m
}

// SetSampler installs an edge-biased (or otherwise non-uniform)
// primary-point sampler used by every worker's random construction.
// Passing nil restores uniform sampling.
func (m *Model) SetSampler(s shape.Sampler) {
	for _, w := range m.workers {
		w.Sampler = s
	}
	m.sampler = s
}

// Target returns the read-only target bitmap.
func (m *Model) Target() *bitmap.Bitmap { return m.target }

// Current returns the live canvas. Callers must not mutate it;
// DrawShape is the only thing that may.
func (m *Model) Current() *bitmap.Bitmap { return m.current }

// Score is differenceFull(target, current) as of the last completed
// DrawShape, kept incrementally rather than recomputed.
func (m *Model) Score() float64 { return m.lastScore }

// Reset refills the canvas with background and recomputes the score
// from scratch.
func (m *Model) Reset(background bitmap.RGBA) {
	m.current.Fill(background)
	m.lastScore = core.DifferenceFull(m.target, m.current)
}

// DrawShape rasterizes s, solves its optimal color at alpha against
// the real canvas, blits it in, and updates the incrementally tracked
// score. This is the only operation that mutates the real canvas —
// the optimizer only ever touches worker-private buffers.
func (m *Model) DrawShape(s shape.Shape, alpha uint8) ShapeResult {
	lines := s.Rasterize()
	color := core.ComputeColor(m.target, m.current, lines, alpha)
	before := m.current.Clone()

	core.DrawLines(m.current, color, lines)
	m.lastScore = core.DifferencePartial(m.target, before, m.current, m.lastScore, lines)

	return ShapeResult{Score: m.lastScore, Color: color, Shape: s}
}

// Step fans out len(workers) parallel hill-climbs over the current
// canvas, picks the candidate with minimum score (ties broken by
// first-seen), applies it with DrawShape, and returns the resulting
// ShapeResult. The real canvas is untouched until that final DrawShape
// call. passes is given to every worker unchanged — each one runs the
// full round count independently, so adding workers buys more
// parallel restarts rather than shrinking each worker's share.
func (m *Model) Step(shapeTypes []shape.Type, alpha uint8, n, maxAge, passes int) ShapeResult {
	best := m.bestHillClimbState(shapeTypes, alpha, n, maxAge, passes)
	return m.DrawShape(best.Shape, best.Alpha)
}

func (m *Model) bestHillClimbState(shapeTypes []shape.Type, alpha uint8, n, maxAge, passes int) *optimize.State {
	results := make([]*optimize.State, len(m.workers))
	var wg sync.WaitGroup
	for i, w := range m.workers {
		wg.Add(1)
		go func(i int, w *optimize.Worker) {
			defer wg.Done()
			w.Init(m.current, m.lastScore)
			results[i] = w.BestHillClimbState(shapeTypes, alpha, n, maxAge, passes)
		}(i, w)
	}
	wg.Wait()

	var best *optimize.State
	for _, s := range results {
		if s == nil {
			continue
		}
		if best == nil || s.Score < best.Score {
			best = s
		}
	}
	return best
}
