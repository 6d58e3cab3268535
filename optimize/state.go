// Package optimize implements the random-restart hill-climber that
// searches for the single best (shape, color) pair to add to the
// canvas on a given step. The optimizer never mutates the real
// canvas; every candidate is evaluated against a per-worker buffer.
package optimize

import (
	"github.com/kagami-labs/primitivize/core"
	"github.com/kagami-labs/primitivize/shape"
)

// State is a candidate (shape, score, alpha) produced during search.
// Score is the hypothetical full-image score if Shape were applied at
// its solved color.
type State struct {
	Shape shape.Shape
	Score float64
	Alpha uint8
}

// Energy re-evaluates State against worker's current target/canvas.
// Exposed mainly so callers (and tests) can re-score a state without
// re-deriving it from a Worker.
func (s State) Energy(w *Worker) float64 {
	return w.Energy(s.Shape, s.Alpha)
}

// Energy rasterizes shape, solves its optimal color against the
// worker's current canvas, and returns the hypothetical score of
// blitting that color in — all without mutating the canvas: the
// candidate's pixels are computed into a scratch buffer and discarded.
//
//  1. rasterize shape -> lines
//  2. solve optimal color -> color
//  3. copy canvas pixels under lines into the buffer
//  4. blit color into the buffer over lines
//  5. partial = differencePartial(target, canvas, buffer, lastScore, lines)
//  6. return partial (the buffer is reused next call; no undo needed
//     because step 3 already holds canvas's pixels and the caller
//     never reads buffer outside Energy)
func (w *Worker) Energy(s shape.Shape, alpha uint8) float64 {
	w.Counter++
	lines := s.Rasterize()
	color := core.ComputeColor(w.Target, w.Current, lines, alpha)
	core.CopyLines(w.Buffer, w.Current, lines)
	core.DrawLines(w.Buffer, color, lines)
	return core.DifferencePartial(w.Target, w.Current, w.Buffer, w.Score, lines)
}
