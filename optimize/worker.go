package optimize

import (
	"math/rand"

	"github.com/kagami-labs/primitivize/bitmap"
	"github.com/kagami-labs/primitivize/shape"
)

// Worker holds one goroutine's private search state: its own canvas
// clone, scratch buffer, and RNG. Workers never touch the model's real
// canvas or each other's state — see SPEC_FULL.md §5.
type Worker struct {
	Target  *bitmap.Bitmap
	Current *bitmap.Bitmap
	Buffer  *bitmap.Bitmap
	Rnd     *rand.Rand
	Sampler shape.Sampler
	Bounds  shape.Bounds
	Score   float64
	Counter int
}

// NewWorker allocates a worker sized to target. rnd should come from
// rng.Spawn so each worker's draws are independent and reproducible
// under a fixed process seed.
func NewWorker(target *bitmap.Bitmap, rnd *rand.Rand) *Worker {
	return &Worker{
		Target:  target,
		Buffer:  bitmap.New(target.W, target.H, bitmap.RGBA{}),
		Rnd:     rnd,
		Bounds:  shape.Bounds{W: target.W, H: target.H},
		Counter: 0,
	}
}

// Init points the worker at a private clone of the model's current
// canvas and score for one step's search. Current is never the
// model's real canvas — workers read it but the model is the only
// writer.
func (w *Worker) Init(current *bitmap.Bitmap, score float64) {
	w.Current = current.Clone()
	w.Score = score
	w.Counter = 0
}

// RandomState draws a fresh random shape of type t at the given alpha
// and scores it.
func (w *Worker) RandomState(t shape.Type, alpha uint8) *State {
	s := shape.NewRandom(w.Rnd, t, w.Sampler, w.Bounds)
	return &State{Shape: s, Alpha: alpha, Score: w.Energy(s, alpha)}
}

// BestRandomState draws n random seed shapes of type t at alpha and
// returns the one with lowest energy. Ties are broken by first-seen.
func (w *Worker) BestRandomState(t shape.Type, alpha uint8, n int) *State {
	var best *State
	for i := 0; i < n; i++ {
		s := w.RandomState(t, alpha)
		if best == nil || s.Score < best.Score {
			best = s
		}
	}
	return best
}
