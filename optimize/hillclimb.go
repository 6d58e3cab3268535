package optimize

import "github.com/kagami-labs/primitivize/shape"

// HillClimb runs local search from seed: each round saves a clone of
// the current shape, mutates the shape in place, and keeps the
// mutation only if it strictly lowers the best score so far, reverting
// to the saved clone otherwise. The loop terminates after maxAge
// consecutive rejections.
func (w *Worker) HillClimb(seed *State, maxAge int) *State {
	state := seed
	best := &State{Shape: state.Shape.Clone(), Score: state.Score, Alpha: state.Alpha}
	bestScore := state.Score

	age := 0
	for age < maxAge {
		undo := state.Shape.Clone()
		state.Shape.Mutate(w.Rnd)
		e := w.Energy(state.Shape, state.Alpha)

		if e >= bestScore {
			state.Shape = undo
			age++
			continue
		}

		best = &State{Shape: state.Shape.Clone(), Score: e, Alpha: state.Alpha}
		bestScore = e
		age = 0
	}

	return best
}

// BestHillClimbState runs passes rounds of: draw n random seed shapes
// of a kind drawn from shapeTypes, hill-climb the best of them for up
// to maxAge rejections, and keep it if it beats the running best.
// Ties are broken by first-seen.
func (w *Worker) BestHillClimbState(shapeTypes []shape.Type, alpha uint8, n, maxAge, passes int) *State {
	var best *State
	for i := 0; i < passes; i++ {
		t := shapeTypes[w.Rnd.Intn(len(shapeTypes))]
		seed := w.BestRandomState(t, alpha, n)
		climbed := w.HillClimb(seed, maxAge)
		if best == nil || climbed.Score < best.Score {
			best = climbed
		}
	}
	return best
}
