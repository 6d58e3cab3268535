// Package preview samples canvas snapshots across a run and renders
// them as an animated preview, either a GIF via the standard library
// or an MP4 via ffmpeg-go.
package preview

import (
	"image"

	"github.com/kagami-labs/primitivize/bitmap"
	"github.com/kagami-labs/primitivize/imageio"
)

// Recorder samples a canvas snapshot whenever the model's score drops
// by at least scoreDelta since the last sample, rather than on every
// step — a run with thousands of steps would otherwise produce an
// unwatchable number of near-duplicate frames.
type Recorder struct {
	scoreDelta float64
	lastScore  float64
	frames     []*bitmap.Bitmap
	started    bool
}

// NewRecorder builds a Recorder that samples whenever score improves
// by at least scoreDelta. A scoreDelta of 0 samples on every call to
// Observe.
func NewRecorder(scoreDelta float64) *Recorder {
	return &Recorder{scoreDelta: scoreDelta}
}

// Observe offers the canvas's current state and score; it is sampled
// (cloned) into the frame list if this is the first observation, if
// scoreDelta is 0, or if the score has dropped by at least scoreDelta
// since the last sample.
func (rec *Recorder) Observe(canvas *bitmap.Bitmap, score float64) {
	delta := rec.lastScore - score
	if rec.started && rec.scoreDelta > 0 && delta < rec.scoreDelta {
		return
	}
	rec.frames = append(rec.frames, canvas.Clone())
	rec.lastScore = score
	rec.started = true
}

// Frames returns the sampled snapshots, target-resolution bitmaps in
// capture order.
func (rec *Recorder) Frames() []*bitmap.Bitmap { return rec.frames }

// Images converts every sampled frame to an image.Image, suitable for
// image/gif or any other stdlib encoder.
func (rec *Recorder) Images() []image.Image {
	imgs := make([]image.Image, len(rec.frames))
	for i, f := range rec.frames {
		imgs[i] = imageio.ToImage(f)
	}
	return imgs
}
