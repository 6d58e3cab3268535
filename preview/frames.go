package preview

import (
	"fmt"
	"os"

	"github.com/kagami-labs/primitivize/imageio"
)

// WriteFrameFiles writes every sampled frame to its own numbered PNG
// file at prefix_0.png, prefix_1.png, ... — useful for inspecting a
// run frame-by-frame without decoding a GIF or MP4.
func WriteFrameFiles(prefix string, rec *Recorder) error {
	for i, frame := range rec.Frames() {
		path := fmt.Sprintf("%s_%d.png", prefix, i)
		if err := imageio.EncodeFile(path, frame); err != nil {
			return fmt.Errorf("preview: write frame %d: %w", i, err)
		}
	}
	return nil
}

// WriteFrameChunks writes sampled frames as PNG files split across
// directories of at most maxPerChunk frames each, named prefix_0/,
// prefix_1/, and so on; inside each directory the files are named
// frame_0.png, frame_1.png, ..., numbered from 0 per directory — for runs with enough sampled frames that a
// single flat directory becomes unwieldy.
func WriteFrameChunks(prefix string, rec *Recorder, maxPerChunk int) error {
	if maxPerChunk < 1 {
		maxPerChunk = 1
	}

	frames := rec.Frames()
	chunkID := 0
	for start := 0; start < len(frames); start += maxPerChunk {
		end := start + maxPerChunk
		if end > len(frames) {
			end = len(frames)
		}

		dir := fmt.Sprintf("%s_%d", prefix, chunkID)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("preview: mkdir %s: %w", dir, err)
		}

		for i, frame := range frames[start:end] {
			path := fmt.Sprintf("%s/frame_%d.png", dir, i)
			if err := imageio.EncodeFile(path, frame); err != nil {
				return fmt.Errorf("preview: write chunk %d frame %d: %w", chunkID, i, err)
			}
		}
		chunkID++
	}
	return nil
}
