package preview

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"os/exec"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/kagami-labs/primitivize/imageio"
)

// WriteGIF encodes the recorder's sampled frames as an animated GIF,
// each frame shown for delayCentiseconds (GIF's native 1/100s unit).
func WriteGIF(w io.Writer, rec *Recorder, delayCentiseconds int) error {
	imgs := rec.Images()
	if len(imgs) == 0 {
		return fmt.Errorf("preview: no frames recorded")
	}

	g := &gif.GIF{
		Image: make([]*image.Paletted, len(imgs)),
		Delay: make([]int, len(imgs)),
	}
	for i, src := range imgs {
		bounds := src.Bounds()
		pal := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(pal, bounds, src, bounds.Min)
		g.Image[i] = pal
		g.Delay[i] = delayCentiseconds
	}

	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("preview: encode gif: %w", err)
	}
	return nil
}

// WriteGIFFile is WriteGIF writing to path.
func WriteGIFFile(path string, rec *Recorder, delayCentiseconds int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGIF(f, rec, delayCentiseconds)
}

// WriteMP4 pipes the recorder's sampled frames, PNG-encoded, into
// ffmpeg over stdin and produces an H.264 MP4 at path.
func WriteMP4(ctx context.Context, path string, rec *Recorder, fps int) error {
	if len(rec.Frames()) == 0 {
		return fmt.Errorf("preview: no frames recorded")
	}
	if fps <= 0 {
		fps = 10
	}

	r, w := io.Pipe()

	cmd := ffmpeg.Input("pipe:0", ffmpeg.KwArgs{
		"format": "image2pipe",
		"r":      fmt.Sprintf("%d", fps),
	}).
		Output(path, ffmpeg.KwArgs{
			"vcodec": "libx264",
			"pix_fmt": "yuv420p",
		}).
		WithInput(r).
		WithErrorOutput(os.Stderr)
	cmd.Context = ctx

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Run()
	}()

	for _, frame := range rec.Frames() {
		if err := imageio.Encode(w, frame); err != nil {
			w.CloseWithError(err)
			<-errCh
			return fmt.Errorf("preview: encode frame for ffmpeg: %w", err)
		}
	}
	w.Close()

	if err := <-errCh; err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("preview: ffmpeg exited: %w (%s)", exitErr, string(exitErr.Stderr))
		}
		return fmt.Errorf("preview: ffmpeg: %w", err)
	}
	return nil
}
