package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kagami-labs/primitivize/bitmap"
	"github.com/kagami-labs/primitivize/config"
	"github.com/kagami-labs/primitivize/edgebias"
	"github.com/kagami-labs/primitivize/imageio"
	"github.com/kagami-labs/primitivize/model"
	"github.com/kagami-labs/primitivize/preview"
	"github.com/kagami-labs/primitivize/rng"
	"github.com/kagami-labs/primitivize/svgdoc"
)

// ProgressEvent describes one completed step; it never feeds back into
// the engine. run logs the same fields per step directly through slog
// and does not construct a ProgressEvent.
type ProgressEvent struct {
	StepIndex int
	Score     float64
	Elapsed   time.Duration
}

// randomStatesPerPass, passes, maxAge, and edgeBiasThreshold are fixed
// search knobs not exposed as flags — spec.md leaves their tuning as
// an open question. passes is independent of -workers: every worker
// runs this many full hill-climb rounds, not a share of it.
const (
	randomStatesPerPass = 16
	passes              = 8
	maxAge              = 100
	edgeBiasThreshold   = 128
)

func fileAndFlagOptions(configPath, input, output string, shapes int, shapeType string, alpha, workers int, seed int64, edgeBias bool, previewPath string) (config.Job, error) {
	fileOpts, err := config.Load(configPath)
	if err != nil {
		return config.Job{}, err
	}

	flagOpts := config.Options{
		Input:     input,
		Output:    output,
		Shapes:    shapes,
		ShapeType: shapeType,
		Alpha:     alpha,
		Workers:   workers,
		Seed:      seed,
		EdgeBias:  edgeBias,
		Preview:   previewPath,
	}

	return config.Merge(fileOpts, flagOpts).Resolve()
}

func run(ctx context.Context, logger *slog.Logger, job config.Job) error {
	target, err := imageio.DecodeFile(job.Input)
	if err != nil {
		return fmt.Errorf("cmd/primitivize: decode target: %w", err)
	}

	rng.Seed(job.Seed)
	background := bitmap.RGBA{R: 255, G: 255, B: 255, A: 255}
	m := model.New(target, background, job.Workers)

	if job.EdgeBias {
		mask := edgebias.BuildMask(target, edgeBiasThreshold)
		boxes, err := edgebias.Contours(mask)
		if err != nil {
			logger.Warn("edge-bias contour tracing failed, falling back to uniform sampling", "error", err)
		} else {
			m.SetSampler(edgebias.NewSampler(boxes))
		}
	}

	var recorder *preview.Recorder
	if job.Preview != "" {
		recorder = preview.NewRecorder(0.01)
		recorder.Observe(m.Current(), m.Score())
	}

	doc := svgdoc.New(target.W, target.H, background)
	start := time.Now()

	for i := 0; i < job.Shapes; i++ {
		if err := ctx.Err(); err != nil {
			logger.Info("run cancelled", "steps_completed", i)
			break
		}

		res := m.Step(job.ShapeTypes, job.Alpha, randomStatesPerPass, maxAge, passes)
		doc.Add(res.Shape, res.Color)

		if recorder != nil {
			recorder.Observe(m.Current(), res.Score)
		}

		logger.Info("step complete",
			"step", i,
			"score", res.Score,
			"shape", res.Shape.Type().String(),
			"elapsed", time.Since(start),
		)
	}

	if err := imageio.EncodeFile(outputPNGPath(job.Output), m.Current()); err != nil {
		return fmt.Errorf("cmd/primitivize: write preview png: %w", err)
	}

	if err := writeSVG(job.Output, doc); err != nil {
		return err
	}

	if recorder != nil {
		if err := preview.WriteGIFFile(job.Preview, recorder, 10); err != nil {
			return fmt.Errorf("cmd/primitivize: write preview gif: %w", err)
		}
	}

	logger.Info("run complete", "score", m.Score(), "elapsed", time.Since(start))
	return nil
}

func writeSVG(path string, doc *svgdoc.Document) error {
	if err := writeFile(path, doc.String()); err != nil {
		return fmt.Errorf("cmd/primitivize: write svg: %w", err)
	}
	return nil
}
