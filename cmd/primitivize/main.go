package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	input := flag.String("input", "", "path to the target raster image")
	output := flag.String("output", "output.svg", "path to write the resulting SVG")
	shapes := flag.Int("shapes", 100, "number of shapes to draw")
	shapeType := flag.String("shapetype", "any", "shape type to draw, or \"any\" for all registered types")
	alpha := flag.Int("alpha", 128, "fill alpha for each drawn shape, 0-255")
	workers := flag.Int("workers", 4, "number of parallel search workers")
	seed := flag.Int64("seed", 1, "RNG seed for reproducible runs")
	edgeBias := flag.Bool("edgebias", false, "bias random shape placement toward detail regions")
	preview := flag.String("preview", "", "optional animated preview path (.gif)")
	configPath := flag.String("config", "", "optional JSON config file supplying defaults")
	help := flag.Bool("help", false, "show usage")

	flag.Parse()
	if *help {
		flag.Usage()
		return
	}
	if *input == "" {
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts, err := fileAndFlagOptions(*configPath, *input, *output, *shapes, *shapeType, *alpha, *workers, *seed, *edgeBias, *preview)
	if err != nil {
		logger.Error("resolving configuration", "error", err)
		os.Exit(1)
	}

	if err := run(ctx, logger, opts); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
