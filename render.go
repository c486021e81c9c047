package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// RenderScene renders a single scene to an image file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	name := ctx.String("scene")
	seed := ctx.Int64("seed")

	s, err := scene.Build(name, seed)
	if err != nil {
		return err
	}
	applyOverrides(ctx, s.Camera)
	s.Camera.Seed = seed

	out := ctx.String("out")
	if out == "" {
		out = defaultOutputPath(name, time.Now())
	}
	if out != "-" {
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering %s", name)
	img, stats, err := s.Camera.Render(renderCtx, s.World)
	if err != nil {
		return fmt.Errorf("render of %s aborted: %w", name, err)
	}

	if err := renderer.SaveImage(out, img); err != nil {
		return err
	}

	logger.Noticef("render statistics\n%s", stats.Table())
	if out != "-" {
		logger.Noticef("render saved as %s", out)
	}
	return nil
}

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	fmt.Fprint(ctx.App.Writer, scene.Table())
	return nil
}

// applyOverrides copies explicitly set flags onto the scene camera
func applyOverrides(ctx *cli.Context, camera *renderer.Camera) {
	if ctx.IsSet("width") {
		camera.ImageWidth = ctx.Int("width")
	}
	if ctx.IsSet("spp") {
		camera.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		camera.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("workers") {
		camera.NumWorkers = ctx.Int("workers")
	}
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(name string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
}
