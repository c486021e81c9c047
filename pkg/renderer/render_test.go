package renderer

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// testWorld is a diffuse sphere resting on a large diffuse ground sphere
func testWorld() geometry.Hittable {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	ball := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, ball),
	)
	return geometry.NewBVH(world)
}

func testCamera(depth int) *Camera {
	camera := NewCamera()
	camera.ImageWidth = 16
	camera.SamplesPerPixel = 4
	camera.MaxDepth = depth
	camera.NumWorkers = 3
	camera.Seed = 11
	return camera
}

func averageBrightness(img *image.RGBA) float64 {
	total := 0.0
	for i := 0; i < len(img.Pix); i += 4 {
		total += float64(img.Pix[i]) + float64(img.Pix[i+1]) + float64(img.Pix[i+2])
	}
	return total / float64(len(img.Pix)/4)
}

func TestRender_DepthZeroIsBlack(t *testing.T) {
	img, _, err := testCamera(0).Render(context.Background(), testWorld())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 || img.Pix[i+3] != 255 {
			t.Fatalf("Expected opaque black at byte %d, got %v", i, img.Pix[i:i+4])
		}
	}
}

func TestRender_MoreBouncesIsBrighter(t *testing.T) {
	shallow, _, err := testCamera(1).Render(context.Background(), testWorld())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	deep, _, err := testCamera(50).Render(context.Background(), testWorld())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	shallowAvg, deepAvg := averageBrightness(shallow), averageBrightness(deep)
	if shallowAvg >= deepAvg {
		t.Errorf("Expected depth 1 (%f) to be darker than depth 50 (%f)", shallowAvg, deepAvg)
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	single := testCamera(10)
	single.NumWorkers = 1
	many := testCamera(10)
	many.NumWorkers = 8

	a, _, err := single.Render(context.Background(), testWorld())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	b, _, err := many.Render(context.Background(), testWorld())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("Images differ at byte %d: %d vs %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestRender_Stats(t *testing.T) {
	camera := testCamera(5)
	camera.AspectRatio = 2
	img, stats, err := camera.Render(context.Background(), testWorld())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("Expected 16x8 image, got %v", img.Bounds())
	}
	if stats.Scanlines != 8 || stats.Pixels != 128 || stats.Samples != 512 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.AverageSamples() != 4 {
		t.Errorf("Expected 4 samples per pixel, got %f", stats.AverageSamples())
	}
	if stats.Rays < stats.Samples {
		t.Errorf("Expected at least one ray per sample, got %d rays", stats.Rays)
	}
	if stats.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", stats.Workers)
	}

	table := stats.Table()
	if !strings.Contains(table, "TOTAL") || !strings.Contains(table, "Samples/pixel") {
		t.Errorf("Stats table missing columns:\n%s", table)
	}
}

func TestRender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := testCamera(10).Render(ctx, testWorld())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image from a cancelled render")
	}
}
