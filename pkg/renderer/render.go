package renderer

import (
	"context"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Render initializes the camera and traces every pixel of world. The world
// must not be modified while rendering. If ctx is cancelled the render stops
// after the scanlines in flight and ctx.Err() is returned.
func (c *Camera) Render(ctx context.Context, world geometry.Hittable) (*image.RGBA, RenderStats, error) {
	c.Initialize()
	start := time.Now()

	img := image.NewRGBA(image.Rect(0, 0, c.ImageWidth, c.imageHeight))

	pool := NewWorkerPool(c, world, img, c.NumWorkers)
	pool.Start(ctx)

	for j := 0; j < c.imageHeight; j++ {
		pool.SubmitTask(ScanlineTask{Row: j, Seed: c.Seed + int64(j)})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var renderErr error

	for remaining := c.imageHeight; remaining > 0; remaining-- {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}

		stats.Add(result.Stats)
		logger.Infof("scanlines remaining: %d", remaining-1)
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	if renderErr != nil {
		return nil, stats, renderErr
	}

	logger.Noticef("render complete: %dx%d in %s", c.ImageWidth, c.imageHeight, stats.Elapsed)
	return img, stats, nil
}
