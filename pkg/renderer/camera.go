package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("renderer")

// Camera holds the render configuration and the state derived from it.
// Set the exported fields, then call Render (which initializes) or
// Initialize directly.
type Camera struct {
	AspectRatio     float64 // Ratio of image width over height
	ImageWidth      int     // Rendered image width in pixel count
	SamplesPerPixel int     // Count of random samples for each pixel
	MaxDepth        int     // Maximum number of ray bounces into scene

	VFov     float64   // Vertical view angle (field of view) in degrees
	LookFrom core.Vec3 // Point camera is looking from
	LookAt   core.Vec3 // Point camera is looking at
	VUp      core.Vec3 // Camera-relative "up" direction

	DefocusAngle float64 // Variation angle of rays through each pixel, in degrees
	FocusDist    float64 // Distance from camera LookFrom point to plane of perfect focus

	Background Background // Radiance for rays that escape the scene; nil means sky gradient
	NumWorkers int        // Parallel scanline workers; <= 0 means one per CPU
	Seed       int64      // Base seed; scanline y uses Seed+y

	imageHeight       int
	pixelSamplesScale float64
	center            core.Vec3
	pixel00Loc        core.Vec3
	pixelDeltaU       core.Vec3
	pixelDeltaV       core.Vec3
	u, v, w           core.Vec3
	defocusDiskU      core.Vec3
	defocusDiskV      core.Vec3
}

// NewCamera returns a camera with the default configuration
func NewCamera() *Camera {
	return &Camera{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// Initialize derives the image height, viewport geometry and defocus disk
// from the exported configuration
func (c *Camera) Initialize() {
	c.imageHeight = int(float64(c.ImageWidth) / c.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	c.pixelSamplesScale = 1.0 / float64(c.SamplesPerPixel)
	c.center = c.LookFrom

	// Determine viewport dimensions
	theta := core.DegreesToRadians(c.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDist
	viewportWidth := viewportHeight * (float64(c.ImageWidth) / float64(c.imageHeight))

	// Calculate the u,v,w unit basis vectors for the camera coordinate frame
	c.w = c.LookFrom.Subtract(c.LookAt).Normalize()
	c.u = c.VUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	// Location of the upper left pixel
	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(c.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	// Camera defocus disk basis vectors
	defocusRadius := c.FocusDist * math.Tan(core.DegreesToRadians(c.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	if c.Background == nil {
		c.Background = SkyGradient{}
	}

	logger.Debugf("camera: %dx%d, %d spp, depth %d, vfov %.1f, viewport %.4fx%.4f, defocus radius %.4f",
		c.ImageWidth, c.imageHeight, c.SamplesPerPixel, c.MaxDepth, c.VFov, viewportWidth, viewportHeight, defocusRadius)
}

// ImageHeight returns the derived image height; valid after Initialize
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// GetRay constructs a camera ray originating from the defocus disk and
// directed at a randomly sampled point around pixel (i, j)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampleSquare(sampler)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	rayOrigin := c.center
	if c.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}
	rayDirection := pixelSample.Subtract(rayOrigin)
	rayTime := sampler.Get1D()

	return core.NewRayAtTime(rayOrigin, rayDirection, rayTime)
}

// sampleSquare returns a random point in the [-.5,-.5]-[+.5,+.5] unit square
func sampleSquare(sampler core.Sampler) core.Vec2 {
	s := sampler.Get2D()
	return core.NewVec2(s.X-0.5, s.Y-0.5)
}

// defocusDiskSample returns a random point in the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
