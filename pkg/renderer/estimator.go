package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// shadowAcneEpsilon excludes hits at the origin of a scattered ray
const shadowAcneEpsilon = 0.001

// RayColor returns the radiance arriving along ray, following at most depth bounces
func (c *Camera) RayColor(ray core.Ray, depth int, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	var rays int
	return c.rayColor(ray, depth, world, sampler, &rays)
}

// rayColor is the recursive estimator; rays counts every traced ray
func (c *Camera) rayColor(ray core.Ray, depth int, world geometry.Hittable, sampler core.Sampler, rays *int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}
	*rays++

	var rec material.HitRecord
	if !world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), &rec, sampler) {
		return c.background().Color(ray)
	}

	emitted := material.Emitted(rec.Material, rec.U, rec.V, rec.Point)

	scatter, didScatter := rec.Material.Scatter(ray, rec, sampler)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(c.rayColor(scatter.Scattered, depth-1, world, sampler, rays)))
}

// background returns the configured background, the sky gradient when unset
func (c *Camera) background() Background {
	if c.Background == nil {
		return SkyGradient{}
	}
	return c.Background
}

// renderScanline samples every pixel of row j and writes it into img
func (c *Camera) renderScanline(j int, img *image.RGBA, world geometry.Hittable, sampler core.Sampler) ScanlineStats {
	stats := ScanlineStats{Pixels: c.ImageWidth}

	for i := 0; i < c.ImageWidth; i++ {
		pixelColor := core.Vec3{}
		for sample := 0; sample < c.SamplesPerPixel; sample++ {
			ray := c.GetRay(i, j, sampler)
			pixelColor = pixelColor.Add(c.rayColor(ray, c.MaxDepth, world, sampler, &stats.Rays))
		}
		stats.Samples += c.SamplesPerPixel

		img.SetRGBA(i, j, ToRGBA(pixelColor.Multiply(c.pixelSamplesScale)))
	}

	return stats
}

// linearToGamma applies the gamma 2 transform
func linearToGamma(linearComponent float64) float64 {
	if linearComponent > 0 {
		return math.Sqrt(linearComponent)
	}
	return 0
}

// quantize maps a gamma-corrected component to [0,255]
func quantize(component float64) uint8 {
	intensity := core.NewInterval(0.000, 0.999)
	return uint8(256 * intensity.Clamp(component))
}

// ToRGBA converts a linear color to an 8-bit pixel with gamma correction
func ToRGBA(pixelColor core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(linearToGamma(pixelColor.X)),
		G: quantize(linearToGamma(pixelColor.Y)),
		B: quantize(linearToGamma(pixelColor.Z)),
		A: 255,
	}
}
