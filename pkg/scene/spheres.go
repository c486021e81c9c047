package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewBouncingSpheresScene scatters small random spheres on a checkered
// ground; the diffuse ones bounce upward during the shutter interval
func NewBouncingSpheresScene(sampler core.Sampler) (*Scene, error) {
	world := geometry.NewHittableList()

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center2 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// glass
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	camera := newCamera(16.0/9.0, 400, 100, 20, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0))
	camera.DefocusAngle = 0.6
	camera.FocusDist = 10.0

	return &Scene{World: newBVH("bouncing-spheres", world), Camera: camera}, nil
}

// NewCheckeredSpheresScene places two large spheres sharing one checker material
func NewCheckeredSpheresScene(sampler core.Sampler) (*Scene, error) {
	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	surface := material.NewTexturedLambertian(checker)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, surface),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, surface),
	)

	camera := newCamera(16.0/9.0, 400, 100, 20, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0))
	return &Scene{World: world, Camera: camera}, nil
}

// NewEarthScene wraps a sphere in the earthmap.jpg texture
func NewEarthScene(sampler core.Sampler) (*Scene, error) {
	earthTexture, err := loaders.LoadImageTexture("earthmap.jpg")
	if err != nil {
		return nil, err
	}

	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earthTexture))
	world := geometry.NewHittableList(globe)

	camera := newCamera(16.0/9.0, 400, 100, 20, core.NewVec3(0, 0, 12), core.NewVec3(0, 0, 0))
	return &Scene{World: world, Camera: camera}, nil
}

// NewPerlinSpheresScene shows Perlin turbulence on a ground sphere and a ball
func NewPerlinSpheresScene(sampler core.Sampler) (*Scene, error) {
	pertext := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, pertext),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, pertext),
	)

	camera := newCamera(16.0/9.0, 400, 100, 20, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0))
	return &Scene{World: world, Camera: camera}, nil
}

// NewSimpleLightScene lights the Perlin spheres with emissive geometry only
func NewSimpleLightScene(sampler core.Sampler) (*Scene, error) {
	pertext := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	difflight := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, pertext),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, pertext),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, difflight),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), difflight),
	)

	camera := newCamera(16.0/9.0, 400, 100, 20, core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0))
	camera.Background = renderer.NewSolidBackground(core.Vec3{})
	return &Scene{World: world, Camera: camera}, nil
}
