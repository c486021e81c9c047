package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewFinalScene combines every feature: a field of ground boxes, a moving
// sphere, glass, metal, subsurface and global fog, an image texture, Perlin
// noise and an instanced cluster of spheres
func NewFinalScene(sampler core.Sampler) (*Scene, error) {
	earthTexture, err := loaders.LoadImageTexture("earthmap.jpg")
	if err != nil {
		return nil, err
	}

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))

	boxesPerSide := 20
	boxes1 := geometry.NewHittableList()
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y0 := 0.0
			x1 := x0 + w
			y1 := core.RandomRange(sampler, 1, 101)
			z1 := z0 + w

			boxes1.Add(geometry.NewBox(core.NewVec3(x0, y0, z0), core.NewVec3(x1, y1, z1), ground))
		}
	}

	world := geometry.NewHittableList()
	world.Add(newBVH("final ground", boxes1))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture)))
	pertext := material.NewNoiseTexture(0.2, sampler)
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(pertext)))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	boxes2 := geometry.NewHittableList()
	for j := 0; j < 1000; j++ {
		boxes2.Add(geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}

	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(newBVH("final cluster", boxes2), 15),
		core.NewVec3(-100, 270, 395),
	))

	camera := newCamera(1.0, 800, 10000, 40, core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0))
	camera.MaxDepth = 40
	camera.Background = renderer.NewSolidBackground(core.Vec3{})

	return &Scene{World: world, Camera: camera}, nil
}
