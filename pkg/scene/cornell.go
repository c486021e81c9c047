package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellWalls returns the five walls of the box; the light is added by the caller
func cornellWalls() (*geometry.HittableList, material.Material) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	walls := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)

	return walls, white
}

// cornellBlocks returns the tall and short rotated boxes
func cornellBlocks(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	return tall, short
}

func cornellCamera() *renderer.Camera {
	camera := newCamera(1.0, 600, 200, 40, core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0))
	camera.Background = renderer.NewSolidBackground(core.Vec3{})
	return camera
}

// NewCornellBoxScene creates the classic Cornell box lit by a ceiling quad
func NewCornellBoxScene(sampler core.Sampler) (*Scene, error) {
	world, white := cornellWalls()

	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	world.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	tall, short := cornellBlocks(white)
	world.Add(tall)
	world.Add(short)

	return &Scene{World: newBVH("cornell-box", world), Camera: cornellCamera()}, nil
}

// NewCornellSmokeScene replaces the two boxes with volumes of smoke and fog
func NewCornellSmokeScene(sampler core.Sampler) (*Scene, error) {
	world, white := cornellWalls()

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))

	tall, short := cornellBlocks(white)
	world.Add(geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)))

	return &Scene{World: newBVH("cornell-smoke", world), Camera: cornellCamera()}, nil
}
