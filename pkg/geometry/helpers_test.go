package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// DummyMaterial absorbs everything; geometry tests only care about hit records
type DummyMaterial struct{}

func (d DummyMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// constSampler returns the same value for every dimension
type constSampler float64

func (c constSampler) Get1D() float64 { return float64(c) }
func (c constSampler) Get2D() core.Vec2 {
	return core.NewVec2(float64(c), float64(c))
}
func (c constSampler) Get3D() core.Vec3 {
	return core.NewVec3(float64(c), float64(c), float64(c))
}

var defaultInterval = core.NewInterval(0.001, 1000.0)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
