package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ConstantMedium is a volume of uniform density bounded by a closed surface,
// such as smoke or fog
type ConstantMedium struct {
	Boundary      Hittable
	negInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium creates a medium of the given density with an isotropic phase function
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium creates a medium whose scattering albedo varies with a texture
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1 / density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// Hit samples a scattering event inside the boundary. The ray may pass
// through without scattering, in which case there is no hit.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	var rec1, rec2 material.HitRecord

	if !m.Boundary.Hit(ray, core.UniverseInterval, &rec1, sampler) {
		return false
	}
	if !m.Boundary.Hit(ray, core.NewInterval(rec1.T+0.0001, math.Inf(1)), &rec2, sampler) {
		return false
	}

	if rec1.T < rayT.Min {
		rec1.T = rayT.Min
	}
	if rec2.T > rayT.Max {
		rec2.T = rayT.Max
	}
	if rec1.T >= rec2.T {
		return false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return false
	}

	rec.T = rec1.T + hitDistance/rayLength
	rec.Point = ray.At(rec.T)
	rec.Normal = core.NewVec3(1, 0, 0) // arbitrary
	rec.FrontFace = true               // also arbitrary
	rec.U, rec.V = 0, 0
	rec.Material = m.PhaseFunction

	return true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
