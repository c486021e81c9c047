package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly over the shutter interval
type Sphere struct {
	Center   core.Ray // Center at time 0 and its displacement by time 1
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return NewMovingSphere(center, center, radius, mat)
}

// NewMovingSphere creates a sphere whose center moves from center1 at time 0 to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	centerRay := core.NewRay(center1, center2.Subtract(center1))

	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(centerRay.At(0).Subtract(rvec), centerRay.At(0).Add(rvec))
	box2 := core.NewAABBFromPoints(centerRay.At(1).Subtract(rvec), centerRay.At(1).Add(rvec))

	return &Sphere{
		Center:   centerRay,
		Radius:   radius,
		Material: mat,
		bbox:     box1.Union(box2),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	currentCenter := s.Center.At(ray.Time)

	// Vector from ray origin to sphere center
	oc := currentCenter.Subtract(ray.Origin)

	// Quadratic equation coefficients: at² - 2ht + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	outwardNormal := rec.Point.Subtract(currentCenter).Divide(s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	rec.Material = s.Material

	return true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// sphereUV maps a point on the unit sphere to latitude/longitude texture
// coordinates: u is the angle around Y from X=-1, v runs from Y=-1 to Y=+1
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
