package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves an object by a fixed offset without copying it
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so that it appears displaced by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Add(offset),
	}
}

// Hit moves the ray into object space, tests it, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	if !t.Object.Hit(offsetRay, rayT, rec, sampler) {
		return false
	}

	rec.Point = rec.Point.Add(t.Offset)
	return true
}

// BoundingBox returns the object's box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY rotates an object about the world Y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by angle degrees about the Y axis
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	bbox := object.BoundingBox()
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	// Rotate all eight corners and take their extent
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*bbox.X.Max + float64(1-i)*bbox.X.Min
				y := float64(j)*bbox.Y.Max + float64(1-j)*bbox.Y.Min
				z := float64(k)*bbox.Z.Max + float64(1-k)*bbox.Z.Min

				corner := r.toWorld(core.NewVec3(x, y, z))
				min = min.Min(corner)
				max = max.Max(corner)
			}
		}
	}

	r.bbox = core.NewAABBFromPoints(min, max)
	return r
}

// toObject rotates a world-space vector by -theta
func (r *RotateY) toObject(p core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*p.X-r.sinTheta*p.Z,
		p.Y,
		r.sinTheta*p.X+r.cosTheta*p.Z,
	)
}

// toWorld rotates an object-space vector by +theta
func (r *RotateY) toWorld(p core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*p.X+r.sinTheta*p.Z,
		p.Y,
		-r.sinTheta*p.X+r.cosTheta*p.Z,
	)
}

// Hit rotates the ray into object space, tests it, and rotates the result back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	if !r.Object.Hit(rotated, rayT, rec, sampler) {
		return false
	}

	rec.Point = r.toWorld(rec.Point)
	rec.Normal = r.toWorld(rec.Normal)
	return true
}

// BoundingBox returns the box around the rotated object
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
