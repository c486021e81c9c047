package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is implemented by everything a ray can be intersected with:
// primitives, transforms, lists and BVH nodes.
//
// Hit reports whether the ray hits the object with a parameter inside rayT
// and, if so, fills rec with the nearest such hit. rec is only written on a
// true result. The sampler is used by shapes with stochastic surfaces, such
// as participating media; it must not be shared across goroutines.
//
// BoundingBox returns a box enclosing the object for every ray time in [0,1].
// Hittables are immutable once built, so a single instance may be referenced
// from several containers and traversed concurrently.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool
	BoundingBox() core.AABB
}
