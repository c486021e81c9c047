package core

import (
	"fmt"
	"math"
)

// minimumThickness is the smallest extent an AABB axis is padded to, so that
// planar shapes still produce a box a ray can enter
const minimumThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

var (
	// EmptyAABB bounds nothing; its union with any box is that box
	EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
	// UniverseAABB bounds all of space
	UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}
)

// NewAABB creates an AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// NewAABBFromPoints creates an AABB from two opposite corners, in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	return NewAABB(
		NewInterval(math.Min(a.X, b.X), math.Max(a.X, b.X)),
		NewInterval(math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)),
		NewInterval(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)),
	)
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: MergeIntervals(aabb.X, other.X),
		Y: MergeIntervals(aabb.Y, other.Y),
		Z: MergeIntervals(aabb.Z, other.Z),
	}
}

// AxisInterval returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	}
	panic(fmt.Sprintf("core: aabb axis %d out of range", axis))
}

// Hit tests if a ray intersects this AABB within rayT using the slab method.
// A zero direction component yields an infinite reciprocal, which IEEE
// arithmetic turns into a slab that either spans everything or nothing.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max

	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		adinv := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (ax.Min - origin) * adinv
		t1 := (ax.Max - origin) * adinv

		if t0 < t1 {
			if t0 > tMin {
				tMin = t0
			}
			if t1 < tMax {
				tMax = t1
			}
		} else {
			if t1 > tMin {
				tMin = t1
			}
			if t0 < tMax {
				tMax = t0
			}
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// X must beat both others strictly; otherwise Y must beat Z strictly; else Z.
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
	} else if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

// Add returns the box translated by offset
func (aabb AABB) Add(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Shift(offset.X),
		Y: aabb.Y.Shift(offset.Y),
		Z: aabb.Z.Shift(offset.Z),
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// IsEmpty reports whether any axis is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}

// padToMinimums widens any non-empty axis thinner than minimumThickness
func (aabb AABB) padToMinimums() AABB {
	if aabb.X.Size() >= 0 && aabb.X.Size() < minimumThickness {
		aabb.X = aabb.X.Expand(minimumThickness)
	}
	if aabb.Y.Size() >= 0 && aabb.Y.Size() < minimumThickness {
		aabb.Y = aabb.Y.Expand(minimumThickness)
	}
	if aabb.Z.Size() >= 0 && aabb.Z.Size() < minimumThickness {
		aabb.Z = aabb.Z.Expand(minimumThickness)
	}
	return aabb
}

func (aabb AABB) String() string {
	return fmt.Sprintf("x: %v, y: %v, z: %v", aabb.X, aabb.Y, aabb.Z)
}
