package renderer

import "github.com/df07/go-pathtracer/pkg/core"

// Background supplies the radiance carried by rays that leave the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SkyGradient blends from white at the horizon to sky blue overhead
type SkyGradient struct{}

// Color interpolates on the normalized ray direction's y component
func (SkyGradient) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return core.NewVec3(1, 1, 1).Multiply(1.0 - a).Add(core.NewVec3(0.5, 0.7, 1.0).Multiply(a))
}

// SolidBackground returns one color in every direction
type SolidBackground struct {
	Albedo core.Vec3
}

// NewSolidBackground creates a uniform background
func NewSolidBackground(color core.Vec3) SolidBackground {
	return SolidBackground{Albedo: color}
}

// Color returns the fixed background color
func (b SolidBackground) Color(ray core.Ray) core.Vec3 {
	return b.Albedo
}
