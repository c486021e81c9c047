package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Value(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Albedo core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(albedo core.Vec3) *SolidColor {
	return &SolidColor{Albedo: albedo}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Albedo
}

// CheckerTexture alternates between two textures on a 3D lattice of cubes
type CheckerTexture struct {
	invScale float64
	even     Texture
	odd      Texture
}

// NewCheckerTexture creates a checker of two textures with cubes of the given edge length
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, even: even, odd: odd}
}

// NewCheckerColors creates a checker of two solid colors
func NewCheckerColors(scale float64, c1, c2 core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(c1), NewSolidColor(c2))
}

// Value picks the even or odd texture from the parity of the lattice cell containing point
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * point.X))
	y := int(math.Floor(c.invScale * point.Y))
	z := int(math.Floor(c.invScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.even.Value(u, v, point)
	}
	return c.odd.Value(u, v, point)
}
