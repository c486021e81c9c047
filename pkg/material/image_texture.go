package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// missingTexture is the debug color returned when an image has no pixels
var missingTexture = core.NewVec3(1, 0, 1)

// ImageTexture provides color from a decoded 8-bit RGB image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []byte // Row-major RGB triples: Pixels[y*Width*3 + x*3]
}

// NewImageTexture creates a new image texture over an RGB buffer
func NewImageTexture(width, height int, pixels []byte) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering.
// UV is clamped to [0,1]; V=0 is the bottom row of the image.
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.Height <= 0 || len(t.Pixels) == 0 {
		return missingTexture
	}

	unit := core.NewInterval(0, 1)
	u = unit.Clamp(u)
	v = 1.0 - unit.Clamp(v)

	x := clampIndex(int(u*float64(t.Width)), t.Width)
	y := clampIndex(int(v*float64(t.Height)), t.Height)

	offset := y*t.Width*3 + x*3
	const colorScale = 1.0 / 255.0
	return core.NewVec3(
		colorScale*float64(t.Pixels[offset]),
		colorScale*float64(t.Pixels[offset+1]),
		colorScale*float64(t.Pixels[offset+2]),
	)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
