package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// constSampler returns the same value for every dimension
type constSampler float64

func (c constSampler) Get1D() float64 { return float64(c) }
func (c constSampler) Get2D() core.Vec2 {
	return core.NewVec2(float64(c), float64(c))
}
func (c constSampler) Get3D() core.Vec3 {
	return core.NewVec3(float64(c), float64(c), float64(c))
}

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestCameraInitialize_ImageHeight(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		aspectRatio float64
		expected    int
	}{
		{"square", 100, 1.0, 100},
		{"widescreen", 400, 16.0 / 9.0, 225},
		{"floored", 10, 3.0, 3},
		{"minimum one row", 1, 10.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera()
			camera.ImageWidth = tt.width
			camera.AspectRatio = tt.aspectRatio
			camera.Initialize()

			if camera.ImageHeight() != tt.expected {
				t.Errorf("Expected height %d, got %d", tt.expected, camera.ImageHeight())
			}
		})
	}
}

func TestCameraInitialize_Viewport(t *testing.T) {
	camera := NewCamera()
	camera.FocusDist = 1
	camera.Initialize()

	// vfov 90 at focus distance 1 gives a 2x2 viewport
	if !vecClose(camera.w, core.NewVec3(0, 0, 1), 1e-9) ||
		!vecClose(camera.u, core.NewVec3(1, 0, 0), 1e-9) ||
		!vecClose(camera.v, core.NewVec3(0, 1, 0), 1e-9) {
		t.Errorf("Unexpected basis u=%v v=%v w=%v", camera.u, camera.v, camera.w)
	}
	if !vecClose(camera.pixelDeltaU, core.NewVec3(0.02, 0, 0), 1e-9) {
		t.Errorf("Expected pixel delta u (0.02,0,0), got %v", camera.pixelDeltaU)
	}
	if !vecClose(camera.pixelDeltaV, core.NewVec3(0, -0.02, 0), 1e-9) {
		t.Errorf("Expected pixel delta v (0,-0.02,0), got %v", camera.pixelDeltaV)
	}
	if !vecClose(camera.pixel00Loc, core.NewVec3(-0.99, 0.99, -1), 1e-9) {
		t.Errorf("Expected pixel (0,0) at (-0.99,0.99,-1), got %v", camera.pixel00Loc)
	}
	if camera.defocusDiskU.Length() != 0 {
		t.Errorf("Expected no defocus disk with zero angle, got %v", camera.defocusDiskU)
	}
}

func TestCameraGetRay_PixelCenter(t *testing.T) {
	camera := NewCamera()
	camera.FocusDist = 1
	camera.Initialize()

	// A sampler fixed at 0.5 removes the jitter
	ray := camera.GetRay(0, 0, constSampler(0.5))

	if ray.Origin != camera.LookFrom {
		t.Errorf("Expected ray from %v, got %v", camera.LookFrom, ray.Origin)
	}
	if !vecClose(ray.Direction, core.NewVec3(-0.99, 0.99, -1), 1e-9) {
		t.Errorf("Expected direction to pixel (0,0), got %v", ray.Direction)
	}
	if ray.Time != 0.5 {
		t.Errorf("Expected ray time 0.5, got %f", ray.Time)
	}
}

func TestCameraGetRay_Defocus(t *testing.T) {
	camera := NewCamera()
	camera.DefocusAngle = 10
	camera.FocusDist = 4
	camera.Initialize()

	radius := 4 * math.Tan(core.DegreesToRadians(5))
	sampler := core.NewSeededSampler(3)
	moved := false

	for i := 0; i < 200; i++ {
		ray := camera.GetRay(50, 50, sampler)

		offset := ray.Origin.Subtract(camera.LookFrom)
		if offset.Length() > radius+1e-9 {
			t.Fatalf("Ray origin %v outside defocus disk of radius %f", ray.Origin, radius)
		}
		if math.Abs(offset.Z) > 1e-9 {
			t.Fatalf("Ray origin %v off the lens plane", ray.Origin)
		}
		if offset.Length() > 0 {
			moved = true
		}
		if ray.Time < 0 || ray.Time >= 1 {
			t.Fatalf("Ray time %f outside [0,1)", ray.Time)
		}
	}

	if !moved {
		t.Error("Expected defocus to jitter ray origins")
	}
}
