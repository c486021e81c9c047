package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCheckerTexture(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerColors(0.5, even, odd)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"origin cell", core.NewVec3(0.1, 0.1, 0.1), even},
		{"step in x", core.NewVec3(0.6, 0.1, 0.1), odd},
		{"step in x and y", core.NewVec3(0.6, 0.6, 0.1), even},
		{"negative cell", core.NewVec3(-0.1, 0.1, 0.1), odd},
		{"two negative steps", core.NewVec3(-0.1, -0.1, 0.1), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Value(0, 0, tt.point); got != tt.expected {
				t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, got)
			}
		})
	}
}

func TestPerlin_NoiseIsContinuousAndBounded(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	perlin := NewPerlin(sampler)

	// Lattice points have zero weight vector, so noise vanishes there
	if n := perlin.Noise(core.NewVec3(3, -2, 5)); math.Abs(n) > 1e-12 {
		t.Errorf("Expected zero noise on lattice point, got %f", n)
	}

	p := core.NewVec3(1.3, 2.7, -0.4)
	a := perlin.Noise(p)
	b := perlin.Noise(p.Add(core.NewVec3(1e-6, 0, 0)))
	if math.Abs(a-b) > 1e-4 {
		t.Errorf("Noise should be continuous: %f vs %f", a, b)
	}

	for i := 0; i < 200; i++ {
		q := core.RandomVec3(sampler, -50, 50)
		if n := perlin.Noise(q); math.Abs(n) > 2 {
			t.Fatalf("Noise out of expected range at %v: %f", q, n)
		}
		if turb := perlin.Turb(q, 7); turb < 0 {
			t.Fatalf("Turbulence must be non-negative, got %f", turb)
		}
	}
}

func TestPerlin_PermutationsArePermutations(t *testing.T) {
	perlin := NewPerlin(core.NewRandomSampler(rand.New(rand.NewSource(5))))

	for name, perm := range map[string][perlinPointCount]int{
		"x": perlin.permX, "y": perlin.permY, "z": perlin.permZ,
	} {
		seen := make([]bool, perlinPointCount)
		for _, v := range perm {
			if v < 0 || v >= perlinPointCount || seen[v] {
				t.Fatalf("perm %s is not a permutation (value %d)", name, v)
			}
			seen[v] = true
		}
	}
}

func TestNoiseTexture_GrayInUnitRange(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(9)))
	texture := NewNoiseTexture(4, sampler)

	for i := 0; i < 200; i++ {
		p := core.RandomVec3(sampler, -10, 10)
		c := texture.Value(0, 0, p)
		if c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Expected gray, got %v", c)
		}
		if c.X < 0 || c.X > 1 {
			t.Fatalf("Expected value in [0,1], got %f", c.X)
		}
	}
}

func TestDiffuseLightAndEmitted(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	if _, ok := light.Scatter(core.Ray{}, HitRecord{}, sampler); ok {
		t.Error("Lights must not scatter")
	}
	if got := Emitted(light, 0, 0, core.Vec3{}); got != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected emission (4,4,4), got %v", got)
	}
	if got := Emitted(NewLambertian(core.NewVec3(1, 1, 1)), 0, 0, core.Vec3{}); got != (core.Vec3{}) {
		t.Errorf("Non-emitters must emit black, got %v", got)
	}
}

func TestIsotropic_ScattersUniformUnitDirections(t *testing.T) {
	iso := NewIsotropic(core.NewVec3(0.3, 0.4, 0.5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(2)))
	hit := HitRecord{Point: core.NewVec3(1, 2, 3)}

	for i := 0; i < 100; i++ {
		result, ok := iso.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), hit, sampler)
		if !ok {
			t.Fatal("Isotropic should always scatter")
		}
		if math.Abs(result.Scattered.Direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got %v", result.Scattered.Direction)
		}
		if result.Attenuation != core.NewVec3(0.3, 0.4, 0.5) {
			t.Fatalf("Unexpected attenuation %v", result.Attenuation)
		}
	}
}
