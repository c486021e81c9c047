package geometry

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// disjointSpheres places one sphere per unit cell of an n×n×n grid
func disjointSpheres(random *rand.Rand, n int) []Hittable {
	var spheres []Hittable
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				center := core.NewVec3(
					float64(i)+0.5+0.2*(random.Float64()-0.5),
					float64(j)+0.5+0.2*(random.Float64()-0.5),
					float64(k)+0.5+0.2*(random.Float64()-0.5),
				)
				spheres = append(spheres, NewSphere(center, 0.05+0.3*random.Float64(), DummyMaterial{}))
			}
		}
	}
	return spheres
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	spheres := disjointSpheres(random, 5)

	list := NewHittableList(spheres...)
	bvh := NewBVH(list)

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.NewVec3(
			-5+15*random.Float64(),
			-5+15*random.Float64(),
			-5+15*random.Float64(),
		)
		target := core.NewVec3(5*random.Float64(), 5*random.Float64(), 5*random.Float64())
		ray := core.NewRay(origin, target.Subtract(origin))
		interval := core.NewInterval(0.001, math.Inf(1))

		var listRec, bvhRec material.HitRecord
		listHit := list.Hit(ray, interval, &listRec, constSampler(0.5))
		bvhHit := bvh.Hit(ray, interval, &bvhRec, constSampler(0.5))

		if listHit != bvhHit {
			t.Fatalf("Ray %d: linear scan hit=%v, BVH hit=%v", i, listHit, bvhHit)
		}
		if !listHit {
			continue
		}
		hits++
		if math.Abs(listRec.T-bvhRec.T) > 1e-9 {
			t.Errorf("Ray %d: linear scan t=%f, BVH t=%f", i, listRec.T, bvhRec.T)
		}
		if !vecClose(listRec.Point, bvhRec.Point, 1e-9) {
			t.Errorf("Ray %d: linear scan point %v, BVH point %v", i, listRec.Point, bvhRec.Point)
		}
	}

	if hits == 0 {
		t.Fatal("Expected some rays to hit the grid")
	}
}

func TestBVH_SmallCases(t *testing.T) {
	a := NewSphere(core.NewVec3(0, 0, -2), 0.5, DummyMaterial{})
	b := NewSphere(core.NewVec3(0, 0, -5), 0.5, DummyMaterial{})

	tests := []struct {
		name      string
		objects   []Hittable
		expectHit bool
		expectedT float64
	}{
		{"empty", nil, false, 0},
		{"single", []Hittable{b}, true, 4.5},
		{"pair far first", []Hittable{b, a}, true, 1.5},
		{"pair near first", []Hittable{a, b}, true, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bvh := NewBVHNode(tt.objects)
			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

			var rec material.HitRecord
			hit := bvh.Hit(ray, defaultInterval, &rec, constSampler(0.5))
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, hit)
			}
			if hit && math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, rec.T)
			}
		})
	}
}

func TestBVH_SingleMemberSharesChild(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, DummyMaterial{})
	bvh := NewBVHNode([]Hittable{sphere})

	if bvh.Left != bvh.Right {
		t.Error("Expected both children to reference the single member")
	}
	if bvh.BoundingBox() != sphere.BoundingBox() {
		t.Errorf("Expected node bounds %v, got %v", sphere.BoundingBox(), bvh.BoundingBox())
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	objects := []Hittable{
		NewSphere(core.NewVec3(3, 0, 0), 0.5, DummyMaterial{}),
		NewSphere(core.NewVec3(1, 0, 0), 0.5, DummyMaterial{}),
		NewSphere(core.NewVec3(2, 0, 0), 0.5, DummyMaterial{}),
	}
	original := make([]Hittable, len(objects))
	copy(original, objects)

	NewBVHNode(objects)

	for i := range objects {
		if objects[i] != original[i] {
			t.Fatalf("Input slice reordered at index %d", i)
		}
	}
}

func TestBVH_Stats(t *testing.T) {
	var objects []Hittable
	for i := 0; i < 4; i++ {
		objects = append(objects, NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1, DummyMaterial{}))
	}

	stats := NewBVHNode(objects).Stats()
	if stats.Nodes != 3 {
		t.Errorf("Expected 3 nodes, got %d", stats.Nodes)
	}
	if stats.Leaves != 4 || stats.Primitives != 4 {
		t.Errorf("Expected 4 leaves and primitives, got %d and %d", stats.Leaves, stats.Primitives)
	}
	if stats.MaxDepth != 2 {
		t.Errorf("Expected max depth 2, got %d", stats.MaxDepth)
	}

	table := stats.Table()
	if !strings.Contains(table, "Primitives") || !strings.Contains(table, "Max depth") {
		t.Errorf("Stats table missing rows:\n%s", table)
	}
}
