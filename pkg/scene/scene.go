package scene

import (
	"bytes"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
)

var logger = log.New("scene")

// Scene is a finished world together with the camera recommended for it
type Scene struct {
	Name   string
	World  geometry.Hittable
	Camera *renderer.Camera
}

// Builder assembles a scene, drawing any randomness from sampler
type Builder func(sampler core.Sampler) (*Scene, error)

// SceneInfo describes a registered scene
type SceneInfo struct {
	Name        string
	Description string
	Build       Builder
}

var registry = []SceneInfo{
	{"bouncing-spheres", "random small spheres with motion blur around three large ones", NewBouncingSpheresScene},
	{"checkered-spheres", "two spheres sharing a solid checker texture", NewCheckeredSpheresScene},
	{"earth", "a sphere wrapped in the earthmap.jpg image texture", NewEarthScene},
	{"perlin-spheres", "marble-like Perlin turbulence on a ground sphere and a ball", NewPerlinSpheresScene},
	{"quads", "five colored quads facing the camera", NewQuadsScene},
	{"simple-light", "Perlin spheres lit by a sphere and a quad light", NewSimpleLightScene},
	{"cornell-box", "the Cornell box with two rotated boxes", NewCornellBoxScene},
	{"cornell-smoke", "the Cornell box with boxes of black and white smoke", NewCornellSmokeScene},
	{"final", "everything: boxes, media, motion blur, textures and instances", NewFinalScene},
}

// List returns every registered scene in display order
func List() []SceneInfo {
	scenes := make([]SceneInfo, len(registry))
	copy(scenes, registry)
	return scenes
}

// Get looks up a registered scene by name
func Get(name string) (SceneInfo, bool) {
	for _, info := range registry {
		if info.Name == name {
			return info, true
		}
	}
	return SceneInfo{}, false
}

// Build constructs the named scene with a generator seeded by seed
func Build(name string, seed int64) (*Scene, error) {
	info, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}

	s, err := info.Build(core.NewSeededSampler(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", name, err)
	}
	s.Name = name
	return s, nil
}

// Table renders the registry as a text table
func Table() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range registry {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	return buf.String()
}

// newBVH builds a hierarchy over list and logs its shape
func newBVH(name string, list *geometry.HittableList) *geometry.BVHNode {
	bvh := geometry.NewBVH(list)
	logger.Debugf("%s BVH over %d objects\n%s", name, list.Len(), bvh.Stats().Table())
	return bvh
}

// newCamera returns the camera settings shared by most scenes
func newCamera(aspectRatio float64, width, spp int, vfov float64, lookFrom, lookAt core.Vec3) *renderer.Camera {
	camera := renderer.NewCamera()
	camera.AspectRatio = aspectRatio
	camera.ImageWidth = width
	camera.SamplesPerPixel = spp
	camera.MaxDepth = 50
	camera.VFov = vfov
	camera.LookFrom = lookFrom
	camera.LookAt = lookAt
	camera.VUp = core.NewVec3(0, 1, 0)
	camera.DefocusAngle = 0
	return camera
}
