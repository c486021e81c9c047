package geometry

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/olekukonko/tablewriter"
)

// BVHNode is a node of a binary bounding volume hierarchy. Children are
// either further nodes or the primitives themselves.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVH builds a hierarchy over the objects currently in the list.
// Objects added to the list afterwards are not part of the hierarchy.
func NewBVH(list *HittableList) *BVHNode {
	return NewBVHNode(list.Objects)
}

// NewBVHNode builds a hierarchy over objects. The slice is copied, so the
// caller's ordering is left untouched.
func NewBVHNode(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{bbox: core.EmptyAABB}
	}

	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy)
}

// buildBVH splits objects at the median along the longest axis of their combined box
func buildBVH(objects []Hittable) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects {
		bbox = bbox.Union(object.BoundingBox())
	}

	node := &BVHNode{bbox: bbox}

	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		node.Left = objects[0]
		node.Right = objects[1]
	default:
		axis := bbox.LongestAxis()
		sort.SliceStable(objects, func(i, j int) bool {
			return objects[i].BoundingBox().AxisInterval(axis).Min < objects[j].BoundingBox().AxisInterval(axis).Min
		})

		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid])
		node.Right = buildBVH(objects[mid:])
	}

	return node
}

// Hit returns the closest hit in either subtree
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	if n.Left == nil || !n.bbox.Hit(ray, rayT) {
		return false
	}

	hitLeft := n.Left.Hit(ray, rayT, rec, sampler)

	rightT := rayT
	if hitLeft {
		rightT = core.NewInterval(rayT.Min, rec.T)
	}
	hitRight := n.Right.Hit(ray, rightT, rec, sampler)

	return hitLeft || hitRight
}

// BoundingBox returns the union of both children
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	Nodes      int // Interior BVH nodes
	Leaves     int // Non-BVH children, counted once per reference
	MaxDepth   int // Longest root-to-leaf path, in nodes
	Primitives int // Distinct leaf objects
}

// Stats walks the hierarchy and collects node counts
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	seen := make(map[Hittable]bool)
	n.collectStats(1, &stats, seen)
	stats.Primitives = len(seen)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats, seen map[Hittable]bool) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if n.Left == nil {
		return
	}

	children := []Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}

	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats, seen)
			continue
		}
		stats.Leaves++
		seen[child] = true
	}
}

// Table renders the stats as a text table for logging
func (s BVHStats) Table() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"BVH", "Value"})
	table.Append([]string{"Nodes", fmt.Sprint(s.Nodes)})
	table.Append([]string{"Leaves", fmt.Sprint(s.Leaves)})
	table.Append([]string{"Primitives", fmt.Sprint(s.Primitives)})
	table.Append([]string{"Max depth", fmt.Sprint(s.MaxDepth)})
	table.Render()

	return buf.String()
}
