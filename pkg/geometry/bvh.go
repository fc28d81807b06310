package geometry

import (
	"sort"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// BVHNode is one node of a bounding volume hierarchy. Every node built
// by NewBVH has Left and Right set; the leaves are the wrapped objects
// themselves, and a node over a single object has Left and Right both
// pointing at it. NewBVH never sets Object, and Hit does not read it.
type BVHNode struct {
	Box    core.AABB
	Left   core.Hittable
	Right  core.Hittable
	Object core.Hittable
}

// NewBVH builds a hierarchy over objects for the motion interval
// [time0,time1], following the random-axis / median-split construction:
// pick a random axis, sort by bounding-box-min along it, split at the
// median, recurse. Panics if the list is empty; a malformed scene
// should not silently render wrong.
func NewBVH(objects []core.Hittable, time0, time1 float64, sampler *core.Sampler) core.Hittable {
	if len(objects) == 0 {
		panic("geometry: NewBVH called with an empty object list")
	}

	working := make([]core.Hittable, len(objects))
	copy(working, objects)

	return buildBVHNode(working, time0, time1, sampler)
}

func buildBVHNode(objects []core.Hittable, time0, time1 float64, sampler *core.Sampler) core.Hittable {
	axis := sampler.Intn(3)

	var left, right core.Hittable

	switch len(objects) {
	case 1:
		left = objects[0]
		right = objects[0]
	case 2:
		if boxMin(objects[0], time0, time1, axis) <= boxMin(objects[1], time0, time1, axis) {
			left, right = objects[0], objects[1]
		} else {
			left, right = objects[1], objects[0]
		}
	default:
		sorted := make([]core.Hittable, len(objects))
		copy(sorted, objects)
		sort.Slice(sorted, func(i, j int) bool {
			return boxMin(sorted[i], time0, time1, axis) < boxMin(sorted[j], time0, time1, axis)
		})
		mid := len(sorted) / 2
		left = buildBVHNode(sorted[:mid], time0, time1, sampler)
		right = buildBVHNode(sorted[mid:], time0, time1, sampler)
	}

	boxL := mustBoundingBox(left, time0, time1)
	boxR := mustBoundingBox(right, time0, time1)

	return &BVHNode{
		Box:   boxL.Union(boxR),
		Left:  left,
		Right: right,
	}
}

func boxMin(h core.Hittable, time0, time1 float64, axis int) float64 {
	return mustBoundingBox(h, time0, time1).AxisValue(axis)
}

func mustBoundingBox(h core.Hittable, time0, time1 float64) core.AABB {
	return h.BoundingBox(time0, time1)
}

// Hit descends into the child whose box the ray hits, shrinking tMax to
// the left hit's t before testing the right so traversal never visits
// a farther object once a nearer one is found.
func (n *BVHNode) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if !n.Box.Hit(r, tMin, tMax) {
		return core.HitRecord{}, false
	}

	leftRec, hitLeft := n.Left.Hit(r, tMin, tMax)
	if hitLeft {
		tMax = leftRec.T
	}
	rightRec, hitRight := n.Right.Hit(r, tMin, tMax)

	if hitRight {
		return rightRec, true
	}
	if hitLeft {
		return leftRec, true
	}
	return core.HitRecord{}, false
}

// BoundingBox returns the node's cached, already-unioned box.
func (n *BVHNode) BoundingBox(time0, time1 float64) core.AABB {
	return n.Box
}

// PDFValue and Random are not meaningful on a BVH node directly; lights
// are sampled from the scene's separate, unaccelerated lights list, so
// these exist only to satisfy the Hittable contract.
func (n *BVHNode) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return 0
}

func (n *BVHNode) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	return sampler.UnitVector()
}
