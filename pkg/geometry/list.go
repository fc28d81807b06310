package geometry

import "github.com/df07/go-progressive-raytracer/pkg/core"

// HittableList is a linear collection of Hittables, tested in order.
// Used directly for small object counts (Box's six faces, the explicit
// light list) and as the input to BVH construction for everything else.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList builds a list holding the given objects (empty when
// called with none).
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list.
func (l *HittableList) Add(obj core.Hittable) {
	l.Objects = append(l.Objects, obj)
}

// Hit tests every object in turn, keeping the closest hit found so far.
func (l *HittableList) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(r, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

// BoundingBox unions the bounding boxes of every object in the list.
func (l *HittableList) BoundingBox(time0, time1 float64) core.AABB {
	if len(l.Objects) == 0 {
		return core.AABB{}
	}
	box := l.Objects[0].BoundingBox(time0, time1)
	for _, obj := range l.Objects[1:] {
		box = box.Union(obj.BoundingBox(time0, time1))
	}
	return box
}

// PDFValue averages the per-object densities, the standard mixture
// density for a list of lights sampled uniformly by index.
func (l *HittableList) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, obj := range l.Objects {
		sum += weight * obj.PDFValue(origin, direction)
	}
	return sum
}

// Random samples one object uniformly at random and delegates to it.
func (l *HittableList) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	idx := sampler.Intn(len(l.Objects))
	return l.Objects[idx].Random(origin, sampler)
}
