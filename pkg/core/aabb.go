package core

import "math"

// AABB is an axis-aligned bounding box, Min <= Max componentwise.
type AABB struct {
	Min, Max Point3
}

// NewAABB creates an AABB from its min and max corners.
func NewAABB(min, max Point3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints builds the smallest AABB containing every point.
func NewAABBFromPoints(points ...Point3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Vec3{math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z)}
		max = Vec3{math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z)}
	}
	return AABB{Min: min, Max: max}
}

// Hit runs the slab test along each axis. tmin/tmax are local to the call;
// the caller's bounds are never mutated. Division by a zero direction
// component is allowed: it yields ±Inf, which rejects the ray when its
// origin lies outside that axis's slab and leaves the interval unchanged
// when it lies inside.
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin, dir, lo, hi := axisComponents(axis, r, b)
		invD := 1.0 / dir
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

func axisComponents(axis int, r Ray, b AABB) (origin, dir, lo, hi float64) {
	switch axis {
	case 0:
		return r.Origin.X, r.Direction.X, b.Min.X, b.Max.X
	case 1:
		return r.Origin.Y, r.Direction.Y, b.Min.Y, b.Max.Y
	default:
		return r.Origin.Z, r.Direction.Z, b.Min.Z, b.Max.Z
	}
}

// Union returns the componentwise (min, max) of two AABBs.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)},
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Point3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// AxisValue returns the box's min coordinate along the given axis (0=X,
// 1=Y, 2=Z); used by BVH construction to sort children.
func (b AABB) AxisValue(axis int) float64 {
	switch axis {
	case 0:
		return b.Min.X
	case 1:
		return b.Min.Y
	default:
		return b.Min.Z
	}
}

// Pad expands the box by a minimum amount along any axis that is
// degenerate (zero thickness), so flat geometry (e.g. axis rectangles)
// still has a well-formed bounding box for the BVH slab test.
func (b AABB) Pad(minThickness float64) AABB {
	half := minThickness / 2
	min, max := b.Min, b.Max
	if max.X-min.X < minThickness {
		min.X -= half
		max.X += half
	}
	if max.Y-min.Y < minThickness {
		min.Y -= half
		max.Y += half
	}
	if max.Z-min.Z < minThickness {
		min.Z -= half
		max.Z += half
	}
	return AABB{Min: min, Max: max}
}
