package geometry

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Axis names the fixed coordinate of an AxisRect.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AxisRect is a finite rectangle in one of the three coordinate planes:
// X fixed spans (Y,Z), Y fixed spans (X,Z), Z fixed spans (X,Y). Used
// for Cornell-box walls and rectangular area lights.
type AxisRect struct {
	Fixed      Axis
	K          float64 // the fixed coordinate's value
	A0, A1     float64 // bounds of the first varying axis
	B0, B1     float64 // bounds of the second varying axis
	Material   core.Material
	flipNormal bool
}

// NewAxisRect builds a rectangle fixed at value k on the given axis,
// spanning [a0,a1]x[b0,b1] in the other two (in axis order X,Y,Z with
// Fixed skipped).
func NewAxisRect(axis Axis, k, a0, a1, b0, b1 float64, mat core.Material) *AxisRect {
	return &AxisRect{Fixed: axis, K: k, A0: a0, A1: a1, B0: b0, B1: b1, Material: mat}
}

func (q *AxisRect) normal() core.Vec3 {
	n := core.Vec3{}
	switch q.Fixed {
	case AxisX:
		n = core.NewVec3(1, 0, 0)
	case AxisY:
		n = core.NewVec3(0, 1, 0)
	case AxisZ:
		n = core.NewVec3(0, 0, 1)
	}
	if q.flipNormal {
		n = n.Negate()
	}
	return n
}

// components splits a point into (fixed, a, b) according to q.Fixed.
func (q *AxisRect) components(p core.Vec3) (fixed, a, b float64) {
	switch q.Fixed {
	case AxisX:
		return p.X, p.Y, p.Z
	case AxisY:
		return p.Y, p.X, p.Z
	default:
		return p.Z, p.X, p.Y
	}
}

func (q *AxisRect) pointAt(fixed, a, b float64) core.Point3 {
	switch q.Fixed {
	case AxisX:
		return core.NewVec3(fixed, a, b)
	case AxisY:
		return core.NewVec3(a, fixed, b)
	default:
		return core.NewVec3(a, b, fixed)
	}
}

// Hit intersects the ray with the rectangle's plane, then tests whether
// the intersection falls within [A0,A1]x[B0,B1].
func (q *AxisRect) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	originFixed, originA, originB := q.components(r.Origin)
	dirFixed, dirA, dirB := q.components(r.Direction)

	if math.Abs(dirFixed) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := (q.K - originFixed) / dirFixed
	if t <= tMin || t >= tMax {
		return core.HitRecord{}, false
	}

	a := originA + t*dirA
	b := originB + t*dirB
	if a < q.A0 || a > q.A1 || b < q.B0 || b > q.B1 {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{
		T:        t,
		P:        r.At(t),
		U:        (a - q.A0) / (q.A1 - q.A0),
		V:        (b - q.B0) / (q.B1 - q.B0),
		Material: q.Material,
	}
	rec.SetFaceNormal(r, q.normal())
	return rec, true
}

// BoundingBox returns a box padded by a small epsilon along the fixed
// axis, since a zero-thickness box breaks BVH slab tests.
func (q *AxisRect) BoundingBox(time0, time1 float64) core.AABB {
	const eps = 0.0001
	min := q.pointAt(q.K-eps, q.A0, q.B0)
	max := q.pointAt(q.K+eps, q.A1, q.B1)
	return core.NewAABB(
		core.NewVec3(math.Min(min.X, max.X), math.Min(min.Y, max.Y), math.Min(min.Z, max.Z)),
		core.NewVec3(math.Max(min.X, max.X), math.Max(min.Y, max.Y), math.Max(min.Z, max.Z)),
	)
}

// area returns the rectangle's surface area.
func (q *AxisRect) area() float64 {
	return (q.A1 - q.A0) * (q.B1 - q.B0)
}

// PDFValue converts the solid angle subtended by the rectangle (as seen
// from origin toward direction) into a density, for light sampling.
func (q *AxisRect) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	rec, hit := q.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !hit {
		return 0
	}

	distSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}
	return distSquared / (cosine * q.area())
}

// Random samples a uniformly distributed point on the rectangle and
// returns the direction from origin toward it.
func (q *AxisRect) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	a := sampler.Range(q.A0, q.A1)
	b := sampler.Range(q.B0, q.B1)
	target := q.pointAt(q.K, a, b)
	return target.Subtract(origin)
}

// NewAxisRectXY, NewAxisRectXZ, NewAxisRectYZ are the three Cornell-box
// wall orientations, matching original_source's aarect.rs naming.
func NewAxisRectXY(x0, x1, y0, y1, k float64, mat core.Material) *AxisRect {
	return NewAxisRect(AxisZ, k, x0, x1, y0, y1, mat)
}

func NewAxisRectXZ(x0, x1, z0, z1, k float64, mat core.Material) *AxisRect {
	return NewAxisRect(AxisY, k, x0, x1, z0, z1, mat)
}

func NewAxisRectYZ(y0, y1, z0, z1, k float64, mat core.Material) *AxisRect {
	return NewAxisRect(AxisX, k, y0, y1, z0, z1, mat)
}
