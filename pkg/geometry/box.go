package geometry

import "github.com/df07/go-progressive-raytracer/pkg/core"

// Box is an axis-aligned rectangular prism composed of six AxisRect
// faces.
type Box struct {
	Min, Max core.Point3
	Material core.Material
	sides    *HittableList
}

// NewBox builds a box spanning [min,max] out of six AxisRect faces.
func NewBox(min, max core.Point3, mat core.Material) *Box {
	sides := NewHittableList()

	sides.Add(NewAxisRectXY(min.X, max.X, min.Y, max.Y, max.Z, mat))
	sides.Add(NewAxisRectXY(min.X, max.X, min.Y, max.Y, min.Z, mat))

	sides.Add(NewAxisRectXZ(min.X, max.X, min.Z, max.Z, max.Y, mat))
	sides.Add(NewAxisRectXZ(min.X, max.X, min.Z, max.Z, min.Y, mat))

	sides.Add(NewAxisRectYZ(min.Y, max.Y, min.Z, max.Z, max.X, mat))
	sides.Add(NewAxisRectYZ(min.Y, max.Y, min.Z, max.Z, min.X, mat))

	return &Box{Min: min, Max: max, Material: mat, sides: sides}
}

// Hit delegates to the six-face list, which already tracks the closest
// intersection.
func (b *Box) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return b.sides.Hit(r, tMin, tMax)
}

// BoundingBox returns the box's own extent directly.
func (b *Box) BoundingBox(time0, time1 float64) core.AABB {
	return core.NewAABB(b.Min, b.Max)
}

// PDFValue averages the per-face densities; boxes are rarely used as
// lights but the contract must still be satisfiable.
func (b *Box) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return b.sides.PDFValue(origin, direction)
}

// Random delegates to a uniformly chosen face.
func (b *Box) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	return b.sides.Random(origin, sampler)
}
