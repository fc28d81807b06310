package geometry

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Translate offsets an inner Hittable by a fixed vector.
type Translate struct {
	Inner  core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps inner, shifting it by offset.
func NewTranslate(inner core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit moves the ray into the inner shape's local space, then shifts the
// resulting hit point back into world space.
func (t *Translate) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	moved := core.NewRayAtTime(r.Origin.Subtract(t.Offset), r.Direction, r.Time)
	rec, ok := t.Inner.Hit(moved, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}
	rec.P = rec.P.Add(t.Offset)
	return rec, true
}

// BoundingBox shifts the inner box by the same offset.
func (t *Translate) BoundingBox(time0, time1 float64) core.AABB {
	box := t.Inner.BoundingBox(time0, time1)
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}

func (t *Translate) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return t.Inner.PDFValue(origin.Subtract(t.Offset), direction)
}

func (t *Translate) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	return t.Inner.Random(origin.Subtract(t.Offset), sampler)
}

// rotateAxis names which pair of coordinates a Rotate wrapper spins.
type rotateAxis int

const (
	rotateX rotateAxis = iota
	rotateY
	rotateZ
)

// Rotate spins an inner Hittable by a fixed angle about one coordinate
// axis. RotateX, RotateY, RotateZ are constructors for the three cases;
// the hit/bounding-box math is otherwise identical across axes, just
// applied to a different pair of components.
type Rotate struct {
	Inner              core.Hittable
	axis               rotateAxis
	sinTheta, cosTheta float64
	bbox               core.AABB
}

func newRotate(inner core.Hittable, axis rotateAxis, angleDegrees float64) *Rotate {
	radians := angleDegrees * math.Pi / 180
	r := &Rotate{Inner: inner, axis: axis, sinTheta: math.Sin(radians), cosTheta: math.Cos(radians)}
	r.bbox = r.computeRotatedBox()
	return r
}

// NewRotateX rotates inner by angleDegrees about the X axis.
func NewRotateX(inner core.Hittable, angleDegrees float64) *Rotate {
	return newRotate(inner, rotateX, angleDegrees)
}

// NewRotateY rotates inner by angleDegrees about the Y axis.
func NewRotateY(inner core.Hittable, angleDegrees float64) *Rotate {
	return newRotate(inner, rotateY, angleDegrees)
}

// NewRotateZ rotates inner by angleDegrees about the Z axis.
func NewRotateZ(inner core.Hittable, angleDegrees float64) *Rotate {
	return newRotate(inner, rotateZ, angleDegrees)
}

// rotateForward rotates v by +theta in the plane this wrapper spins.
func (r *Rotate) rotateForward(v core.Vec3) core.Vec3 {
	switch r.axis {
	case rotateX:
		return core.NewVec3(v.X, r.cosTheta*v.Y-r.sinTheta*v.Z, r.sinTheta*v.Y+r.cosTheta*v.Z)
	case rotateZ:
		return core.NewVec3(r.cosTheta*v.X-r.sinTheta*v.Y, r.sinTheta*v.X+r.cosTheta*v.Y, v.Z)
	default: // rotateY
		return core.NewVec3(r.cosTheta*v.X+r.sinTheta*v.Z, v.Y, -r.sinTheta*v.X+r.cosTheta*v.Z)
	}
}

// rotateBackward rotates v by -theta, undoing rotateForward.
func (r *Rotate) rotateBackward(v core.Vec3) core.Vec3 {
	switch r.axis {
	case rotateX:
		return core.NewVec3(v.X, r.cosTheta*v.Y+r.sinTheta*v.Z, -r.sinTheta*v.Y+r.cosTheta*v.Z)
	case rotateZ:
		return core.NewVec3(r.cosTheta*v.X+r.sinTheta*v.Y, -r.sinTheta*v.X+r.cosTheta*v.Y, v.Z)
	default: // rotateY
		return core.NewVec3(r.cosTheta*v.X-r.sinTheta*v.Z, v.Y, r.sinTheta*v.X+r.cosTheta*v.Z)
	}
}

// Hit rotates the ray by -theta into the inner shape's local space,
// then rotates the hit point and the outward normal by +theta back to
// world space, re-deriving front_face against the world-space ray.
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	origin := r.rotateBackward(ray.Origin)
	direction := r.rotateBackward(ray.Direction)
	rotated := core.NewRayAtTime(origin, direction, ray.Time)

	rec, ok := r.Inner.Hit(rotated, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.P = r.rotateForward(rec.P)
	outwardNormal := r.rotateForward(rec.Normal)
	if !rec.FrontFace {
		outwardNormal = outwardNormal.Negate()
	}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// computeRotatedBox unions the eight rotated corners of the inner
// shape's bounding box over the full motion interval.
func (r *Rotate) computeRotatedBox() core.AABB {
	inner := r.Inner.BoundingBox(0, 1)

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*inner.Max.X + float64(1-i)*inner.Min.X
				y := float64(j)*inner.Max.Y + float64(1-j)*inner.Min.Y
				z := float64(k)*inner.Max.Z + float64(1-k)*inner.Min.Z

				tester := r.rotateForward(core.NewVec3(x, y, z))

				min = core.NewVec3(math.Min(min.X, tester.X), math.Min(min.Y, tester.Y), math.Min(min.Z, tester.Z))
				max = core.NewVec3(math.Max(max.X, tester.X), math.Max(max.Y, tester.Y), math.Max(max.Z, tester.Z))
			}
		}
	}

	return core.NewAABB(min, max)
}

// BoundingBox returns the precomputed rotated box.
func (r *Rotate) BoundingBox(time0, time1 float64) core.AABB {
	return r.bbox
}

func (r *Rotate) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return r.Inner.PDFValue(r.rotateBackward(origin), r.rotateBackward(direction))
}

func (r *Rotate) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	localDir := r.Inner.Random(r.rotateBackward(origin), sampler)
	return r.rotateForward(localDir)
}

// FlipFace forwards Hit to an inner Hittable but inverts the resulting
// front-face flag and normal; used to make a light-emitting rectangle
// visible from the opposite side it would otherwise face.
type FlipFace struct {
	Inner core.Hittable
}

// NewFlipFace wraps inner, inverting its hit-face orientation.
func NewFlipFace(inner core.Hittable) *FlipFace {
	return &FlipFace{Inner: inner}
}

func (f *FlipFace) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	rec, ok := f.Inner.Hit(r, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}
	rec.FrontFace = !rec.FrontFace
	rec.Normal = rec.Normal.Negate()
	return rec, true
}

func (f *FlipFace) BoundingBox(time0, time1 float64) core.AABB {
	return f.Inner.BoundingBox(time0, time1)
}

func (f *FlipFace) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return f.Inner.PDFValue(origin, direction)
}

func (f *FlipFace) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	return f.Inner.Random(origin, sampler)
}
