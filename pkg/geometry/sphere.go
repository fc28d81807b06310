// Package geometry implements the Hittable primitives from spec.md §4.2/
// §4.3: spheres, axis-aligned rectangles, boxes, triangles, a
// participating-medium volume, affine transform wrappers, and the
// acceleration structures (list, BVH) that combine them.
package geometry

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Sphere is a stationary sphere. A negative Radius flips the outward
// normal, producing a hollow-glass shell when paired with a Dielectric
// material.
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material core.Material
}

// NewSphere builds a sphere.
func NewSphere(center core.Point3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves the ray-sphere quadratic and returns the closer root inside
// [tMin,tMax], preferring it over the farther root.
func (s *Sphere) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return hitSphereAt(r, s.Center, s.Radius, s.Material, tMin, tMax)
}

// BoundingBox returns a world-space box padded by |Radius| in each axis.
func (s *Sphere) BoundingBox(time0, time1 float64) core.AABB {
	rad := core.NewVec3(math.Abs(s.Radius), math.Abs(s.Radius), math.Abs(s.Radius))
	return core.NewAABB(s.Center.Subtract(rad), s.Center.Add(rad))
}

// PDFValue returns the solid-angle density of sampling this sphere as a
// light from origin, used by light-sampling MIS.
func (s *Sphere) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return spherePDFValue(origin, direction, s.Center, s.Radius, s)
}

// Random samples a direction from origin toward the sphere's visible
// solid angle via cone sampling.
func (s *Sphere) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	return sphereRandomDirection(origin, s.Center, s.Radius, sampler)
}

// MovingSphere linearly interpolates its center between Center0 at
// Time0 and Center1 at Time1, for motion blur.
type MovingSphere struct {
	Center0, Center1 core.Point3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere builds a sphere that moves linearly over [time0,time1].
func NewMovingSphere(center0, center1 core.Point3, time0, time1, radius float64, mat core.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

// centerAt interpolates the sphere's center at the given ray time.
func (m *MovingSphere) centerAt(time float64) core.Point3 {
	if m.Time1 == m.Time0 {
		return m.Center0
	}
	frac := (time - m.Time0) / (m.Time1 - m.Time0)
	return m.Center0.Add(m.Center1.Subtract(m.Center0).Multiply(frac))
}

// Hit resolves the sphere's position at r.Time before intersecting.
func (m *MovingSphere) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return hitSphereAt(r, m.centerAt(r.Time), m.Radius, m.Material, tMin, tMax)
}

// BoundingBox unions the bounding boxes at both endpoints of [time0,time1].
func (m *MovingSphere) BoundingBox(time0, time1 float64) core.AABB {
	rad := core.NewVec3(math.Abs(m.Radius), math.Abs(m.Radius), math.Abs(m.Radius))
	c0 := m.centerAt(time0)
	c1 := m.centerAt(time1)
	box0 := core.NewAABB(c0.Subtract(rad), c0.Add(rad))
	box1 := core.NewAABB(c1.Subtract(rad), c1.Add(rad))
	return box0.Union(box1)
}

// PDFValue treats the sphere at time0 as a stationary light for sampling
// purposes; motion-blurred area lights are out of scope for exact MIS.
func (m *MovingSphere) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return spherePDFValue(origin, direction, m.centerAt(m.Time0), m.Radius, m)
}

// Random samples toward the sphere's position at Time0.
func (m *MovingSphere) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	return sphereRandomDirection(origin, m.centerAt(m.Time0), m.Radius, sampler)
}

func hitSphereAt(r core.Ray, center core.Point3, radius float64, mat core.Material, tMin, tMax float64) (core.HitRecord, bool) {
	oc := r.Origin.Subtract(center)
	a := r.Direction.Dot(r.Direction)
	halfB := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return core.HitRecord{}, false
		}
	}

	point := r.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi

	rec := core.HitRecord{
		T:        root,
		P:        point,
		U:        phi / (2.0 * math.Pi),
		V:        theta / math.Pi,
		Material: mat,
	}
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}

// spherePDFValue returns the solid-angle density 1/(2*pi*(1-cosThetaMax))
// of the cone subtended by a sphere of the given radius as seen from
// origin, zero if direction misses the sphere entirely.
func spherePDFValue(origin core.Point3, direction core.Vec3, center core.Point3, radius float64, self core.Hittable) float64 {
	if _, hit := self.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); !hit {
		return 0
	}

	distSquared := center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1 - radius*radius/distSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// sphereRandomDirection samples a direction from origin uniformly over
// the cone of directions that intersect the sphere.
func sphereRandomDirection(origin, center core.Point3, radius float64, sampler *core.Sampler) core.Vec3 {
	direction := center.Subtract(origin)
	distSquared := direction.LengthSquared()
	uvw := core.NewONB(direction)
	cosThetaMax := math.Sqrt(1 - radius*radius/distSquared)
	return uvw.Transform(sampler.ConeDirection(cosThetaMax))
}
