package geometry

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// ConstantMedium is a homogeneous participating medium bounded by an
// arbitrary Hittable surface (typically a Box or Sphere). Rays that
// enter the boundary have a chance of scattering at a random depth
// proportional to the medium's density, per spec.md §4.3's free-flight
// sampling.
type ConstantMedium struct {
	Boundary      core.Hittable
	NegInvDensity float64
	Phase         core.Material
}

// NewConstantMedium builds a medium with the given boundary, density,
// and isotropic phase-function material (typically material.Isotropic).
func NewConstantMedium(boundary core.Hittable, density float64, phase core.Material) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, NegInvDensity: -1 / density, Phase: phase}
}

// Hit finds the ray's entry/exit through the boundary, then samples a
// free-flight distance; if it falls short of the exit, the ray
// scatters inside the medium at that depth.
func (c *ConstantMedium) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	rec1, hit1 := c.Boundary.Hit(r, math.Inf(-1), math.Inf(1))
	if !hit1 {
		return core.HitRecord{}, false
	}

	rec2, hit2 := c.Boundary.Hit(r, rec1.T+0.0001, math.Inf(1))
	if !hit2 {
		return core.HitRecord{}, false
	}

	t1 := rec1.T
	t2 := rec2.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return core.HitRecord{}, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := c.NegInvDensity * math.Log(randomUnit())

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	tHit := t1 + hitDistance/rayLength
	rec := core.HitRecord{
		T:         tHit,
		P:         r.At(tHit),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary, per spec.md
		FrontFace: true,
		Material:  c.Phase,
	}
	return rec, true
}

// BoundingBox delegates to the boundary shape.
func (c *ConstantMedium) BoundingBox(time0, time1 float64) core.AABB {
	return c.Boundary.BoundingBox(time0, time1)
}

// PDFValue and Random do not consult the boundary: media are not sampled
// as explicit lights, so PDFValue is zero and Random returns a uniform
// unit vector.
func (c *ConstantMedium) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return 0
}

func (c *ConstantMedium) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	return sampler.UnitVector()
}

// mediumRNG backs the free-flight distance sample in ConstantMedium.Hit.
// The Hittable interface's hit(ray,tmin,tmax) takes no sampler, so
// there is nowhere to thread a per-worker generator through; a
// mutex-guarded shared source keeps concurrent workers race-free at
// the cost of some contention, matching the reference implementation's
// use of a global RNG for this one call site.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

var mediumRNG = &lockedRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}

func randomUnit() float64 {
	return mediumRNG.Float64()
}
