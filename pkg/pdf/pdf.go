// Package pdf implements the probability-density-function abstraction
// used to importance-sample scattered directions against the material's
// own density and against explicit light sources.
package pdf

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Cosine is a cosine-weighted hemisphere distribution about a normal.
type Cosine struct {
	uvw core.ONB
}

// NewCosine builds a cosine PDF about the given normal.
func NewCosine(normal core.Vec3) *Cosine {
	return &Cosine{uvw: core.NewONB(normal)}
}

// Value returns cos(theta)/pi for the angle between direction and the
// basis normal, clamped to zero below the hemisphere.
func (c *Cosine) Value(direction core.Vec3) float64 {
	cosine := direction.Unit().Dot(c.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate samples a cosine-weighted direction and rotates it into world
// space via the stored basis.
func (c *Cosine) Generate(sampler *core.Sampler) core.Vec3 {
	return c.uvw.Transform(sampler.CosineDirection())
}

// Sphere is the uniform density over the entire unit sphere, 1/(4*pi)
// everywhere. Used by Isotropic scattering inside a participating medium,
// where there is no surface normal to weight against.
type Sphere struct{}

// NewSphere builds a uniform-sphere PDF.
func NewSphere() *Sphere { return &Sphere{} }

// Value is the constant 1/(4*pi).
func (s *Sphere) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate samples a uniformly distributed direction.
func (s *Sphere) Generate(sampler *core.Sampler) core.Vec3 {
	return sampler.UnitVector()
}

// Hittable samples directions toward a chosen object (typically a light),
// delegating to its Hittable.PDFValue/Random.
type Hittable struct {
	origin core.Point3
	target core.Hittable
}

// NewHittable builds a PDF that samples target as seen from origin.
func NewHittable(target core.Hittable, origin core.Point3) *Hittable {
	return &Hittable{origin: origin, target: target}
}

// Value delegates to the target object's solid-angle density.
func (h *Hittable) Value(direction core.Vec3) float64 {
	return h.target.PDFValue(h.origin, direction)
}

// Generate delegates to the target object's direction sampler.
func (h *Hittable) Generate(sampler *core.Sampler) core.Vec3 {
	return h.target.Random(h.origin, sampler)
}

// Mixture picks P0 with probability W0 and P1 otherwise; its density is
// the convex combination of the two.
type Mixture struct {
	P0, P1 core.PDF
	W0     float64
}

// NewMixture builds a mixture PDF. w0 is the probability of sampling p0;
// spec.md treats it as a configurable scalar in [0,1] (the reference
// implementation uses literal 0.5/0.8 in different call sites).
func NewMixture(p0, p1 core.PDF, w0 float64) *Mixture {
	return &Mixture{P0: p0, P1: p1, W0: w0}
}

// Value returns w0*p0.Value(d) + (1-w0)*p1.Value(d) exactly.
func (m *Mixture) Value(direction core.Vec3) float64 {
	return m.W0*m.P0.Value(direction) + (1-m.W0)*m.P1.Value(direction)
}

// Generate flips a W0-weighted coin to choose which component samples.
func (m *Mixture) Generate(sampler *core.Sampler) core.Vec3 {
	if sampler.Float64() < m.W0 {
		return m.P0.Generate(sampler)
	}
	return m.P1.Generate(sampler)
}
