package material

import "github.com/df07/go-progressive-raytracer/pkg/core"

// Metal is a specular reflector with an optional fuzz disk perturbation.
type Metal struct {
	Albedo core.Texture
	Fuzz   float64 // 0 = perfect mirror, up to 1 = very fuzzy
}

// NewMetal builds a metal material, clamping fuzz into [0,1].
func NewMetal(albedo core.Texture, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming ray about the normal and perturbs it by a
// random point in the unit sphere scaled by Fuzz. A reflection with
// dot(R,n)<=0 is reported as absorbed: the record is filled in but ok is
// false.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler *core.Sampler) (core.ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction.Unit(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(sampler.InUnitSphere().Multiply(m.Fuzz))
	}

	scattered := core.NewRayAtTime(hit.P, reflected, rayIn.Time)
	ok := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterRecord{
		Attenuation: m.Albedo.Value(hit.U, hit.V, hit.P),
		IsSpecular:  true,
		SpecularRay: scattered,
	}, ok
}

// ScatteringPDF is zero: Metal's scattering is a delta function, never
// reweighted against another PDF.
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted is zero; Metal does not emit.
func (m *Metal) Emitted(rayIn core.Ray, hit core.HitRecord) core.Color {
	return core.Vec3{}
}
