// Package material implements the BSDF/emission variants from spec.md
// §4.4: Lambertian, Metal, Dielectric, DiffuseLight, Isotropic, and the
// probabilistic Generic blend.
package material

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/pdf"
)

// Lambertian is a perfectly diffuse material: attenuation is the albedo
// texture, scattering follows a cosine-weighted PDF about the normal.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian builds a Lambertian material from a texture.
func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter returns the albedo as attenuation and a cosine PDF about the
// surface normal; the integrator mixes this against light sampling.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler *core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.P),
		PDF:         pdf.NewCosine(hit.Normal),
	}, true
}

// ScatteringPDF returns max(0,cos(theta))/pi for the given scattered
// direction, the material's own density used to reweight samples drawn
// from a different (e.g. light) PDF.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Unit())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

// Emitted is zero; Lambertian surfaces do not emit light.
func (l *Lambertian) Emitted(rayIn core.Ray, hit core.HitRecord) core.Color {
	return core.Vec3{}
}
