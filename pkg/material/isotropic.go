package material

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/pdf"
)

// Isotropic scatters uniformly over the unit sphere; used inside
// ConstantMedium for participating-media scattering.
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic builds an isotropic phase-function material.
func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter returns the albedo as attenuation and a uniform-sphere PDF, so
// the integrator's light-sampling MIS still applies inside media.
func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, sampler *core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.P),
		PDF:         pdf.NewSphere(),
	}, true
}

// ScatteringPDF is the uniform sphere density 1/(4*pi), matching the PDF
// returned from Scatter.
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Emitted is zero; Isotropic does not emit.
func (i *Isotropic) Emitted(rayIn core.Ray, hit core.HitRecord) core.Color {
	return core.Vec3{}
}
