package material

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Dielectric is a transparent material (glass, water) that reflects or
// refracts according to Snell's law with Schlick reflectance.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric builds a dielectric material with the given index of
// refraction (e.g. 1.5 for glass). A negative radius on the sphere this
// material wraps produces a hollow-glass look per spec.md §4.3.
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter reflects or refracts the incoming ray; attenuation is always
// white since clear glass does not absorb color.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler *core.Sampler) (core.ScatterRecord, bool) {
	eta := d.RefractiveIndex
	if hit.FrontFace {
		eta = 1.0 / d.RefractiveIndex
	}

	unitDir := rayIn.Direction.Unit()
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	cannotRefract := eta*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Schlick(cosTheta, eta) > sampler.Float64() {
		direction = core.Reflect(unitDir, hit.Normal)
	} else {
		direction = core.Refract(unitDir, hit.Normal, eta)
	}

	scattered := core.NewRayAtTime(hit.P, direction, rayIn.Time)

	return core.ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		IsSpecular:  true,
		SpecularRay: scattered,
	}, true
}

// ScatteringPDF is zero: Dielectric scattering is a delta function.
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted is zero; Dielectric does not emit.
func (d *Dielectric) Emitted(rayIn core.Ray, hit core.HitRecord) core.Color {
	return core.Vec3{}
}

// Schlick approximates Fresnel reflectance: r0+(1-r0)(1-cosine)^5 with
// r0=((1-eta)/(1+eta))^2.
func Schlick(cosine, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
