package material

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/pdf"
)

// Generic is a layered probabilistic blend of dielectric, diffuse, and
// specular response, each driven by a per-pixel texture. It generalizes
// coated-dielectric-over-diffuse and blended-diffuse/specular materials
// into one material that covers both at once.
type Generic struct {
	Diffuse  core.Texture // albedo for the diffuse branch
	Specular core.Texture // attenuation for the specular reflection branch
	Emit     core.Texture // emission texture, front face only
	Rough    core.Texture // probability of the diffuse branch within the non-dielectric path
	Alpha    core.Texture // probability of skipping the dielectric branch entirely
	IOR      core.Texture // index of refraction for the dielectric branch
}

// NewGenericMaterial builds a Generic material from its six driving
// textures.
func NewGenericMaterial(diffuse, specular, emit, rough, alpha, ior core.Texture) *Generic {
	return &Generic{Diffuse: diffuse, Specular: specular, Emit: emit, Rough: rough, Alpha: alpha, IOR: ior}
}

// Scatter samples the three-way blend described in spec.md §4.4:
// 1. with probability 1-alpha, dielectric reflect/refract using IOR;
// 2. otherwise with probability rough, Lambertian diffuse;
// 3. otherwise perfect specular reflection.
func (g *Generic) Scatter(rayIn core.Ray, hit core.HitRecord, sampler *core.Sampler) (core.ScatterRecord, bool) {
	alpha := g.Alpha.Value(hit.U, hit.V, hit.P).X

	if sampler.Float64() >= alpha {
		return g.scatterDielectric(rayIn, hit, sampler)
	}

	rough := g.Rough.Value(hit.U, hit.V, hit.P).X
	if sampler.Float64() < rough {
		return core.ScatterRecord{
			Attenuation: g.Diffuse.Value(hit.U, hit.V, hit.P),
			PDF:         pdf.NewCosine(hit.Normal),
		}, true
	}

	reflected := core.Reflect(rayIn.Direction.Unit(), hit.Normal)
	scattered := core.NewRayAtTime(hit.P, reflected, rayIn.Time)
	return core.ScatterRecord{
		Attenuation: g.Specular.Value(hit.U, hit.V, hit.P),
		IsSpecular:  true,
		SpecularRay: scattered,
	}, true
}

func (g *Generic) scatterDielectric(rayIn core.Ray, hit core.HitRecord, sampler *core.Sampler) (core.ScatterRecord, bool) {
	ior := g.IOR.Value(hit.U, hit.V, hit.P).X
	eta := ior
	if hit.FrontFace {
		eta = 1.0 / ior
	}

	unitDir := rayIn.Direction.Unit()
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	cannotRefract := eta*sinTheta > 1.0

	reflecting := cannotRefract || Schlick(cosTheta, eta) > sampler.Float64()

	var direction core.Vec3
	var attenuation core.Color
	if reflecting {
		direction = core.Reflect(unitDir, hit.Normal)
		attenuation = g.Specular.Value(hit.U, hit.V, hit.P)
	} else {
		direction = core.Refract(unitDir, hit.Normal, eta)
		attenuation = core.NewVec3(1, 1, 1)
	}

	scattered := core.NewRayAtTime(hit.P, direction, rayIn.Time)
	return core.ScatterRecord{
		Attenuation: attenuation,
		IsSpecular:  true,
		SpecularRay: scattered,
	}, true
}

// ScatteringPDF returns the cosine-hemisphere density; exact only for the
// diffuse branch, which is the only branch the integrator ever reweights
// (the dielectric and specular branches are specular and bypass MIS).
func (g *Generic) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Unit())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

// Emitted returns the emission texture on the front face only.
func (g *Generic) Emitted(rayIn core.Ray, hit core.HitRecord) core.Color {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return g.Emit.Value(hit.U, hit.V, hit.P)
}
