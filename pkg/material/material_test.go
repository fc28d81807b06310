package material

import (
	"math"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/texture"
)

func unitHit() core.HitRecord {
	return core.HitRecord{
		T: 1, P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0),
		U: 0.5, V: 0.5, FrontFace: true,
	}
}

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.5, 0.5)
	l := NewLambertian(texture.NewSolid(albedo))
	sampler := core.NewSampler(1)
	hit := unitHit()

	rec, ok := l.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), hit, sampler)
	if !ok {
		t.Fatal("expected Lambertian to scatter")
	}
	if rec.IsSpecular {
		t.Error("Lambertian scattering should not be specular")
	}
	if rec.Attenuation != albedo {
		t.Errorf("Attenuation = %v, want %v", rec.Attenuation, albedo)
	}

	scattered := core.NewRay(hit.P, rec.PDF.Generate(sampler))
	pdfVal := l.ScatteringPDF(core.Ray{}, hit, scattered)
	if pdfVal <= 0 {
		t.Errorf("ScatteringPDF = %v, want > 0 for an above-hemisphere direction", pdfVal)
	}
}

func TestMetal_SpecularReflection(t *testing.T) {
	m := NewMetal(texture.NewSolid(core.NewVec3(0.8, 0.8, 0.8)), 0)
	hit := unitHit()
	incoming := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	rec, ok := m.Scatter(incoming, hit, core.NewSampler(2))
	if !ok {
		t.Fatal("expected reflection above the surface")
	}
	if !rec.IsSpecular {
		t.Error("Metal scattering should be specular")
	}
	want := core.NewVec3(0, 1, 0)
	if rec.SpecularRay.Direction != want {
		t.Errorf("reflected direction = %v, want %v", rec.SpecularRay.Direction, want)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	d := NewDielectric(1.5)
	hit := core.HitRecord{P: core.Vec3{}, Normal: core.NewVec3(0, 1, 0), FrontFace: false}
	// A grazing ray exiting glass at a steep angle must totally internally
	// reflect rather than refract, landing back in the normal's hemisphere.
	incoming := core.NewRay(core.Vec3{}, core.NewVec3(1, -0.05, 0))

	rec, ok := d.Scatter(incoming, hit, core.NewSampler(3))
	if !ok {
		t.Fatal("Dielectric.Scatter should always succeed")
	}
	if rec.SpecularRay.Direction.Dot(hit.Normal) <= 0 {
		t.Errorf("expected a reflected (not refracted) direction, got %v", rec.SpecularRay.Direction)
	}
}

func TestSchlick_NormalIncidenceMatchesR0(t *testing.T) {
	eta := 1.0 / 1.5
	r0 := math.Pow((1-eta)/(1+eta), 2)
	got := Schlick(1.0, eta)
	if math.Abs(got-r0) > 1e-9 {
		t.Errorf("Schlick(cos=1) = %v, want r0=%v", got, r0)
	}
}

func TestDiffuseLight_EmitsFrontFaceOnly(t *testing.T) {
	emit := core.NewVec3(4, 4, 4)
	l := NewDiffuseLight(texture.NewSolid(emit))

	front := unitHit()
	if got := l.Emitted(core.Ray{}, front); got != emit {
		t.Errorf("front-face Emitted = %v, want %v", got, emit)
	}

	back := unitHit()
	back.FrontFace = false
	if got := l.Emitted(core.Ray{}, back); got != (core.Vec3{}) {
		t.Errorf("back-face Emitted = %v, want zero", got)
	}

	if _, ok := l.Scatter(core.Ray{}, front, core.NewSampler(1)); ok {
		t.Error("DiffuseLight must never scatter")
	}
}

func TestIsotropic_UniformPDF(t *testing.T) {
	iso := NewIsotropic(texture.NewSolid(core.NewVec3(1, 1, 1)))
	hit := unitHit()
	rec, ok := iso.Scatter(core.Ray{}, hit, core.NewSampler(5))
	if !ok {
		t.Fatal("expected Isotropic to scatter")
	}
	want := 1.0 / (4.0 * math.Pi)
	if got := rec.PDF.Value(core.NewVec3(1, 0, 0)); math.Abs(got-want) > 1e-12 {
		t.Errorf("PDF.Value = %v, want %v", got, want)
	}
}
