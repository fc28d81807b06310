package core

// HitRecord carries everything a successful ray intersection produced.
// Normal is always unit length and points against the incident ray; U,V
// are surface coordinates in [0,1]^2.
type HitRecord struct {
	T         float64
	P         Point3
	Normal    Vec3
	U, V      float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal against the incoming ray and records which
// face was hit. outwardNormal must already be unit length.
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is the polymorphic geometry capability set: any ray-traceable
// object, transform wrapper, or acceleration node implements it.
type Hittable interface {
	// Hit tests the ray against [tMin,tMax] and returns the nearest valid
	// intersection.
	Hit(r Ray, tMin, tMax float64) (HitRecord, bool)

	// BoundingBox returns an AABB bounding the object across [time0,time1].
	BoundingBox(time0, time1 float64) AABB

	// PDFValue returns the probability density, over solid angle as seen
	// from origin, of sampling this object in direction dir. Zero for
	// objects that are never explicitly sampled as lights.
	PDFValue(origin Point3, dir Vec3) float64

	// Random samples a direction from origin toward this object. Only
	// meaningful when PDFValue can be nonzero.
	Random(origin Point3, sampler *Sampler) Vec3
}

// ScatterRecord is what Material.Scatter returns: either a deterministic
// specular ray, or attenuation plus a PDF over directions to importance
// sample.
type ScatterRecord struct {
	Attenuation Color
	IsSpecular  bool
	SpecularRay Ray
	PDF         PDF
}

// Material is the BSDF + emission capability set.
type Material interface {
	// Scatter produces a scattering event for the incoming ray at hit, or
	// ok=false if the material absorbs (e.g. pure light, back of a
	// one-sided emitter).
	Scatter(rayIn Ray, hit HitRecord, sampler *Sampler) (ScatterRecord, bool)

	// ScatteringPDF is the material's own density for the given scattered
	// direction; used to reweight samples drawn from a different PDF
	// (e.g. light sampling) during MIS.
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64

	// Emitted returns radiance emitted toward -rayIn.Direction. Zero for
	// non-emitters.
	Emitted(rayIn Ray, hit HitRecord) Color
}

// Texture maps surface coordinates and a point to a color. Pure and
// thread-safe.
type Texture interface {
	Value(u, v float64, p Point3) Color
}

// PDF is a probability density over directions on the unit sphere.
type PDF interface {
	// Value returns the density for the given (not necessarily unit)
	// direction.
	Value(direction Vec3) float64

	// Generate samples a direction from this density.
	Generate(sampler *Sampler) Vec3
}
