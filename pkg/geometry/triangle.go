package geometry

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Triangle is defined by three vertices with optional per-vertex UVs and
// normals (for smooth shading) and an optional tangent-space normal map.
// The barycentric precompute (pb, pc) follows spec.md §4.3: for a hit
// point P = A + u*AB + v*AC, u = AP.pc and v = AP.pb.
type Triangle struct {
	A, B, C         core.Point3
	UVa, UVb, UVc   [2]float64
	Na, Nb, Nc      core.Vec3
	SmoothShading   bool
	Material        core.Material
	NormalMap       core.Texture
	faceNormal      core.Vec3
	pb, pc          core.Vec3
	ab, ac, tangent core.Vec3
}

// NewTriangle builds a flat-shaded triangle with default UVs
// (0,0)-(1,0)-(0,1), covering the lower-left half of the [0,1]^2 square.
func NewTriangle(a, b, c core.Point3, mat core.Material) *Triangle {
	t := &Triangle{
		A: a, B: b, C: c,
		UVa: [2]float64{0, 0}, UVb: [2]float64{1, 0}, UVc: [2]float64{0, 1},
		Material: mat,
	}
	t.precompute()
	return t
}

// NewSmoothTriangle builds a triangle with per-vertex UVs and normals,
// interpolated across the face for smooth shading.
func NewSmoothTriangle(a, b, c core.Point3, uva, uvb, uvc [2]float64, na, nb, nc core.Vec3, mat core.Material) *Triangle {
	t := &Triangle{
		A: a, B: b, C: c,
		UVa: uva, UVb: uvb, UVc: uvc,
		Na: na, Nb: nb, Nc: nc,
		SmoothShading: true,
		Material:      mat,
	}
	t.precompute()
	return t
}

func (t *Triangle) precompute() {
	t.ab = t.B.Subtract(t.A)
	t.ac = t.C.Subtract(t.A)
	t.faceNormal = t.ab.Cross(t.ac).Unit()
	t.tangent = t.ab.Unit()

	det := t.ab.Cross(t.ac).Dot(t.faceNormal)
	t.pb = t.faceNormal.Cross(t.ab).Multiply(1.0 / det)
	t.pc = t.ac.Cross(t.faceNormal).Multiply(1.0 / det)
}

// Hit follows spec.md §4.3's barycentric test: t from the plane
// intersection, then u,v from the precomputed pb/pc vectors, accepting
// iff u>=0, v>=0, u+v<=1.
func (t *Triangle) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denom := r.Direction.Dot(t.faceNormal)
	if math.Abs(denom) < 1e-10 {
		return core.HitRecord{}, false
	}

	tHit := t.A.Subtract(r.Origin).Dot(t.faceNormal) / denom
	if tHit <= tMin || tHit >= tMax {
		return core.HitRecord{}, false
	}

	p := r.At(tHit)
	ap := p.Subtract(t.A)
	u := ap.Dot(t.pc)
	v := ap.Dot(t.pb)

	if u < 0 || v < 0 || u+v > 1 {
		return core.HitRecord{}, false
	}

	uv := [2]float64{
		t.UVa[0] + u*(t.UVb[0]-t.UVa[0]) + v*(t.UVc[0]-t.UVa[0]),
		t.UVa[1] + u*(t.UVb[1]-t.UVa[1]) + v*(t.UVc[1]-t.UVa[1]),
	}

	normal := t.faceNormal
	if t.SmoothShading {
		w := 1 - u - v
		normal = t.Na.Multiply(w).Add(t.Nb.Multiply(u)).Add(t.Nc.Multiply(v)).Unit()
	}
	if t.NormalMap != nil {
		normal = t.perturbNormal(normal, uv[0], uv[1], p)
	}

	rec := core.HitRecord{T: tHit, P: p, U: uv[0], V: uv[1], Material: t.Material}
	rec.SetFaceNormal(r, normal)
	return rec, true
}

// perturbNormal builds a TBN frame from the precomputed tangent and the
// interpolated shading normal, samples the map in [0,1]^3, remaps to
// [-1,1], and rotates the result into world space.
func (t *Triangle) perturbNormal(shadingNormal core.Vec3, u, v float64, p core.Point3) core.Vec3 {
	n := shadingNormal
	tangent := t.tangent.Subtract(n.Multiply(n.Dot(t.tangent))).Unit()
	bitangent := n.Cross(tangent)

	sample := t.NormalMap.Value(u, v, p)
	mapped := core.NewVec3(sample.X*2-1, sample.Y*2-1, sample.Z*2-1)

	world := tangent.Multiply(mapped.X).Add(bitangent.Multiply(mapped.Y)).Add(n.Multiply(mapped.Z))
	return world.Unit()
}

// BoundingBox returns the box spanning all three vertices, padded so a
// triangle lying exactly in an axis plane still has finite thickness.
func (t *Triangle) BoundingBox(time0, time1 float64) core.AABB {
	box := core.NewAABBFromPoints(t.A, t.B, t.C)
	return box.Pad(0.0001)
}

// PDFValue and Random treat the triangle as a uniformly sampled area
// light via its two edge vectors, analogous to AxisRect.
func (t *Triangle) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	rec, hit := t.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !hit {
		return 0
	}
	area := 0.5 * t.ab.Cross(t.ac).Length()
	distSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}
	return distSquared / (cosine * area)
}

func (t *Triangle) Random(origin core.Point3, sampler *core.Sampler) core.Vec3 {
	u := sampler.Float64()
	v := sampler.Float64()
	if u+v > 1 {
		u = 1 - u
		v = 1 - v
	}
	target := t.A.Add(t.ab.Multiply(u)).Add(t.ac.Multiply(v))
	return target.Subtract(origin)
}
