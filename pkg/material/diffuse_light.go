package material

import "github.com/df07/go-progressive-raytracer/pkg/core"

// DiffuseLight emits on its front face only and never scatters.
type DiffuseLight struct {
	Emit core.Texture
}

// NewDiffuseLight builds a one-sided area light from an emission texture.
func NewDiffuseLight(emit core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always fails: lights absorb, they do not scatter.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler *core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is zero; never called since Scatter never succeeds.
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission texture on the front face, zero on the
// back face.
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit core.HitRecord) core.Color {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Value(hit.U, hit.V, hit.P)
}
