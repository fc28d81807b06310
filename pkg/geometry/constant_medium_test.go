package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/texture"
)

func TestConstantMedium_MissesOutsideBoundary(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 1, testMaterial())
	phase := material.NewIsotropic(texture.NewSolid(core.NewVec3(1, 1, 1)))
	medium := NewConstantMedium(boundary, 1.0, phase)

	r := core.NewRay(core.NewVec3(10, 10, 10), core.NewVec3(1, 0, 0))
	if _, ok := medium.Hit(r, 0, math.Inf(1)); ok {
		t.Error("expected a miss when the ray never enters the boundary")
	}
}

func TestConstantMedium_DenseFogAlwaysScatters(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 10, testMaterial())
	phase := material.NewIsotropic(texture.NewSolid(core.NewVec3(1, 1, 1)))
	// An extremely high density means the expected free-flight distance is
	// far shorter than the boundary's diameter, so the ray should almost
	// certainly scatter inside rather than pass through untouched.
	medium := NewConstantMedium(boundary, 1e6, phase)

	r := core.NewRay(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, 1))
	rec, ok := medium.Hit(r, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected the dense medium to produce a scattering event")
	}
	if rec.Material != phase {
		t.Error("expected the scattering event's material to be the phase function")
	}
}

func TestConstantMedium_BoundingBoxMatchesBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(1, 2, 3), 4, testMaterial())
	phase := material.NewIsotropic(texture.NewSolid(core.NewVec3(1, 1, 1)))
	medium := NewConstantMedium(boundary, 1.0, phase)

	got := medium.BoundingBox(0, 1)
	want := boundary.BoundingBox(0, 1)
	if got.Min != want.Min || got.Max != want.Max {
		t.Errorf("BoundingBox = %+v, want %+v", got, want)
	}
}
