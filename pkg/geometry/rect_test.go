package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

func TestAxisRectXY_HitWithinBounds(t *testing.T) {
	rect := NewAxisRectXY(0, 1, 0, 1, -2, testMaterial())
	r := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, -1))

	rec, ok := rect.Hit(r, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-2) > 1e-9 {
		t.Errorf("T = %v, want 2", rec.T)
	}
	if math.Abs(rec.U-0.5) > 1e-9 || math.Abs(rec.V-0.5) > 1e-9 {
		t.Errorf("UV = (%v,%v), want (0.5,0.5)", rec.U, rec.V)
	}
}

func TestAxisRectXY_MissOutsideBounds(t *testing.T) {
	rect := NewAxisRectXY(0, 1, 0, 1, -2, testMaterial())
	r := core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1))
	if _, ok := rect.Hit(r, 0, math.Inf(1)); ok {
		t.Error("expected a miss outside the rectangle's bounds")
	}
}

func TestAxisRectXY_ParallelRayMisses(t *testing.T) {
	rect := NewAxisRectXY(0, 1, 0, 1, -2, testMaterial())
	r := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(1, 0, 0))
	if _, ok := rect.Hit(r, 0, math.Inf(1)); ok {
		t.Error("expected a ray parallel to the plane to miss")
	}
}

func TestAxisRect_PDFValueAndRandomAgree(t *testing.T) {
	rect := NewAxisRectXZ(-1, 1, -1, 1, 5, testMaterial())
	sampler := core.NewSampler(3)
	origin := core.Vec3{}

	for i := 0; i < 20; i++ {
		dir := rect.Random(origin, sampler)
		if got := rect.PDFValue(origin, dir); got <= 0 {
			t.Fatalf("sampled direction %v should hit the rectangle (PDFValue=%v)", dir, got)
		}
	}
}

func TestAxisRectYZ_Orientation(t *testing.T) {
	// The rect's outward normal is +X; a ray traveling in +X hits its back
	// face, so the returned (always ray-opposing) normal flips to -X.
	rect := NewAxisRectYZ(0, 1, 0, 1, 3, testMaterial())
	r := core.NewRay(core.NewVec3(0, 0.5, 0.5), core.NewVec3(1, 0, 0))
	rec, ok := rect.Hit(r, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.FrontFace {
		t.Error("expected a back-face hit")
	}
	want := core.NewVec3(-1, 0, 0)
	if rec.Normal.Subtract(want).Length() > 1e-9 {
		t.Errorf("Normal = %v, want %v", rec.Normal, want)
	}
}
