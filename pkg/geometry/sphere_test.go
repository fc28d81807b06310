package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/texture"
)

func testMaterial() core.Material {
	return material.NewLambertian(texture.NewSolid(core.NewVec3(0.5, 0.5, 0.5)))
}

func TestSphere_HitFrontFace(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial())
	r := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	rec, ok := s.Hit(r, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-0.5) > 1e-9 {
		t.Errorf("T = %v, want 0.5", rec.T)
	}
	if !rec.FrontFace {
		t.Error("expected front-face hit")
	}
	want := core.NewVec3(0, 0, 1)
	if rec.Normal.Subtract(want).Length() > 1e-9 {
		t.Errorf("Normal = %v, want %v", rec.Normal, want)
	}
}

func TestSphere_Miss(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial())
	r := core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0))
	if _, ok := s.Hit(r, 0, math.Inf(1)); ok {
		t.Error("expected no hit")
	}
}

func TestSphere_NegativeRadiusFlipsNormal(t *testing.T) {
	hollow := NewSphere(core.NewVec3(0, 0, -1), -0.5, testMaterial())
	solid := NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial())
	r := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	recHollow, _ := hollow.Hit(r, 0, math.Inf(1))
	recSolid, _ := solid.Hit(r, 0, math.Inf(1))

	if recHollow.Normal.Add(recSolid.Normal).Length() > 1e-9 {
		t.Errorf("hollow normal %v should be the negation of solid normal %v", recHollow.Normal, recSolid.Normal)
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	s := NewSphere(core.NewVec3(1, 2, 3), 2, testMaterial())
	box := s.BoundingBox(0, 1)
	want := core.NewAABB(core.NewVec3(-1, 0, 1), core.NewVec3(3, 4, 5))
	if box.Min != want.Min || box.Max != want.Max {
		t.Errorf("BoundingBox = %+v, want %+v", box, want)
	}
}

func TestMovingSphere_InterpolatesCenter(t *testing.T) {
	m := NewMovingSphere(core.NewVec3(0, 0, -1), core.NewVec3(0, 2, -1), 0, 1, 0.5, testMaterial())
	if got := m.centerAt(0.5); got != core.NewVec3(0, 1, -1) {
		t.Errorf("centerAt(0.5) = %v, want (0,1,-1)", got)
	}
}

func TestSphere_PDFValueZeroWhenMissed(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial())
	if got := s.PDFValue(core.Vec3{}, core.NewVec3(1, 0, 0)); got != 0 {
		t.Errorf("PDFValue = %v, want 0 for a missing direction", got)
	}
}

func TestSphere_RandomPointsWithinHitCone(t *testing.T) {
	center := core.NewVec3(0, 0, -5)
	s := NewSphere(center, 1, testMaterial())
	sampler := core.NewSampler(11)
	origin := core.Vec3{}

	for i := 0; i < 50; i++ {
		dir := s.Random(origin, sampler)
		if got := s.PDFValue(origin, dir); got <= 0 {
			t.Fatalf("sampled direction %v should hit the sphere (PDFValue=%v)", dir, got)
		}
	}
}
