package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

func TestHittableList_ReturnsClosestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial())
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial())
	list := NewHittableList(far, near)

	r := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	rec, ok := list.Hit(r, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-1.5) > 1e-9 {
		t.Errorf("T = %v, want 1.5 (nearest sphere)", rec.T)
	}
}

func TestHittableList_EmptyMisses(t *testing.T) {
	list := NewHittableList()
	r := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	if _, ok := list.Hit(r, 0, math.Inf(1)); ok {
		t.Error("expected an empty list to never hit")
	}
}

func TestHittableList_PDFValueAveragesChildren(t *testing.T) {
	a := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial())
	b := NewSphere(core.NewVec3(100, 100, 100), 1, testMaterial())
	list := NewHittableList(a, b)

	origin := core.Vec3{}
	dir := core.NewVec3(0, 0, -1)
	want := 0.5 * a.PDFValue(origin, dir)
	if got := list.PDFValue(origin, dir); math.Abs(got-want) > 1e-9 {
		t.Errorf("PDFValue = %v, want %v", got, want)
	}
}
