package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

func spreadSpheres(n int) []core.Hittable {
	objs := make([]core.Hittable, n)
	for i := 0; i < n; i++ {
		objs[i] = NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1, testMaterial())
	}
	return objs
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	objs := spreadSpheres(20)
	list := NewHittableList(objs...)
	bvh := NewBVH(objs, 0, 1, core.NewSampler(1))

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1)),
		core.NewRay(core.NewVec3(9, 0, -10), core.NewVec3(0, 0, 1)),
		core.NewRay(core.NewVec3(30, 0, -10), core.NewVec3(0, 0, 1)),
		core.NewRay(core.NewVec3(100, 100, -10), core.NewVec3(0, 0, 1)),
	}

	for i, r := range rays {
		wantRec, wantHit := list.Hit(r, 0, math.Inf(1))
		gotRec, gotHit := bvh.Hit(r, 0, math.Inf(1))

		if gotHit != wantHit {
			t.Fatalf("ray %d: BVH hit=%v, linear scan hit=%v", i, gotHit, wantHit)
		}
		if wantHit && math.Abs(gotRec.T-wantRec.T) > 1e-9 {
			t.Errorf("ray %d: BVH T=%v, linear scan T=%v", i, gotRec.T, wantRec.T)
		}
	}
}

func TestBVH_SingleObject(t *testing.T) {
	objs := spreadSpheres(1)
	bvh := NewBVH(objs, 0, 1, core.NewSampler(2))
	r := core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1))
	if _, ok := bvh.Hit(r, 0, math.Inf(1)); !ok {
		t.Error("expected a hit against the single-object BVH")
	}
}

func TestBVH_PanicsOnEmptyList(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected NewBVH to panic on an empty object list")
		}
	}()
	NewBVH(nil, 0, 1, core.NewSampler(3))
}

func TestBVH_BoundingBoxUnionsChildren(t *testing.T) {
	objs := spreadSpheres(5)
	bvh := NewBVH(objs, 0, 1, core.NewSampler(4))
	list := NewHittableList(objs...)

	got := bvh.BoundingBox(0, 1)
	want := list.BoundingBox(0, 1)
	if got.Min != want.Min || got.Max != want.Max {
		t.Errorf("BoundingBox = %+v, want %+v", got, want)
	}
}
