package texture

import (
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

func TestSolid_Value(t *testing.T) {
	c := core.NewVec3(0.1, 0.2, 0.3)
	s := NewSolid(c)
	if got := s.Value(0.5, 0.5, core.NewVec3(1, 2, 3)); got != c {
		t.Errorf("Value = %v, want %v", got, c)
	}
}

func TestChecker_AlternatesBySign(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	c := NewChecker(1.0, even, odd)

	// sin(0)*sin(0)*sin(0) = 0, not < 0, so origin is "even".
	if got := c.Value(0, 0, core.NewVec3(0, 0, 0)); got != even {
		t.Errorf("Value(origin) = %v, want even %v", got, even)
	}
}

func TestNoise_Deterministic(t *testing.T) {
	n := NewNoise(4, 7)
	p := core.NewVec3(1.5, -2.25, 0.75)
	a := n.Value(0, 0, p)
	b := n.Value(0, 0, p)
	if a != b {
		t.Errorf("Noise.Value not deterministic: %v vs %v", a, b)
	}
}

func TestImage_NearestNeighborAndClamp(t *testing.T) {
	pixels := []core.Color{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	}
	img := NewImage(2, 2, pixels)

	// u,v out of [0,1] must clamp rather than index out of range.
	got := img.Value(-1, 2, core.Vec3{})
	want := pixels[0]
	if got != want {
		t.Errorf("clamped Value = %v, want %v", got, want)
	}
}

func TestColorOrTexture(t *testing.T) {
	c := core.NewVec3(0.5, 0.5, 0.5)
	asColor := FromColor(c)
	if got := asColor.Value(0, 0, core.Vec3{}); got != c {
		t.Errorf("FromColor Value = %v, want %v", got, c)
	}

	asTexture := FromTexture(NewChecker(1, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0)))
	if got := asTexture.Value(0, 0, core.Vec3{}); got != (core.Vec3{1, 1, 1}) {
		t.Errorf("FromTexture Value = %v, want {1 1 1}", got)
	}
}
