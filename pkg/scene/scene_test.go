package scene

import (
	"math"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

func TestNewDefaultScene_BuildsNonEmptyWorld(t *testing.T) {
	s := NewDefaultScene()
	if s.World == nil {
		t.Fatal("World is nil")
	}
	if s.Camera == nil {
		t.Fatal("Camera is nil")
	}
	if s.Background == nil {
		t.Fatal("Background is nil")
	}

	r := core.NewRay(core.NewVec3(0, 0.75, 2), core.NewVec3(0, -0.1, -1))
	_, hit := s.World.Hit(r, 0.001, math.Inf(1))
	if !hit {
		t.Error("expected the camera-forward ray to hit the center sphere or the ground, got no hit")
	}
}

func TestNewDefaultScene_HasNoExplicitLights(t *testing.T) {
	s := NewDefaultScene()
	if len(s.Lights.Objects) != 0 {
		t.Errorf("default scene has %d explicit lights, want 0 (sky-gradient-only illumination)", len(s.Lights.Objects))
	}
}

func TestNewCornellScene_HasOneExplicitLight(t *testing.T) {
	s := NewCornellScene()
	if len(s.Lights.Objects) != 1 {
		t.Fatalf("Cornell scene has %d explicit lights, want 1 (the ceiling panel)", len(s.Lights.Objects))
	}
}

func TestNewCornellScene_CameraRayHitsAWall(t *testing.T) {
	s := NewCornellScene()
	r := core.NewRay(core.NewVec3(278, 278, -800), core.NewVec3(0, 0, 1))
	_, hit := s.World.Hit(r, 0.001, math.Inf(1))
	if !hit {
		t.Error("expected the straight-on camera ray to hit the back wall or a box, got no hit")
	}
}

func TestNewCornellScene_LightIsReachableFromBoxCenter(t *testing.T) {
	s := NewCornellScene()
	origin := core.NewVec3(278, 278, 278)
	sampler := core.NewSampler(5)

	dir := s.Lights.Objects[0].Random(origin, sampler)
	pdf := s.Lights.Objects[0].PDFValue(origin, dir)
	if pdf <= 0 {
		t.Errorf("light PDFValue toward a sampled direction = %v, want > 0", pdf)
	}
}

func TestNewSphereGridScene_BuildsNonEmptyWorldWithOneLight(t *testing.T) {
	s := NewSphereGridScene(4)
	if s.World == nil {
		t.Fatal("World is nil")
	}
	if len(s.Lights.Objects) != 1 {
		t.Fatalf("sphere-grid scene has %d explicit lights, want 1 (the overhead sun)", len(s.Lights.Objects))
	}

	r := core.NewRay(core.NewVec3(1.8, 20, 1.8), core.NewVec3(0, -1, 0))
	_, hit := s.World.Hit(r, 0.001, math.Inf(1))
	if !hit {
		t.Error("expected a straight-down ray through the grid to hit a sphere or the ground, got no hit")
	}
}

func TestNewSphereGridScene_HueToRGBCoversFullWheelAndStaysInRange(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 15 {
		c := hueToRGB(hue)
		for _, comp := range []float64{c.X, c.Y, c.Z} {
			if comp < 0 || comp > 1 {
				t.Fatalf("hueToRGB(%v) = %v, component out of [0,1] range", hue, c)
			}
		}
	}
}
