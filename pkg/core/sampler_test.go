package core

import (
	"math"
	"testing"
)

func TestSampler_CosineDirection_Distribution(t *testing.T) {
	s := NewSampler(42)

	const n = 100000
	var sumY float64
	for i := 0; i < n; i++ {
		d := s.CosineDirection()
		if math.Abs(d.Length()-1.0) > 1e-6 {
			t.Fatalf("cosine direction not unit length: %v", d.Length())
		}
		if d.Z < 0 {
			t.Fatalf("cosine direction below the local hemisphere: %v", d)
		}
		sumY += d.Z
	}

	mean := sumY / n
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("mean z-component = %v, want ~2/3", mean)
	}
}

func TestSampler_InUnitDisk_Bounded(t *testing.T) {
	s := NewSampler(7)
	for i := 0; i < 1000; i++ {
		p := s.InUnitDisk()
		if p.Z != 0 {
			t.Fatalf("disk sample has nonzero Z: %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("disk sample outside unit disk: %v", p)
		}
	}
}

func TestSampler_InUnitSphere_Bounded(t *testing.T) {
	s := NewSampler(11)
	for i := 0; i < 1000; i++ {
		p := s.InUnitSphere()
		if p.LengthSquared() >= 1 {
			t.Fatalf("sphere sample outside unit ball: %v", p)
		}
	}
}
