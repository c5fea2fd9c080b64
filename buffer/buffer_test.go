package buffer

import (
	"math"
	"testing"
)

func exampleBuffer() Buffer {
	return Buffer{
		Kind:            Keplerian,
		SurfaceDensity:  1.0,
		SurfacePressure: 1.0, // reference orbital momentum scale p_f
		CentralMass:     1.0,
		DrivingRate:     10.0,
		OuterRadius:     10.0,
		OnsetWidth:      2.0,
		RampKind:        RampLinear,
	}
}

func TestNoneBufferIsNoOp(t *testing.T) {
	b := Buffer{Kind: None}
	u := []float64{5, 1, 2}
	b.Apply(u, 20, 0, 1)
	if u[0] != 5 || u[1] != 1 || u[2] != 2 {
		t.Fatalf("expected no-op for Kind=None, got %v", u)
	}
}

func TestInsideOnsetIsNoOp(t *testing.T) {
	b := exampleBuffer()
	u := []float64{5, 1, 2}
	b.Apply(u, 1, 0, 1) // r=1 << r_onset=8
	if u[0] != 5 {
		t.Fatalf("expected no relaxation inside onset radius, got %v", u)
	}
}

func TestRelaxesTowardReference(t *testing.T) {
	b := exampleBuffer()
	u := []float64{5.0, 0, 0}
	x, y := 10.0, 0.0
	b.Apply(u, x, y, 0.01)
	sigma0, _, _ := b.Reference(x, y)
	if math.Abs(u[0]-5.0) < 1e-9 {
		t.Fatalf("expected relaxation to change Sigma")
	}
	if u[0] >= 5.0 && sigma0 < 5.0 {
		t.Fatalf("relaxation moved the wrong direction: u0=%v sigma0=%v", u[0], sigma0)
	}
}

func TestLegacyRampDiffersFromLinear(t *testing.T) {
	lin := exampleBuffer()
	legacy := exampleBuffer()
	legacy.RampKind = RampLegacyMaxR1
	if lin.Rate(9) == legacy.Rate(9) {
		t.Fatalf("expected legacy and linear ramps to differ at r=9")
	}
}
