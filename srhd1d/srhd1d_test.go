package srhd1d

import (
	"math"
	"testing"

	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/mesh"
)

func uniformFaceMesh(n int, x0, x1 float64) mesh.FaceMesh {
	yl := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		yl[i] = x0 + (x1-x0)*float64(i)/float64(n)
	}
	return mesh.FaceMesh{Yl: yl, ScaleFactor: 1.0}
}

func fillUniform1D(n, ng int, rho, u1, p, s float64) []float64 {
	buf := make([]float64, (n+2*ng)*NCONS)
	for i := -ng; i < n+ng; i++ {
		z := zoneAt(buf, i, ng)
		z[IRho], z[IU1], z[IP], z[IS] = rho, u1, p, s
	}
	return buf
}

func TestRoundTripPrimitiveConserved(t *testing.T) {
	gamma := 4.0 / 3.0
	prim := []float64{1.5, 0.6, 0.9, 0.3}
	cons := make([]float64, NCONS)
	primitiveToConserved(prim, cons, gamma)

	out := make([]float64, NCONS)
	out[IP] = prim[IP] // seed the Newton guess with the true value
	if err := conservedToPrimitive(cons, out, gamma, 1e6, 1.0); err != nil {
		t.Fatalf("conservedToPrimitive failed: %v", err)
	}
	for k, want := range prim {
		if math.Abs(out[k]-want) > 1e-8*(1+math.Abs(want)) {
			t.Fatalf("component %d: got %v want %v", k, out[k], want)
		}
	}
}

func TestConservedToPrimitiveRejectsNonConvergence(t *testing.T) {
	gamma := 4.0 / 3.0
	// A conserved state with tau set far too negative to correspond to
	// any physical pressure should fail rather than silently return
	// garbage.
	cons := []float64{1.0, 50.0, -1000.0, 0.0}
	out := make([]float64, NCONS)
	out[IP] = 1.0
	if err := conservedToPrimitive(cons, out, gamma, 1e6, 1.0); err == nil {
		t.Fatalf("expected non-convergence/unphysical error, got nil")
	}
}

func TestUniformFlowIsUnchangedCartesian(t *testing.T) {
	n := 20
	fm := uniformFaceMesh(n, 0, 1)
	prim := fillUniform1D(n, 2, 1.0, 0.0, 1.0, 0.0)
	gamma := 4.0 / 3.0

	cons := make([]float64, n*NCONS)
	PrimitiveToConserved(n, prim, cons, 2, gamma, exec.Serial)

	cfg := Config{Gamma: gamma, Coords: mesh.Cartesian, Params: DefaultParams()}
	cfg.Params.Dt = 1e-4

	out := make([]float64, n*NCONS)
	AdvanceRK(fm, cons, prim, out, cfg, exec.Serial)

	for i := 0; i < n*NCONS; i++ {
		if math.Abs(out[i]-cons[i]) > 1e-9 {
			t.Fatalf("uniform flow perturbed at index %d: got %v want %v", i, out[i], cons[i])
		}
	}
}

func TestFixI0PinsFirstZone(t *testing.T) {
	n := 10
	fm := uniformFaceMesh(n, 0, 1)
	gamma := 4.0 / 3.0
	prim := fillUniform1D(n, 2, 1.0, 0.0, 1.0, 0.0)
	// perturb interior to create nonzero fluxes
	zoneAt(prim, 5, 2)[IP] = 5.0

	cons := make([]float64, n*NCONS)
	PrimitiveToConserved(n, prim, cons, 2, gamma, exec.Serial)

	cfg := Config{Gamma: gamma, Coords: mesh.Cartesian, Params: DefaultParams()}
	cfg.Params.Dt = 1e-4
	cfg.Params.FixI0 = true
	cfg.Params.FixI1 = true

	out := make([]float64, n*NCONS)
	AdvanceRK(fm, cons, prim, out, cfg, exec.Serial)

	for k := 0; k < NCONS; k++ {
		if out[k] != cons[k] {
			t.Fatalf("zone 0 should be pinned: got %v want %v", out[k], cons[k])
		}
		last := (n - 1) * NCONS
		if out[last+k] != cons[last+k] {
			t.Fatalf("last zone should be pinned: got %v want %v", out[last+k], cons[last+k])
		}
	}
}

func TestGeometricSourceVanishesCartesian(t *testing.T) {
	src := geometricSource(mesh.Cartesian, 5.0, 0.1, 0.2)
	for k, v := range src {
		if v != 0 {
			t.Fatalf("cartesian geometric source should be zero, got %v at %d", v, k)
		}
	}
}

func TestGeometricSourceSphericalRadialOnly(t *testing.T) {
	src := geometricSource(mesh.Spherical, 2.0, 0.1, 0.2)
	if src[ISc] <= 0 {
		t.Fatalf("expected positive radial momentum source, got %v", src[ISc])
	}
	for k, v := range src {
		if k != ISc && v != 0 {
			t.Fatalf("non-radial row %d should be zero, got %v", k, v)
		}
	}
}

func TestAdvanceRKAgreesAcrossExecModes(t *testing.T) {
	n := 24
	fm := uniformFaceMesh(n, 0, 1)
	gamma := 4.0 / 3.0
	prim := fillUniform1D(n, 2, 1.0, 0.0, 1.0, 0.0)
	zoneAt(prim, 5, 2)[IP] = 4.0
	zoneAt(prim, 12, 2)[IRho] = 2.0

	cons := make([]float64, n*NCONS)
	PrimitiveToConserved(n, prim, cons, 2, gamma, exec.Serial)

	cfg := Config{Gamma: gamma, Coords: mesh.Cartesian, Params: DefaultParams()}
	cfg.Params.Dt = 1e-4

	var results [][]float64
	for _, mode := range []exec.Mode{exec.Serial, exec.ThreadParallel, exec.Accelerator} {
		out := make([]float64, n*NCONS)
		AdvanceRK(fm, cons, prim, out, cfg, mode)
		results = append(results, out)
	}
	for i := range results[0] {
		if results[0][i] != results[1][i] || results[0][i] != results[2][i] {
			t.Fatalf("exec modes diverged at index %d: %v", i, results)
		}
	}
}
