package iso2d

import (
	"math"
	"testing"

	"github.com/cpmech/sailfish/buffer"
	"github.com/cpmech/sailfish/eos"
	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/gravity"
	"github.com/cpmech/sailfish/mesh"
)

func uniformPatch(ni, nj int, ng int) mesh.Patch {
	return mesh.Patch{Ni: ni, Nj: nj, Dx: 0.1, Dy: 0.1, X0: -0.5 * float64(ni) * 0.1, Y0: -0.5 * float64(nj) * 0.1, NG: ng, NCONS: NCONS}
}

func fillUniform(p mesh.Patch, sigma, vx, vy float64) []float64 {
	ni, nj := p.GuardedExtent()
	buf := make([]float64, ni*nj*NCONS)
	for i := -p.NG; i < p.Ni+p.NG; i++ {
		for j := -p.NG; j < p.Nj+p.NG; j++ {
			z := p.ZoneAt(buf, i, j)
			s := z.Self()
			s[ISigma], s[IVx], s[IVy] = sigma, vx, vy
		}
	}
	return buf
}

func TestRoundTripPrimitiveConserved(t *testing.T) {
	p := uniformPatch(4, 4, 2)
	prim := fillUniform(p, 1.3, 0.2, -0.1)
	cons := make([]float64, p.Ni*p.Nj*NCONS)
	PrimitiveToConserved(p, prim, cons, exec.Serial)

	prm := DefaultParams()
	for i := 0; i < p.Ni; i++ {
		for j := 0; j < p.Nj; j++ {
			c := cons[(i*p.Nj+j)*NCONS : (i*p.Nj+j)*NCONS+NCONS]
			out := make([]float64, NCONS)
			conservedToPrimitive(c, prm, out)
			if math.Abs(out[ISigma]-1.3) > 1e-12 || math.Abs(out[IVx]-0.2) > 1e-12 || math.Abs(out[IVy]+0.1) > 1e-12 {
				t.Fatalf("round trip mismatch at (%d,%d): %v", i, j, out)
			}
		}
	}
}

func TestUniformFlowIsUnchanged(t *testing.T) {
	p := uniformPatch(6, 6, 2)
	prim := fillUniform(p, 1.0, 0.3, -0.2)
	cons := make([]float64, p.Ni*p.Nj*NCONS)
	PrimitiveToConserved(p, prim, cons, exec.Serial)

	cfg := Config{
		EOS:    eos.NewIsothermal(1.0),
		Buffer: buffer.Buffer{Kind: buffer.None},
		Masses: nil,
		Params: DefaultParams(),
	}
	cfg.Params.Dt = 1e-3

	out := make([]float64, len(prim))
	copy(out, prim)
	AdvanceRK(p, cons, prim, out, cfg, exec.Serial)

	for i := 0; i < p.Ni; i++ {
		for j := 0; j < p.Nj; j++ {
			s := p.ZoneAt(out, i, j).Self()
			if math.Abs(s[ISigma]-1.0) > 1e-9 || math.Abs(s[IVx]-0.3) > 1e-9 || math.Abs(s[IVy]+0.2) > 1e-9 {
				t.Fatalf("uniform flow perturbed at (%d,%d): %v", i, j, s)
			}
		}
	}
}

func TestAdvanceRKConservesMassWithoutSources(t *testing.T) {
	p := uniformPatch(8, 8, 2)
	prim := fillUniform(p, 1.0, 0.0, 0.0)
	// perturb one interior cell to create a nontrivial flux field
	z := p.ZoneAt(prim, 4, 4)
	z.Self()[ISigma] = 1.5

	cons := make([]float64, p.Ni*p.Nj*NCONS)
	PrimitiveToConserved(p, prim, cons, exec.Serial)

	cfg := Config{
		EOS:    eos.NewIsothermal(1.0),
		Buffer: buffer.Buffer{Kind: buffer.None},
		Masses: nil,
		Params: DefaultParams(),
	}
	cfg.Params.Dt = 1e-4

	out := make([]float64, len(prim))
	copy(out, prim)
	AdvanceRK(p, cons, prim, out, cfg, exec.Serial)

	outCons := make([]float64, p.Ni*p.Nj*NCONS)
	PrimitiveToConserved(p, out, outCons, exec.Serial)

	var before, after float64
	for i := 0; i < p.Ni*p.Nj; i++ {
		before += cons[i*NCONS+ISigma]
		after += outCons[i*NCONS+ISigma]
	}
	if math.Abs(before-after) > 1e-8 {
		t.Fatalf("mass not conserved: before=%v after=%v", before, after)
	}
}

func TestMaxWavespeedsIsothermal(t *testing.T) {
	p := uniformPatch(4, 4, 2)
	prim := fillUniform(p, 1.0, 0.5, 0.0)
	e := eos.NewIsothermal(1.0)
	out := make([]float64, p.Ni*p.Nj)
	MaxWavespeeds(p, prim, e, 0, out, exec.Serial)
	want := 1.5 // |0.5+1| (cs=1)
	for _, w := range out {
		if math.Abs(w-want) > 1e-9 {
			t.Fatalf("wavespeed = %v, want %v", w, want)
		}
	}
}

func TestSinkRemovesMassNearPointMass(t *testing.T) {
	p := uniformPatch(10, 10, 2)
	prim := fillUniform(p, 1.0, 0.0, 0.0)
	cons := make([]float64, p.Ni*p.Nj*NCONS)
	PrimitiveToConserved(p, prim, cons, exec.Serial)

	mass := gravity.PointMass{
		X: 0, Y: 0, Mass: 1.0,
		SofteningLen: 0.05,
		SinkRate:     10.0,
		SinkRadius:   0.1,
		Model:        gravity.SinkAccelerationFree,
	}
	cfg := Config{
		EOS:    eos.NewIsothermal(1.0),
		Buffer: buffer.Buffer{Kind: buffer.None},
		Masses: []gravity.PointMass{mass},
		Params: DefaultParams(),
	}
	cfg.Params.Dt = 1e-4

	out := make([]float64, len(prim))
	copy(out, prim)
	AdvanceRK(p, cons, prim, out, cfg, exec.Serial)

	// cell nearest the origin should have lost mass relative to far cells
	near := p.ZoneAt(out, p.Ni/2, p.Nj/2).Self()[ISigma]
	far := p.ZoneAt(out, 0, 0).Self()[ISigma]
	if near >= far {
		t.Fatalf("expected sink to deplete mass near origin: near=%v far=%v", near, far)
	}
}
