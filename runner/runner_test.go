package runner

import (
	"testing"

	"github.com/cpmech/sailfish/buffer"
	"github.com/cpmech/sailfish/eos"
	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/gravity"
	"github.com/cpmech/sailfish/inp"
)

func TestBuildEOSVariants(t *testing.T) {
	if e := BuildEOS(inp.EOSData{Kind: "isothermal", Cs2: 4}); e.Kind != eos.Isothermal || e.Cs2 != 4 {
		t.Fatalf("got %+v", e)
	}
	if e := BuildEOS(inp.EOSData{Kind: "gamma_law", Gamma: 5.0 / 3.0}); e.Kind != eos.GammaLaw {
		t.Fatalf("got %+v", e)
	}
}

func TestBuildEOSPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown eos kind")
		}
	}()
	BuildEOS(inp.EOSData{Kind: "bogus"})
}

func TestBuildMassesAndSinkModels(t *testing.T) {
	ds := []inp.MassData{
		{Mass: 1, Model: "torque_free"},
		{Mass: 2, Model: ""},
	}
	masses := BuildMasses(ds)
	if masses[0].Model != gravity.SinkTorqueFree {
		t.Fatalf("got %v", masses[0].Model)
	}
	if masses[1].Model != gravity.SinkInactive {
		t.Fatalf("got %v", masses[1].Model)
	}
}

func TestBuildBufferNoneByDefault(t *testing.T) {
	b := BuildBuffer(inp.BufferData{})
	if b.Kind != buffer.None {
		t.Fatalf("expected None, got %v", b.Kind)
	}
}

func TestBuildBufferKeplerianRamps(t *testing.T) {
	b := BuildBuffer(inp.BufferData{Kind: "keplerian", Ramp: "legacy_max_r1", OuterRadius: 10, OnsetWidth: 2, CentralMass: 1, DrivingRate: 1})
	if b.RampKind != buffer.RampLegacyMaxR1 {
		t.Fatalf("got %v", b.RampKind)
	}
}

func TestBuildModeDefaultsToSerial(t *testing.T) {
	if BuildMode("") != exec.Serial {
		t.Fatal("expected Serial default")
	}
	if BuildMode("thread_parallel") != exec.ThreadParallel {
		t.Fatal("expected ThreadParallel")
	}
}

func TestRunIso2DSmoke(t *testing.T) {
	dat := &inp.Data{
		Solver: inp.Iso2D, Ni: 6, Nj: 6, Dx: 0.1, Dy: 0.1, Steps: 2, Dt: 1e-4,
		EOS: inp.EOSData{Kind: "isothermal", Cs2: 1.0}, DirOut: t.TempDir(),
	}
	if err := Run(dat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunSrhd1DSmoke(t *testing.T) {
	dat := &inp.Data{
		Solver: inp.Srhd1D, Ni: 10, Dx: 0.1, Steps: 2, Dt: 1e-5,
		EOS: inp.EOSData{Kind: "gamma_law", Gamma: 5.0 / 3.0}, DirOut: t.TempDir(),
	}
	if err := Run(dat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCbDisoDG2DSmoke(t *testing.T) {
	dat := &inp.Data{
		Solver: inp.CbDisoDG2D, Ni: 6, Nj: 6, Dx: 0.5, Dy: 0.5, Steps: 1, Dt: 1e-4,
		EOS: inp.EOSData{Kind: "isothermal", Cs2: 1.0}, DirOut: t.TempDir(),
	}
	if err := Run(dat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunEuler2DSmoke(t *testing.T) {
	dat := &inp.Data{
		Solver: inp.Euler2D, Ni: 6, Nj: 6, Dx: 0.1, Dy: 0.1, Steps: 2, Dt: 1e-4,
		EOS: inp.EOSData{Kind: "gamma_law", Gamma: 5.0 / 3.0}, DirOut: t.TempDir(),
	}
	if err := Run(dat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
