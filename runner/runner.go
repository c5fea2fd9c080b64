// package runner wires an inp.Data run file to a concrete solver
// invocation: it builds the eos.EOS, gravity.PointMass list,
// buffer.Buffer and exec.Mode the JSON file describes, seeds a
// uniform initial state (spec.md has no initial-condition file
// format; a uniform seed is the simplest reproducible starting point
// for the driver, real scenarios script their own initial condition
// in-process), and steps the chosen solver Steps times.
package runner

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/sailfish/buffer"
	"github.com/cpmech/sailfish/cbdisodg2d"
	"github.com/cpmech/sailfish/eos"
	"github.com/cpmech/sailfish/euler2d"
	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/gravity"
	"github.com/cpmech/sailfish/inp"
	"github.com/cpmech/sailfish/iso2d"
	"github.com/cpmech/sailfish/mesh"
	"github.com/cpmech/sailfish/srhd1d"
)

// BuildEOS converts inp.EOSData to a concrete eos.EOS (spec §4.2).
func BuildEOS(d inp.EOSData) eos.EOS {
	switch d.Kind {
	case "isothermal":
		return eos.NewIsothermal(d.Cs2)
	case "locally_isothermal":
		return eos.NewLocallyIsothermal(d.Mach2)
	case "gamma_law":
		return eos.NewGammaLaw(d.Gamma)
	default:
		panic(chk.Err("runner: unknown eos kind %q", d.Kind))
	}
}

// BuildMasses converts inp.MassData entries to gravity.PointMass
// values (spec §4.4).
func BuildMasses(ds []inp.MassData) []gravity.PointMass {
	out := make([]gravity.PointMass, len(ds))
	for i, d := range ds {
		var model gravity.SinkModel
		switch d.Model {
		case "", "inactive":
			model = gravity.SinkInactive
		case "acceleration_free":
			model = gravity.SinkAccelerationFree
		case "torque_free":
			model = gravity.SinkTorqueFree
		case "force_free":
			model = gravity.SinkForceFree
		default:
			panic(chk.Err("runner: unknown sink model %q", d.Model))
		}
		out[i] = gravity.PointMass{
			X: d.X, Y: d.Y, Vx: d.Vx, Vy: d.Vy, Mass: d.Mass,
			SofteningLen: d.SofteningLen, SinkRate: d.SinkRate,
			SinkRadius: d.SinkRadius, Model: model,
		}
	}
	return out
}

// BuildBuffer converts inp.BufferData to a buffer.Buffer (spec §4.5).
func BuildBuffer(d inp.BufferData) buffer.Buffer {
	var kind buffer.Kind
	switch d.Kind {
	case "", "none":
		return buffer.Buffer{Kind: buffer.None}
	case "keplerian":
		kind = buffer.Keplerian
	default:
		panic(chk.Err("runner: unknown buffer kind %q", d.Kind))
	}
	var ramp buffer.Ramp
	switch d.Ramp {
	case "", "linear":
		ramp = buffer.RampLinear
	case "legacy_max_r1":
		ramp = buffer.RampLegacyMaxR1
	default:
		panic(chk.Err("runner: unknown ramp kind %q", d.Ramp))
	}
	return buffer.Buffer{
		Kind: kind, SurfaceDensity: d.SurfaceDensity, SurfacePressure: d.SurfacePressure,
		CentralMass: d.CentralMass, DrivingRate: d.DrivingRate,
		OuterRadius: d.OuterRadius, OnsetWidth: d.OnsetWidth, RampKind: ramp,
	}
}

// BuildMode converts the JSON exec-mode string to an exec.Mode.
func BuildMode(s string) exec.Mode {
	switch s {
	case "", "serial":
		return exec.Serial
	case "thread_parallel":
		return exec.ThreadParallel
	case "accelerator":
		return exec.Accelerator
	default:
		panic(chk.Err("runner: unknown exec mode %q", s))
	}
}

// Snapshot is the JSON-serializable final-state report written at the
// end of a run (spec §6 external interface: primitive state is the
// stable output boundary).
type Snapshot struct {
	Solver string    `json:"solver"`
	Ni     int       `json:"ni"`
	Nj     int       `json:"nj"`
	Steps  int       `json:"steps"`
	Sigma  []float64 `json:"sigma"`
}

// Run executes the solver named by dat.Solver for dat.Steps substeps
// and writes a final-state Snapshot to dat.DirOut/snapshot.json.
func Run(dat *inp.Data) error {
	mode := BuildMode(dat.Mode)
	masses := BuildMasses(dat.Masses)
	buf := BuildBuffer(dat.Buffer)
	e := BuildEOS(dat.EOS)

	var sigma []float64
	switch dat.Solver {
	case inp.Iso2D:
		sigma = runIso2D(dat, e, masses, buf, mode)
	case inp.Euler2D:
		sigma = runEuler2D(dat, e, masses, buf, mode)
	case inp.Srhd1D:
		sigma = runSrhd1D(dat, e, mode)
	case inp.CbDisoDG2D:
		sigma = runCbDisoDG2D(dat, e, masses, buf, mode)
	default:
		return chk.Err("runner: unknown solver %q", dat.Solver)
	}

	snap := Snapshot{Solver: string(dat.Solver), Ni: dat.Ni, Nj: dat.Nj, Steps: dat.Steps, Sigma: sigma}
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return chk.Err("runner: cannot marshal snapshot: %v", err)
	}
	if err := os.MkdirAll(dat.DirOut, 0777); err != nil {
		return chk.Err("runner: cannot create output directory %q: %v", dat.DirOut, err)
	}
	var out bytes.Buffer
	out.Write(body)
	io.WriteFile(io.Sf("%s/snapshot.json", dat.DirOut), &out)
	return nil
}

func runIso2D(dat *inp.Data, e eos.EOS, masses []gravity.PointMass, buf buffer.Buffer, mode exec.Mode) []float64 {
	p := mesh.Patch{Ni: dat.Ni, Nj: dat.Nj, Dx: dat.Dx, Dy: dat.Dy, NG: 2, NCONS: iso2d.NCONS}
	gi, gj := p.GuardedExtent()
	prim := make([]float64, gi*gj*iso2d.NCONS)
	for idx := 0; idx < gi*gj; idx++ {
		z := prim[idx*iso2d.NCONS : idx*iso2d.NCONS+iso2d.NCONS]
		z[iso2d.ISigma] = 1.0
	}
	cons := make([]float64, p.Ni*p.Nj*iso2d.NCONS)
	iso2d.PrimitiveToConserved(p, prim, cons, mode)

	cfg := iso2d.Config{EOS: e, Buffer: buf, Masses: masses, Params: iso2d.DefaultParams()}
	cfg.Params.Dt = dat.Dt
	if dat.Theta > 0 {
		cfg.Params.ThetaPLM = dat.Theta
	}
	primOut := make([]float64, len(prim))
	copy(primOut, prim)
	for s := 0; s < dat.Steps; s++ {
		iso2d.AdvanceRK(p, cons, prim, primOut, cfg, mode)
		prim, primOut = primOut, prim
		iso2d.PrimitiveToConserved(p, prim, cons, mode)
		io.Pf("iso2d: completed step %d/%d\n", s+1, dat.Steps)
	}
	return extractSigma(p, prim, iso2d.NCONS, iso2d.ISigma)
}

func runEuler2D(dat *inp.Data, e eos.EOS, masses []gravity.PointMass, buf buffer.Buffer, mode exec.Mode) []float64 {
	p := mesh.Patch{Ni: dat.Ni, Nj: dat.Nj, Dx: dat.Dx, Dy: dat.Dy, NG: 2, NCONS: euler2d.NCONS}
	gi, gj := p.GuardedExtent()
	prim := make([]float64, gi*gj*euler2d.NCONS)
	for idx := 0; idx < gi*gj; idx++ {
		z := prim[idx*euler2d.NCONS : idx*euler2d.NCONS+euler2d.NCONS]
		z[euler2d.ISigma] = 1.0
		z[euler2d.IPressure] = 1.0
	}
	cons := make([]float64, p.Ni*p.Nj*euler2d.NCONS)
	euler2d.PrimitiveToConserved(p, prim, cons, e, mode)

	cfg := euler2d.Config{EOS: e, Buffer: buf, Masses: masses, Params: euler2d.DefaultParams()}
	cfg.Params.Dt = dat.Dt
	if dat.Theta > 0 {
		cfg.Params.ThetaPLM = dat.Theta
	}
	primOut := make([]float64, len(prim))
	copy(primOut, prim)
	for s := 0; s < dat.Steps; s++ {
		euler2d.AdvanceRK(p, cons, prim, primOut, cfg, mode)
		prim, primOut = primOut, prim
		euler2d.PrimitiveToConserved(p, prim, cons, e, mode)
		io.Pf("euler2d: completed step %d/%d\n", s+1, dat.Steps)
	}
	return extractSigma(p, prim, euler2d.NCONS, euler2d.ISigma)
}

func runCbDisoDG2D(dat *inp.Data, e eos.EOS, masses []gravity.PointMass, buf buffer.Buffer, mode exec.Mode) []float64 {
	p := mesh.Patch{Ni: dat.Ni, Nj: dat.Nj, Dx: dat.Dx, Dy: dat.Dy, NG: 1, NCONS: cbdisodg2d.ZoneWidth}
	gi, gj := p.GuardedExtent()
	prim := make([]float64, gi*gj*cbdisodg2d.ZoneWidth)
	for idx := 0; idx < gi*gj; idx++ {
		z := prim[idx*cbdisodg2d.ZoneWidth : idx*cbdisodg2d.ZoneWidth+cbdisodg2d.ZoneWidth]
		z[cbdisodg2d.ISigma*cbdisodg2d.NPOLY] = 1.0
	}
	cons := make([]float64, p.Ni*p.Nj*cbdisodg2d.ZoneWidth)
	cbdisodg2d.PrimitiveToConserved(p, prim, cons, mode)

	guarded := make([]float64, gi*gj*cbdisodg2d.ZoneWidth)
	for i := 0; i < p.Ni; i++ {
		for j := 0; j < p.Nj; j++ {
			copy(p.ZoneAt(guarded, i, j).Self(), cons[(i*p.Nj+j)*cbdisodg2d.ZoneWidth:(i*p.Nj+j)*cbdisodg2d.ZoneWidth+cbdisodg2d.ZoneWidth])
		}
	}
	cfg := cbdisodg2d.Config{EOS: e, Buffer: buf, Masses: masses, Params: cbdisodg2d.DefaultParams()}
	cfg.Params.Dt = dat.Dt
	out := make([]float64, len(guarded))
	copy(out, guarded)
	for s := 0; s < dat.Steps; s++ {
		cbdisodg2d.AdvanceRK(p, cons, guarded, out, cfg, mode)
		guarded, out = out, guarded
		for i := 0; i < p.Ni; i++ {
			for j := 0; j < p.Nj; j++ {
				copy(cons[(i*p.Nj+j)*cbdisodg2d.ZoneWidth:(i*p.Nj+j)*cbdisodg2d.ZoneWidth+cbdisodg2d.ZoneWidth], p.ZoneAt(guarded, i, j).Self())
			}
		}
		io.Pf("cbdisodg2d: completed step %d/%d\n", s+1, dat.Steps)
	}
	sigma := make([]float64, p.Ni*p.Nj)
	for i := 0; i < p.Ni; i++ {
		for j := 0; j < p.Nj; j++ {
			sigma[i*p.Nj+j] = p.ZoneAt(guarded, i, j).Self()[cbdisodg2d.ISigma*cbdisodg2d.NPOLY]
		}
	}
	return sigma
}

func runSrhd1D(dat *inp.Data, e eos.EOS, mode exec.Mode) []float64 {
	n := dat.Ni
	ng := 2
	yl := make([]float64, n+1)
	for i := range yl {
		yl[i] = float64(i) * dat.Dx
	}
	fm := mesh.FaceMesh{Yl: yl, ScaleFactor: 1.0}

	width := n + 2*ng
	prim := make([]float64, width*srhd1d.NCONS)
	for i := 0; i < width; i++ {
		z := prim[i*srhd1d.NCONS : i*srhd1d.NCONS+srhd1d.NCONS]
		z[srhd1d.IRho] = 1.0
		z[srhd1d.IP] = e.Gamma * 1e-3
	}
	cons := make([]float64, n*srhd1d.NCONS)
	srhd1d.PrimitiveToConserved(n, prim, cons, ng, e.Gamma, mode)

	cfg := srhd1d.Config{Gamma: e.Gamma, Coords: mesh.Cartesian, Params: srhd1d.DefaultParams()}
	cfg.Params.Dt = dat.Dt
	if dat.Theta > 0 {
		cfg.Params.ThetaPLM = dat.Theta
	}

	checkpoint := make([]float64, len(cons))
	copy(checkpoint, cons)
	for s := 0; s < dat.Steps; s++ {
		srhd1d.AdvanceRK(fm, checkpoint, prim, cons, cfg, mode)
		if err := srhd1d.ConservedToPrimitive(n, cons, prim, ng, e.Gamma, cfg.Params.MachMax, fm, mesh.Cartesian, mode); err != nil {
			panic(err)
		}
		copy(checkpoint, cons)
		io.Pf("srhd1d: completed step %d/%d\n", s+1, dat.Steps)
	}
	rho := make([]float64, n)
	for i := 0; i < n; i++ {
		rho[i] = prim[(i+ng)*srhd1d.NCONS+srhd1d.IRho]
	}
	return rho
}

func extractSigma(p mesh.Patch, prim []float64, ncons, iSigma int) []float64 {
	out := make([]float64, p.Ni*p.Nj)
	for i := 0; i < p.Ni; i++ {
		for j := 0; j < p.Nj; j++ {
			out[i*p.Nj+j] = p.ZoneAt(prim, i, j).Self()[iSigma]
		}
	}
	return out
}
