package euler2d

import (
	"math"

	"github.com/cpmech/sailfish/eos"
	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/mesh"
)

// PrimitiveToConserved converts every interior zone of primitiveIn
// (guarded, (Sigma, vx, vy, p)) to conservedOut (interior-only,
// (Sigma, px, py, E)), pointwise (spec §6). conservedOut carries no
// guard cells.
func PrimitiveToConserved(p mesh.Patch, primitiveIn, conservedOut []float64, e eos.EOS, mode exec.Mode) {
	exec.Zone2D(mode, p.Ni, p.Nj, func(i, j int) {
		prim := p.ZoneAt(primitiveIn, i, j).Self()
		out := conservedOut[(i*p.Nj+j)*NCONS : (i*p.Nj+j)*NCONS+NCONS]
		primitiveToConserved(prim, out, e)
	})
}

func primitiveToConserved(prim, out []float64, e eos.EOS) {
	sigma, vx, vy, pres := prim[ISigma], prim[IVx], prim[IVy], prim[IPressure]
	out[ISigma] = sigma
	out[IPx] = sigma * vx
	out[IPy] = sigma * vy
	out[IEnergy] = pres/(e.Gamma-1) + 0.5*sigma*(vx*vx+vy*vy)
}

// conservedToPrimitive is the algebraic inverse used internally by
// AdvanceRK's fused writeback (spec §4.2, §4.9): euler2d has no public
// conserved_to_primitive operation (spec §6). Clamps density, then
// velocity, then recovers pressure from the energy equation and clamps
// it to the pressure floor (spec §4.2).
func conservedToPrimitive(cons []float64, prm Params, e eos.EOS, out []float64) {
	sigma := math.Max(cons[ISigma], prm.DensityFloor)
	vx := cons[IPx] / sigma
	vy := cons[IPy] / sigma
	v := math.Hypot(vx, vy)
	if v > prm.VelocityCeiling {
		scale := prm.VelocityCeiling / v
		vx *= scale
		vy *= scale
	}
	kinetic := 0.5 * sigma * (vx*vx + vy*vy)
	pres := (e.Gamma - 1) * (cons[IEnergy] - kinetic)
	pres = math.Max(pres, prm.PressureFloor)

	out[ISigma] = sigma
	out[IVx] = vx
	out[IVy] = vy
	out[IPressure] = pres
}

// MaxWavespeeds computes, for every interior zone, max(|lambda+|,
// |lambda-|) over both directions, for CFL control (spec §6).
// wavespeedOut is interior-only (ni, nj), one scalar per zone.
func MaxWavespeeds(p mesh.Patch, primitive []float64, e eos.EOS, wavespeedOut []float64, mode exec.Mode) {
	exec.Zone2D(mode, p.Ni, p.Nj, func(i, j int) {
		prim := p.ZoneAt(primitive, i, j).Self()
		sigma, vx, vy, pres := prim[ISigma], prim[IVx], prim[IVy], prim[IPressure]
		cs2 := e.SoundSpeedSquared(0, 0, sigma, pres)
		cs := math.Sqrt(cs2)
		lmx, lpx := math.Abs(vx-cs), math.Abs(vx+cs)
		lmy, lpy := math.Abs(vy-cs), math.Abs(vy+cs)
		wavespeedOut[i*p.Nj+j] = math.Max(math.Max(lmx, lpx), math.Max(lmy, lpy))
	})
}
