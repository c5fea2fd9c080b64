package iso2d

import (
	"math"

	"github.com/cpmech/sailfish/eos"
	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/mesh"
)

// PrimitiveToConserved converts every interior zone of primitiveIn
// (guarded, (Sigma, vx, vy)) to conservedOut (interior-only, (Sigma,
// px, py)), pointwise (spec §6). conservedOut carries no guard cells.
func PrimitiveToConserved(p mesh.Patch, primitiveIn, conservedOut []float64, mode exec.Mode) {
	exec.Zone2D(mode, p.Ni, p.Nj, func(i, j int) {
		prim := p.ZoneAt(primitiveIn, i, j).Self()
		out := conservedOut[(i*p.Nj+j)*NCONS : (i*p.Nj+j)*NCONS+NCONS]
		primitiveToConserved(prim, out)
	})
}

func primitiveToConserved(prim, out []float64) {
	sigma := prim[ISigma]
	out[ISigma] = sigma
	out[IPx] = sigma * prim[IVx]
	out[IPy] = sigma * prim[IVy]
}

// conservedToPrimitive is the algebraic inverse used internally by
// AdvanceRK's fused writeback (spec §4.2, §4.9): iso2d has no public
// conserved_to_primitive operation (spec §6).
func conservedToPrimitive(cons []float64, prm Params, out []float64) {
	sigma := math.Max(cons[ISigma], prm.DensityFloor)
	vx := cons[IPx] / sigma
	vy := cons[IPy] / sigma
	v := math.Hypot(vx, vy)
	if v > prm.VelocityCeiling {
		scale := prm.VelocityCeiling / v
		vx *= scale
		vy *= scale
	}
	out[ISigma] = sigma
	out[IVx] = vx
	out[IVy] = vy
}

// MaxWavespeeds computes, for every interior zone, max(|lambda+|,
// |lambda-|) over both directions, for CFL control (spec §6).
// wavespeedOut is interior-only (ni, nj), one scalar per zone.
func MaxWavespeeds(p mesh.Patch, primitive []float64, e eos.EOS, centralMass float64, wavespeedOut []float64, mode exec.Mode) {
	exec.Zone2D(mode, p.Ni, p.Nj, func(i, j int) {
		prim := p.ZoneAt(primitive, i, j).Self()
		sigma, vx, vy := prim[ISigma], prim[IVx], prim[IVy]
		x, y := p.X(i), p.Y(j)
		r2 := x*x + y*y
		cs2 := e.SoundSpeedSquared(r2, centralMass, sigma, 0)
		lmx, lpx := math.Abs(vx-math.Sqrt(cs2)), math.Abs(vx+math.Sqrt(cs2))
		lmy, lpy := math.Abs(vy-math.Sqrt(cs2)), math.Abs(vy+math.Sqrt(cs2))
		wavespeedOut[i*p.Nj+j] = math.Max(math.Max(lmx, lpx), math.Max(lmy, lpy))
	})
}
