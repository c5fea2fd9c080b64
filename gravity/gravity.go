// package gravity implements the L4 point-mass source term shared by
// iso2d, euler2d and cbdisodg_2d: softened gravitational acceleration
// plus the three sink models of spec §4.4.
package gravity

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SinkModel discriminates how mass removed by a sink carries momentum
// and energy away from the fluid (spec §6: stable at the external
// interface boundary).
type SinkModel int

const (
	SinkInactive SinkModel = iota
	SinkAccelerationFree
	SinkTorqueFree
	SinkForceFree
)

// PointMass is an immutable (for the duration of one kernel call)
// gravitating, optionally accreting point (spec §3).
type PointMass struct {
	X, Y           float64
	Vx, Vy         float64
	Mass           float64
	SofteningLen   float64
	SinkRate       float64
	SinkRadius     float64
	Model          SinkModel
}

// Delta is the per-zone conserved-variable increment contributed by one
// point mass, in (mass, px, py, [energy]) order; Energy is only
// meaningful for euler2d and is left at zero by iso2d callers.
type Delta struct {
	DSigma, DPx, DPy, DEnergy float64
}

// Accumulate returns this mass's contribution, evaluated for a zone at
// (x, y) with surface density sigma and velocity (vx, vy), as a Delta
// holding the mass and momentum increments and, if withEnergy is true
// and the sink model carries energy, the energy increment.
// specificEps is the zone's specific internal energy (euler2d only; ignored by iso2d callers who pass 0 and
// withEnergy=false).
func (m PointMass) Accumulate(x, y, sigma, vx, vy, specificEps float64, withEnergy bool) Delta {
	dx := x - m.X
	dy := y - m.Y
	r2 := dx*dx + dy*dy
	r2soft := r2 + m.SofteningLen*m.SofteningLen

	// Softened gravitational acceleration magnitude; never divide by
	// raw r (spec §3 invariant).
	g := sigma * m.Mass * math.Pow(r2soft, -1.5)
	fx := -g * dx
	fy := -g * dy

	var mdot float64
	r := math.Sqrt(r2)
	if m.Model != SinkInactive && r < 4*m.SinkRadius {
		ratio := r / m.SinkRadius
		kappa := m.SinkRate * math.Exp(-ratio*ratio*ratio*ratio)
		mdot = -sigma * kappa
	}

	switch m.Model {
	case SinkInactive:
		return Delta{DPx: fx, DPy: fy}

	case SinkAccelerationFree:
		d := Delta{
			DSigma: mdot,
			DPx:    mdot*vx + fx,
			DPy:    mdot*vy + fy,
		}
		if withEnergy {
			v2 := vx*vx + vy*vy
			d.DEnergy = mdot*specificEps + 0.5*mdot*v2 + fx*vx + fy*vy
		}
		return d

	case SinkTorqueFree:
		// Keep only the velocity component radial with respect to the
		// mass's own motion, preserving tangential angular momentum
		// about the mass.
		rvx, rvy := vx-m.Vx, vy-m.Vy
		if r > 0 {
			rhatx, rhaty := dx/r, dy/r
			vr := rvx*rhatx + rvy*rhaty
			rvx, rvy = vr*rhatx, vr*rhaty
		} else {
			rvx, rvy = 0, 0
		}
		vrx, vry := rvx+m.Vx, rvy+m.Vy
		d := Delta{
			DSigma: mdot,
			DPx:    mdot*vrx + fx,
			DPy:    mdot*vry + fy,
		}
		if withEnergy {
			v2 := vrx*vrx + vry*vry
			d.DEnergy = mdot*specificEps + 0.5*mdot*v2 + fx*vx + fy*vy
		}
		return d

	case SinkForceFree:
		// Mass is removed, but the removed mass carries no momentum:
		// only the gravitational force enters the momentum rows.
		return Delta{DSigma: mdot, DPx: fx, DPy: fy}

	default:
		panic(chk.Err("gravity: unreachable SinkModel %d", m.Model))
	}
}

// OmegaKSquaredSum returns sum(M_p / r_p^3) over masses, evaluated at
// (x, y) with the same softened distance used for gravitational
// acceleration; this feeds the euler2d viscosity scale-height formula
// (spec §4.6).
func OmegaKSquaredSum(masses []PointMass, x, y float64) float64 {
	var sum float64
	for _, m := range masses {
		dx, dy := x-m.X, y-m.Y
		r2soft := dx*dx + dy*dy + m.SofteningLen*m.SofteningLen
		sum += m.Mass * math.Pow(r2soft, -1.5)
	}
	return sum
}

// Sum adds the contributions of every mass in masses for a zone at
// (x, y), returning the combined Delta.
func Sum(masses []PointMass, x, y, sigma, vx, vy, specificEps float64, withEnergy bool) Delta {
	var total Delta
	for _, m := range masses {
		d := m.Accumulate(x, y, sigma, vx, vy, specificEps, withEnergy)
		total.DSigma += d.DSigma
		total.DPx += d.DPx
		total.DPy += d.DPy
		total.DEnergy += d.DEnergy
	}
	return total
}
