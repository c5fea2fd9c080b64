// package iso2d implements the 2D isothermal (or locally isothermal)
// finite-volume solver (spec §1): PLM reconstruction, HLLE flux, shear
// viscosity, point-mass gravity and sinks, and a Keplerian buffer.
package iso2d

import (
	"github.com/cpmech/sailfish/buffer"
	"github.com/cpmech/sailfish/eos"
	"github.com/cpmech/sailfish/gravity"
)

// NCONS is the number of conserved/primitive components per zone:
// (Sigma, vx, vy) for primitives, (Sigma, px, py) for conserved.
const NCONS = 3

// Component indices, shared by the primitive and conserved layouts.
const (
	ISigma = 0
	IVx    = 1 // primitive: x-velocity
	IVy    = 2 // primitive: y-velocity
	IPx    = 1 // conserved: x-momentum
	IPy    = 2 // conserved: y-momentum
)

// Params bundles the tunable numerical parameters of one advance_rk
// call (spec §4.1, §4.6, §4.9).
type Params struct {
	ThetaPLM        float64
	DensityFloor    float64
	VelocityCeiling float64

	// Nu is the constant kinematic shear-viscosity coefficient; Nu==0
	// dispatches the purely inviscid branch (spec §4.6).
	Nu float64

	// RKParam is the convex-combination weight for this substep: 0 for
	// RK1, 1/2 for RK2, 2/3 for RK3/SSPRK3 (spec §4.9).
	RKParam float64

	Dt float64
}

// DefaultParams returns the parameter set used throughout the test
// suite: theta=1.5 (spec §4.1), generous floors/ceilings, viscosity off.
func DefaultParams() Params {
	return Params{
		ThetaPLM:        1.5,
		DensityFloor:    1e-12,
		VelocityCeiling: 1e8,
		Nu:              0,
		RKParam:         0,
	}
}

// Config is the full per-call configuration of AdvanceRK (spec §6);
// PrimitiveToConserved and MaxWavespeeds take their inputs directly.
type Config struct {
	EOS     eos.EOS
	Buffer  buffer.Buffer
	Masses  []gravity.PointMass
	Params  Params
}
